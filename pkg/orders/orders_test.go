// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package orders

import (
	"testing"

	"github.com/moov-io/csb34/pkg/audittrail"
	"github.com/moov-io/csb34/pkg/config"

	"github.com/stretchr/testify/require"
)

const orderJSON = `{
  "vatNumber": "B12345678",
  "name": "Moov Iberia SL",
  "street": "Avenida Diagonal 640",
  "city": "Barcelona",
  "bankAccount": "21000418450200051331",
  "creationDate": "2026-10-17",
  "paymentDate": "2026-10-20",
  "receipts": [
    {
      "vatNumber": "12345678Z",
      "name": "Lucia Fernandez",
      "street": "Calle Mayor 1",
      "zipCity": "28013 Madrid",
      "province": "Madrid",
      "bankAccount": "00491500051234567892",
      "amount": "EUR 100.00"
    },
    {
      "vatNumber": "87654321X",
      "name": "Jordi Puig",
      "street": "Carrer de Sants 20",
      "zipCity": "08014 Barcelona",
      "province": "Barcelona",
      "bankAccount": "00491500051234567892",
      "amount": "EUR 25.50"
    }
  ]
}`

func testGenerator(t *testing.T, cfg *config.Config) (*Generator, *audittrail.MockStorage) {
	t.Helper()

	if cfg == nil {
		cfg = config.Empty()
	}
	store := &audittrail.MockStorage{}
	gen, err := NewGenerator(cfg, store)
	require.NoError(t, err)
	return gen, store
}
