// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package orders

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/moov-io/csb34/pkg/model"

	"github.com/stretchr/testify/require"
)

func readOrder(t *testing.T) CreateOrder {
	t.Helper()

	var req CreateOrder
	require.NoError(t, json.Unmarshal([]byte(orderJSON), &req))
	return req
}

func TestCreateOrder__PaymentOrder(t *testing.T) {
	req := readOrder(t)

	order, err := req.PaymentOrder(time.Now())
	require.NoError(t, err)

	require.Equal(t, "B12345678", order.VATNumber)
	require.Equal(t, time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC), order.CreationDate)
	require.Equal(t, time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC), order.PaymentDate)
	require.Len(t, order.Receipts, 2)
	require.Equal(t, "Lucia Fernandez", order.Receipts[0].Name)

	// total is summed from receipts
	require.Equal(t, "EUR 125.50", order.Amount.String())
}

func TestCreateOrder__ExplicitAmount(t *testing.T) {
	req := readOrder(t)
	amt, err := model.ParseAmount("EUR 99.99")
	require.NoError(t, err)
	req.Amount = amt

	order, err := req.PaymentOrder(time.Now())
	require.NoError(t, err)
	require.Equal(t, 9999, order.Amount.Int())
}

func TestCreateOrder__DefaultCreationDate(t *testing.T) {
	req := readOrder(t)
	req.CreationDate = ""

	now := time.Date(2026, time.October, 17, 15, 4, 5, 0, time.UTC)
	order, err := req.PaymentOrder(now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2026, time.October, 17, 0, 0, 0, 0, time.UTC), order.CreationDate)
}

func TestCreateOrder__Errors(t *testing.T) {
	req := readOrder(t)
	req.PaymentDate = ""
	_, err := req.PaymentOrder(time.Now())
	require.EqualError(t, err, "missing paymentDate")

	req = readOrder(t)
	req.PaymentDate = "20/10/2026"
	_, err = req.PaymentOrder(time.Now())
	require.Error(t, err)
	require.Contains(t, err.Error(), "paymentDate")

	req = readOrder(t)
	req.CreationDate = "yesterday"
	_, err = req.PaymentOrder(time.Now())
	require.Error(t, err)

	// mixed currencies can't be summed
	req = readOrder(t)
	usd, err := model.ParseAmount("USD 1.00")
	require.NoError(t, err)
	req.Receipts[1].Amount = *usd
	_, err = req.PaymentOrder(time.Now())
	require.Error(t, err)
}
