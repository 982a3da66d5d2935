// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"testing"
	"time"

	"github.com/moov-io/csb34/pkg/model"
)

func amount(t *testing.T, value string) model.Amount {
	t.Helper()

	amt, err := model.NewAmount("EUR", value)
	if err != nil {
		t.Fatal(err)
	}
	return *amt
}

func testReceipt(t *testing.T, vat, name, value string) Receipt {
	t.Helper()

	return Receipt{
		VATNumber:   vat,
		Name:        name,
		Street:      "Calle Mayor 1",
		Street2:     "Piso 2",
		ZipCity:     "28013 Madrid",
		Province:    "Madrid",
		Country:     "ES",
		Concept:     "Factura 2026/104",
		Concept2:    "Octubre",
		BankAccount: "00491500051234567892",
		Amount:      amount(t, value),
	}
}

func testOrder(t *testing.T, receipts ...Receipt) *PaymentOrder {
	t.Helper()

	return &PaymentOrder{
		VATNumber:    "B12345678",
		Name:         "Moov Iberia SL",
		Street:       "Avenida Diagonal 640",
		City:         "Barcelona",
		BankAccount:  "21000418450200051331",
		CreationDate: time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC),
		PaymentDate:  time.Date(2026, time.October, 20, 0, 0, 0, 0, time.UTC),
		Amount:       amount(t, "125.50"),
		Receipts:     receipts,
	}
}
