// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package orders

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/moov-io/csb34/pkg/csb34"
	"github.com/moov-io/csb34/pkg/model"
	"github.com/moov-io/csb34/pkg/util"
)

// CreateOrder is the JSON body of a file generation request.
type CreateOrder struct {
	VATNumber   string `json:"vatNumber"`
	Name        string `json:"name"`
	Street      string `json:"street"`
	City        string `json:"city"`
	BankAccount string `json:"bankAccount"`

	// CreationDate and PaymentDate are YYYY-MM-DD. CreationDate defaults to today.
	CreationDate string `json:"creationDate,omitempty"`
	PaymentDate  string `json:"paymentDate"`

	// Amount is the order total, e.g. "EUR 1250.00". When omitted it is the
	// sum of every receipt.
	Amount *model.Amount `json:"amount,omitempty"`

	ChargeDetail csb34.ChargeDetail `json:"chargeDetail,omitempty"`
	Expenses     csb34.Expenses     `json:"expenses,omitempty"`

	Receipts []csb34.Receipt `json:"receipts"`
}

// PaymentOrder converts the request into the order handed to the writer.
func (req CreateOrder) PaymentOrder(now time.Time) (*csb34.PaymentOrder, error) {
	order := &csb34.PaymentOrder{
		VATNumber:    strings.TrimSpace(req.VATNumber),
		Name:         req.Name,
		Street:       req.Street,
		City:         req.City,
		BankAccount:  strings.TrimSpace(req.BankAccount),
		ChargeDetail: req.ChargeDetail,
		Expenses:     req.Expenses,
		Receipts:     req.Receipts,
	}

	created, err := parseDate("creationDate", req.CreationDate)
	if err != nil {
		return nil, err
	}
	if created.IsZero() {
		y, m, d := now.Date()
		created = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	order.CreationDate = created

	order.PaymentDate, err = parseDate("paymentDate", req.PaymentDate)
	if err != nil {
		return nil, err
	}
	if order.PaymentDate.IsZero() {
		return nil, errors.New("missing paymentDate")
	}

	if req.Amount != nil {
		order.Amount = *req.Amount
	} else {
		amounts := make([]model.Amount, len(req.Receipts))
		for i := range req.Receipts {
			amounts[i] = req.Receipts[i].Amount
		}
		total, err := model.SumAmounts(amounts...)
		if err != nil {
			return nil, fmt.Errorf("receipt amounts: %v", err)
		}
		order.Amount = *total
	}
	return order, nil
}

func parseDate(name, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	when := util.FirstParsedTime(value, util.ISODateFormat, time.RFC3339)
	if when.IsZero() {
		return when, fmt.Errorf("invalid %s %q, expected YYYY-MM-DD", name, value)
	}
	return when, nil
}
