// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"errors"
	"strings"
)

// Validate checks the company and every receipt carry the data a CSB 34-01
// file requires. The first problem found is returned, naming the company or
// party at fault.
func Validate(order *PaymentOrder) error {
	if order == nil {
		return errors.New("nil PaymentOrder")
	}

	company := func(err error) error {
		return &ValidationError{Company: true, Party: order.Name, Err: err}
	}
	if blank(order.VATNumber) {
		return company(ErrPartyWithoutVATNumber)
	}
	if blank(order.Street) || blank(order.City) {
		return company(ErrCompanyAddressIncomplete)
	}
	if _, err := ParseBankAccount(order.BankAccount); err != nil {
		return company(ErrInvalidBankAccount)
	}

	for i := range order.Receipts {
		if err := validateReceipt(&order.Receipts[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateReceipt(r *Receipt) error {
	party := func(err error) error {
		return &ValidationError{Party: r.Name, Err: err}
	}
	if blank(r.VATNumber) {
		return party(ErrPartyWithoutVATNumber)
	}
	if blank(r.Street) && blank(r.ZipCity) {
		return party(ErrPartyWithoutAddress)
	}
	if blank(r.Province) && blank(r.Country) {
		return party(ErrPartyAddressIncomplete)
	}
	if _, err := ParseBankAccount(r.BankAccount); err != nil {
		return party(ErrInvalidBankAccount)
	}
	return nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
