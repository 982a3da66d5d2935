// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"errors"
	"fmt"
)

// Encoding errors. Any of these abort file generation.
var (
	ErrMissingField  = errors.New("missing field")
	ErrFieldOverflow = errors.New("value does not fit field width")
	ErrInvalidValue  = errors.New("invalid field value")

	// ErrUnknownRecordType and ErrSchemaLengthMismatch signal a defect in the
	// schema registry rather than bad input.
	ErrUnknownRecordType    = errors.New("unknown record type")
	ErrSchemaLengthMismatch = errors.New("record length does not match schema")
)

// Validation errors, checked against the whole PaymentOrder before encoding.
var (
	ErrCompanyAddressIncomplete = errors.New("has no a complete address to add to the file")
	ErrPartyWithoutAddress      = errors.New("has no an address to add to the file")
	ErrPartyAddressIncomplete   = errors.New("has no a country neither a state in its address")
	ErrPartyWithoutVATNumber    = errors.New("has no any vat number")
	ErrInvalidBankAccount       = errors.New("has a bank account which is not 20 characters long")
)

// FieldError records which field of which record failed to encode.
type FieldError struct {
	Record RecordType
	Field  string
	Err    error
}

func (e *FieldError) Error() string {
	if e.Record == "" {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Record, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// ValidationError names the company or party whose data is incomplete.
type ValidationError struct {
	Company bool
	Party   string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Company {
		return fmt.Sprintf("The company %s %v.", e.Party, e.Err)
	}
	return fmt.Sprintf("The party %s %v.", e.Party, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
