// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/moov-io/csb34/pkg/model"
)

// PaymentOrder is a payment group as handed over by the host system. Its
// values are written as-is, the generator does not compute any of them.
type PaymentOrder struct {
	VATNumber string `json:"vatNumber"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`

	// BankAccount is the 20 character account the payments are charged to.
	BankAccount string `json:"bankAccount"`

	CreationDate time.Time    `json:"creationDate"`
	PaymentDate  time.Time    `json:"paymentDate"`
	Amount       model.Amount `json:"amount"`

	ChargeDetail ChargeDetail `json:"chargeDetail,omitempty"`
	Expenses     Expenses     `json:"expenses,omitempty"`

	Receipts []Receipt `json:"receipts"`
}

// Receipt is one payment to a recipient.
type Receipt struct {
	VATNumber string `json:"vatNumber"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	Street2   string `json:"street2,omitempty"`
	ZipCity   string `json:"zipCity"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Concept   string `json:"concept,omitempty"`
	Concept2  string `json:"concept2,omitempty"`

	BankAccount string       `json:"bankAccount"`
	Amount      model.Amount `json:"amount"`

	OperationCode   OperationCode   `json:"operationCode,omitempty"`
	TransferConcept TransferConcept `json:"transferConcept,omitempty"`
	AnotherIDDoc    string          `json:"anotherIdDoc,omitempty"`
}

// BankAccountLength is the size of a Spanish CCC account number.
const BankAccountLength = 20

// BankAccount is a CCC account number split into its parts.
type BankAccount struct {
	BankCode    string
	Office      string
	CheckDigits string
	Number      string
}

// ParseBankAccount splits a 20 character account as bank[0:4], office[4:8],
// check digits[8:10] and account number[10:20].
func ParseBankAccount(s string) (BankAccount, error) {
	if utf8.RuneCountInString(s) != BankAccountLength || len(s) != BankAccountLength {
		return BankAccount{}, fmt.Errorf("bank account %q is %d characters: %w", s, utf8.RuneCountInString(s), ErrInvalidBankAccount)
	}
	return BankAccount{
		BankCode:    s[0:4],
		Office:      s[4:8],
		CheckDigits: s[8:10],
		Number:      s[10:20],
	}, nil
}

func (acct BankAccount) String() string {
	return acct.BankCode + acct.Office + acct.CheckDigits + acct.Number
}

// OperationCode is the kind of payment a receipt is.
type OperationCode string

const (
	Transfer         OperationCode = "transfer"
	BankCheque       OperationCode = "bank_cheque"
	PromissoryNote   OperationCode = "promissory_note"
	CertifiedPayment OperationCode = "certified_payment"
)

// Code returns the two digit code written in detail records.
func (c OperationCode) Code() string {
	switch c {
	case Transfer:
		return "56"
	case BankCheque:
		return "57"
	case PromissoryNote:
		return "58"
	case CertifiedPayment:
		return "59"
	}
	return string(c)
}

// ChargeDetail says if the account is charged once per file or once per payment.
type ChargeDetail string

const (
	WithoutRelationship ChargeDetail = "without_relationship"
	WithRelationship    ChargeDetail = "with_relationship"
)

func (c ChargeDetail) Code() string {
	switch c {
	case WithoutRelationship:
		return "0"
	case WithRelationship:
		return "1"
	}
	return string(c)
}

// Expenses says who pays the bank fees.
type Expenses string

const (
	ExpensesByPayer     Expenses = "expenses_by_payer"
	ExpensesByRecipient Expenses = "expenses_by_recipient"
)

func (e Expenses) Code() string {
	switch e {
	case ExpensesByPayer:
		return "1"
	case ExpensesByRecipient:
		return "2"
	}
	return string(e)
}

// TransferConcept classifies a transfer.
type TransferConcept string

const (
	ConceptPayroll TransferConcept = "payroll"
	ConceptPension TransferConcept = "pension"
	ConceptOthers  TransferConcept = "others"
)

func (c TransferConcept) Code() string {
	switch c {
	case ConceptPayroll:
		return "1"
	case ConceptPension:
		return "8"
	case ConceptOthers:
		return "9"
	}
	return string(c)
}
