// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"fmt"
)

// withDefaults fills in the codes the host usually leaves blank.
func (o PaymentOrder) withDefaults() PaymentOrder {
	if o.ChargeDetail == "" {
		o.ChargeDetail = WithRelationship
	}
	if o.Expenses == "" {
		o.Expenses = ExpensesByPayer
	}
	return o
}

func (r Receipt) withDefaults() Receipt {
	if r.OperationCode == "" {
		r.OperationCode = Transfer
	}
	if r.TransferConcept == "" {
		r.TransferConcept = ConceptOthers
	}
	return r
}

type headerFunc func(order *PaymentOrder, acct BankAccount) Values

var headers = map[RecordType]headerFunc{
	HeaderIdentity: func(order *PaymentOrder, acct BankAccount) Values {
		return Values{
			"nif":              order.VATNumber,
			"send_date":        order.CreationDate,
			"creation_date":    order.PaymentDate,
			"bank_code":        acct.BankCode,
			"bank_office":      acct.Office,
			"bank_account_num": acct.Number,
			"charge_detail":    order.ChargeDetail,
			"expenses":         order.Expenses,
			"bank_account_dc":  acct.CheckDigits,
		}
	},
	HeaderName: func(order *PaymentOrder, _ BankAccount) Values {
		return Values{"nif": order.VATNumber, "name": order.Name}
	},
	HeaderAddress: func(order *PaymentOrder, _ BankAccount) Values {
		return Values{"nif": order.VATNumber, "address": order.Street}
	},
	HeaderCity: func(order *PaymentOrder, _ BankAccount) Values {
		return Values{"nif": order.VATNumber, "city": order.City}
	},
}

type detailFunc func(order *PaymentOrder, r *Receipt, acct BankAccount) Values

var details = map[RecordType]detailFunc{
	RecipientIdentity: func(order *PaymentOrder, r *Receipt, acct BankAccount) Values {
		return Values{
			"amount":           r.Amount,
			"bank_code":        acct.BankCode,
			"bank_office":      acct.Office,
			"bank_account_num": acct.Number,
			"expenses":         order.Expenses,
			"concept":          r.TransferConcept,
			"bank_account_dc":  acct.CheckDigits,
		}
	},
	RecipientName: func(_ *PaymentOrder, r *Receipt, _ BankAccount) Values {
		return Values{"name": r.Name}
	},
	RecipientAddress: func(_ *PaymentOrder, r *Receipt, _ BankAccount) Values {
		return Values{"address": r.Street}
	},
	RecipientAddress2: func(_ *PaymentOrder, r *Receipt, _ BankAccount) Values {
		return Values{"address2": r.Street2}
	},
	RecipientZipCity: func(_ *PaymentOrder, r *Receipt, _ BankAccount) Values {
		return Values{"zip_city": r.ZipCity}
	},
	RecipientProvince: func(_ *PaymentOrder, r *Receipt, _ BankAccount) Values {
		return Values{"province": r.Province}
	},
	RecipientConcept: func(_ *PaymentOrder, r *Receipt, _ BankAccount) Values {
		return Values{"concept": r.Concept}
	},
	RecipientConcept2: func(_ *PaymentOrder, r *Receipt, _ BankAccount) Values {
		return Values{"concept2": r.Concept2}
	},
	RecipientBeneficiary: func(_ *PaymentOrder, r *Receipt, _ BankAccount) Values {
		return Values{"beneficiary_nif": r.VATNumber, "another_id_doc": r.AnotherIDDoc}
	},
}

// EncodeHeader writes one of the four header records of order.
func EncodeHeader(t RecordType, order *PaymentOrder) (Record, error) {
	fn, ok := headers[t]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q is not a header record", ErrUnknownRecordType, t)
	}
	o := order.withDefaults()
	acct, err := ParseBankAccount(o.BankAccount)
	if err != nil {
		return Record{}, err
	}
	return BuildRecord(t, fn(&o, acct))
}

// EncodeDetail writes one of the nine per-receipt records.
func EncodeDetail(t RecordType, order *PaymentOrder, receipt Receipt) (Record, error) {
	fn, ok := details[t]
	if !ok {
		return Record{}, fmt.Errorf("%w: %q is not a detail record", ErrUnknownRecordType, t)
	}
	o, r := order.withDefaults(), receipt.withDefaults()
	acct, err := ParseBankAccount(r.BankAccount)
	if err != nil {
		return Record{}, err
	}

	values := fn(&o, &r, acct)
	values["operation_code"] = r.OperationCode
	values["nif"] = o.VATNumber
	values["recipient_nif"] = r.VATNumber
	return BuildRecord(t, values)
}

// EncodeTotals writes the closing record with the counters of a file.
func EncodeTotals(order *PaymentOrder, paymentCount, recordCount int) (Record, error) {
	return BuildRecord(Totals, Values{
		"nif":                order.VATNumber,
		"amount":             order.Amount,
		"payment_line_count": paymentCount,
		"record_count":       recordCount,
	})
}
