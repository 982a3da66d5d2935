// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"fmt"
	"strings"
)

// RecordLength is the width of every CSB 34-01 record.
const RecordLength = 64

// RecordType names one of the record layouts of the standard.
type RecordType string

const (
	HeaderIdentity RecordType = "header_identity"
	HeaderName     RecordType = "header_name"
	HeaderAddress  RecordType = "header_address"
	HeaderCity     RecordType = "header_city"

	RecipientIdentity    RecordType = "recipient_identity"
	RecipientName        RecordType = "recipient_name"
	RecipientAddress     RecordType = "recipient_address"
	RecipientAddress2    RecordType = "recipient_address2"
	RecipientZipCity     RecordType = "recipient_zip_city"
	RecipientProvince    RecordType = "recipient_province"
	RecipientConcept     RecordType = "recipient_concept"
	RecipientConcept2    RecordType = "recipient_concept2"
	RecipientBeneficiary RecordType = "recipient_beneficiary"

	Totals RecordType = "totals"
)

// HeaderRecords are written once per file, in this order.
var HeaderRecords = []RecordType{HeaderIdentity, HeaderName, HeaderAddress, HeaderCity}

// DetailRecords lists every per-receipt record the standard defines.
var DetailRecords = []RecordType{
	RecipientIdentity,
	RecipientName,
	RecipientAddress,
	RecipientAddress2,
	RecipientZipCity,
	RecipientProvince,
	RecipientConcept,
	RecipientConcept2,
	RecipientBeneficiary,
}

// DefaultDetailRecords are the per-receipt records written unless configured otherwise.
var DefaultDetailRecords = []RecordType{RecipientIdentity, RecipientName}

// IsDetail reports if t is written once per receipt.
func (t RecordType) IsDetail() bool {
	for i := range DetailRecords {
		if DetailRecords[i] == t {
			return true
		}
	}
	return false
}

// ParseRecordType reads a record type name, case-insensitive.
func ParseRecordType(s string) (RecordType, error) {
	t := RecordType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := registry[t]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRecordType, s)
	}
	return t, nil
}

// Schema is the ordered field layout of a record type.
type Schema struct {
	Type   RecordType
	Length int
	Fields []FieldSpec
}

// Width returns the sum of every field's width.
func (s *Schema) Width() int {
	var total int
	for i := range s.Fields {
		total += s.Fields[i].Width
	}
	return total
}

// Field returns the named field and its 0-indexed starting column.
func (s *Schema) Field(name string) (FieldSpec, int, bool) {
	var start int
	for i := range s.Fields {
		if s.Fields[i].Name == name {
			return s.Fields[i], start, true
		}
		start += s.Fields[i].Width
	}
	return FieldSpec{}, 0, false
}

// Lookup returns the schema registered for t.
func Lookup(t RecordType) (*Schema, error) {
	s, ok := registry[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRecordType, t)
	}
	return s, nil
}

// Schemas returns every registered schema, headers first and totals last.
func Schemas() []*Schema {
	var out []*Schema
	for _, t := range HeaderRecords {
		out = append(out, registry[t])
	}
	for _, t := range DetailRecords {
		out = append(out, registry[t])
	}
	return append(out, registry[Totals])
}

func constant(name, value string, width int) FieldSpec {
	return FieldSpec{Name: name, Width: width, Kind: Constant, Value: value}
}

func filler(width int) FieldSpec {
	return FieldSpec{Name: "filler", Width: width, Kind: Constant}
}

func text(name string, width int) FieldSpec {
	return FieldSpec{Name: name, Width: width, Kind: Text, Justify: Left, Pad: ' '}
}

func headerPrefix(dataNumber string) []FieldSpec {
	return []FieldSpec{
		constant("record_code", "03", 2),
		constant("operation_code", "56", 2),
		text("nif", 10),
		filler(12),
		constant("data_number", dataNumber, 3),
	}
}

func detailPrefix(dataNumber string) []FieldSpec {
	return []FieldSpec{
		constant("record_code", "06", 2),
		FieldSpec{Name: "operation_code", Width: 2, Kind: Numeric, Default: Transfer},
		text("nif", 10),
		text("recipient_nif", 12),
		constant("data_number", dataNumber, 3),
	}
}

func schema(t RecordType, prefix []FieldSpec, body ...FieldSpec) *Schema {
	return &Schema{
		Type:   t,
		Length: RecordLength,
		Fields: append(prefix, body...),
	}
}

var registry = func() map[RecordType]*Schema {
	schemas := []*Schema{
		schema(HeaderIdentity, headerPrefix("001"),
			FieldSpec{Name: "send_date", Width: 6, Kind: Date},
			FieldSpec{Name: "creation_date", Width: 6, Kind: Date},
			text("bank_code", 4),
			text("bank_office", 4),
			text("bank_account_num", 10),
			FieldSpec{Name: "charge_detail", Width: 1, Kind: Numeric, Default: WithRelationship},
			FieldSpec{Name: "expenses", Width: 1, Kind: Numeric, Default: ExpensesByPayer},
			filler(1),
			text("bank_account_dc", 2),
		),
		schema(HeaderName, headerPrefix("002"), text("name", 35)),
		schema(HeaderAddress, headerPrefix("003"), text("address", 35)),
		schema(HeaderCity, headerPrefix("004"), text("city", 35)),

		schema(RecipientIdentity, detailPrefix("010"),
			FieldSpec{Name: "amount", Width: 12, Kind: SignedAmount},
			text("bank_code", 4),
			text("bank_office", 4),
			text("bank_account_num", 10),
			FieldSpec{Name: "expenses", Width: 1, Kind: Numeric, Default: ExpensesByPayer},
			FieldSpec{Name: "concept", Width: 1, Kind: Numeric, Default: ConceptOthers},
			filler(1),
			text("bank_account_dc", 2),
		),
		schema(RecipientName, detailPrefix("011"), text("name", 35)),
		schema(RecipientAddress, detailPrefix("012"), text("address", 35)),
		schema(RecipientAddress2, detailPrefix("013"), text("address2", 35)),
		schema(RecipientZipCity, detailPrefix("014"), text("zip_city", 35)),
		schema(RecipientProvince, detailPrefix("015"), text("province", 35)),
		schema(RecipientConcept, detailPrefix("016"), text("concept", 35)),
		schema(RecipientConcept2, detailPrefix("017"), text("concept2", 35)),
		schema(RecipientBeneficiary, detailPrefix("018"),
			text("beneficiary_nif", 12),
			FieldSpec{Name: "another_id_doc", Width: 1, Kind: Text, Default: ""},
			filler(22),
		),

		schema(Totals, []FieldSpec{
			constant("record_code", "08", 2),
			constant("operation_code", "56", 2),
			text("nif", 10),
			filler(15),
		},
			FieldSpec{Name: "amount", Width: 12, Kind: SignedAmount},
			FieldSpec{Name: "payment_line_count", Width: 8, Kind: Numeric},
			FieldSpec{Name: "record_count", Width: 10, Kind: Numeric},
			filler(5),
		),
	}

	out := make(map[RecordType]*Schema, len(schemas))
	for _, s := range schemas {
		if w := s.Width(); w != s.Length {
			panic(fmt.Sprintf("csb34: %s schema is %d columns wide, expected %d", s.Type, w, s.Length))
		}
		out[s.Type] = s
	}
	return out
}()
