// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ianlopshire/go-fixedwidth"
)

// ShortDate is a DDMMYY field.
type ShortDate struct {
	time.Time
}

// UnmarshalText implements encoding.TextUnmarshaler, which the fixed-width
// decoder calls with the raw field. It shadows time.Time's RFC 3339 parsing.
func (d *ShortDate) UnmarshalText(data []byte) error {
	when, err := time.Parse(DateLayout, strings.TrimSpace(string(data)))
	if err != nil {
		return fmt.Errorf("%w: date %q", ErrInvalidValue, data)
	}
	d.Time = when
	return nil
}

// HeaderIdentityRecord is the decoded form of the first header record.
type HeaderIdentityRecord struct {
	RecordCode     string    `fixed:"1,2"`
	OperationCode  string    `fixed:"3,4"`
	NIF            string    `fixed:"5,14"`
	DataNumber     string    `fixed:"27,29"`
	SendDate       ShortDate `fixed:"30,35"`
	CreationDate   ShortDate `fixed:"36,41"`
	BankCode       string    `fixed:"42,45"`
	BankOffice     string    `fixed:"46,49"`
	BankAccountNum string    `fixed:"50,59"`
	ChargeDetail   string    `fixed:"60,60"`
	Expenses       string    `fixed:"61,61"`
	BankAccountDC  string    `fixed:"63,64"`
}

// TextRecord is the decoded form of records whose body is a single text
// field: header name, address and city plus the recipient text records.
type TextRecord struct {
	RecordCode    string `fixed:"1,2"`
	OperationCode string `fixed:"3,4"`
	NIF           string `fixed:"5,14"`
	RecipientNIF  string `fixed:"15,26"`
	DataNumber    string `fixed:"27,29"`
	Text          string `fixed:"30,64"`
}

// RecipientIdentityRecord is the decoded form of the first detail record.
type RecipientIdentityRecord struct {
	RecordCode     string `fixed:"1,2"`
	OperationCode  string `fixed:"3,4"`
	NIF            string `fixed:"5,14"`
	RecipientNIF   string `fixed:"15,26"`
	DataNumber     string `fixed:"27,29"`
	Amount         int64  `fixed:"30,41"`
	BankCode       string `fixed:"42,45"`
	BankOffice     string `fixed:"46,49"`
	BankAccountNum string `fixed:"50,59"`
	Expenses       string `fixed:"60,60"`
	Concept        string `fixed:"61,61"`
	BankAccountDC  string `fixed:"63,64"`
}

// BeneficiaryRecord is the decoded form of the beneficiary detail record.
type BeneficiaryRecord struct {
	RecordCode     string `fixed:"1,2"`
	OperationCode  string `fixed:"3,4"`
	NIF            string `fixed:"5,14"`
	RecipientNIF   string `fixed:"15,26"`
	DataNumber     string `fixed:"27,29"`
	BeneficiaryNIF string `fixed:"30,41"`
	AnotherIDDoc   string `fixed:"42,42"`
}

// TotalsRecord is the decoded form of the closing record.
type TotalsRecord struct {
	RecordCode       string `fixed:"1,2"`
	OperationCode    string `fixed:"3,4"`
	NIF              string `fixed:"5,14"`
	Amount           int64  `fixed:"30,41"`
	PaymentLineCount int    `fixed:"42,49"`
	RecordCount      int    `fixed:"50,59"`
}

// ParsedRecord is one record read back from a file. Value holds one of the
// *Record types above.
type ParsedRecord struct {
	Type  RecordType
	Text  string
	Value interface{}
}

var dataNumbers = map[string]RecordType{
	"03001": HeaderIdentity,
	"03002": HeaderName,
	"03003": HeaderAddress,
	"03004": HeaderCity,
	"06010": RecipientIdentity,
	"06011": RecipientName,
	"06012": RecipientAddress,
	"06013": RecipientAddress2,
	"06014": RecipientZipCity,
	"06015": RecipientProvince,
	"06016": RecipientConcept,
	"06017": RecipientConcept2,
	"06018": RecipientBeneficiary,
}

// Reader decodes records from a CSB 34-01 file. Records may be concatenated
// or separated by LF / CRLF line terminators.
type Reader struct {
	r *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{r: bufio.NewReader(r)}
}

// Read decodes every record in the file.
func (rd *Reader) Read() ([]ParsedRecord, error) {
	bs, err := ioutil.ReadAll(rd.r)
	if err != nil {
		return nil, err
	}
	payload := strings.NewReplacer("\r", "", "\n", "").Replace(string(bs))
	if !utf8.ValidString(payload) {
		return nil, fmt.Errorf("csb34: file is not valid UTF-8")
	}

	runes := []rune(payload)
	if len(runes)%RecordLength != 0 {
		return nil, fmt.Errorf("csb34: %d characters is not a whole number of %d column records", len(runes), RecordLength)
	}

	var out []ParsedRecord
	for start := 0; start < len(runes); start += RecordLength {
		rec, err := ParseRecord(string(runes[start : start+RecordLength]))
		if err != nil {
			return nil, fmt.Errorf("csb34: record %d: %w", start/RecordLength+1, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

// ParseRecord identifies and decodes a single record.
func ParseRecord(line string) (ParsedRecord, error) {
	t, err := identify(line)
	if err != nil {
		return ParsedRecord{}, err
	}

	var value interface{}
	switch t {
	case HeaderIdentity:
		value = &HeaderIdentityRecord{}
	case RecipientIdentity:
		value = &RecipientIdentityRecord{}
	case RecipientBeneficiary:
		value = &BeneficiaryRecord{}
	case Totals:
		value = &TotalsRecord{}
	default:
		value = &TextRecord{}
	}

	dec := fixedwidth.NewDecoder(strings.NewReader(line))
	dec.SetUseCodepointIndices(true)
	if err := dec.Decode(value); err != nil {
		return ParsedRecord{}, fmt.Errorf("%s: %v", t, err)
	}
	return ParsedRecord{Type: t, Text: line, Value: value}, nil
}

func identify(line string) (RecordType, error) {
	runes := []rune(line)
	if len(runes) != RecordLength {
		return "", fmt.Errorf("%w: record is %d columns", ErrSchemaLengthMismatch, len(runes))
	}
	code := string(runes[0:2])
	if code == "08" {
		return Totals, nil
	}
	key := code + string(runes[26:29])
	if t, ok := dataNumbers[key]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: record code %q data number %q", ErrUnknownRecordType, code, string(runes[26:29]))
}

// Split cuts a record into its raw field values following schema, without
// removing any padding.
func Split(schema *Schema, line string) (map[string]string, error) {
	runes := []rune(line)
	if len(runes) != schema.Length {
		return nil, fmt.Errorf("%w: record is %d columns, %s is %d", ErrSchemaLengthMismatch, len(runes), schema.Type, schema.Length)
	}
	out := make(map[string]string, len(schema.Fields))
	var start int
	for _, f := range schema.Fields {
		if f.Name != "filler" {
			out[f.Name] = string(runes[start : start+f.Width])
		}
		start += f.Width
	}
	return out, nil
}
