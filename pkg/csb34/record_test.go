// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	s, err := Lookup(HeaderName)
	require.NoError(t, err)

	rec, err := Build(s, Values{
		"nif":  "B12345678",
		"name": "Moov Iberia SL",
	})
	require.NoError(t, err)
	require.Equal(t, HeaderName, rec.Type)

	expected := "0356" + "B12345678 " + strings.Repeat(" ", 12) + "002" + "Moov Iberia SL" + strings.Repeat(" ", 21)
	require.Equal(t, expected, rec.Text)
	require.Equal(t, expected, rec.String())
}

func TestBuild__MissingField(t *testing.T) {
	rec, err := BuildRecord(HeaderCity, Values{"nif": "B12345678"})
	require.True(t, errors.Is(err, ErrMissingField))
	require.Equal(t, "", rec.Text)

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, HeaderCity, fe.Record)
	require.Equal(t, "city", fe.Field)

	// nil values are missing too
	_, err = BuildRecord(HeaderCity, Values{"nif": "B12345678", "city": nil})
	require.True(t, errors.Is(err, ErrMissingField))
}

func TestBuild__Defaults(t *testing.T) {
	rec, err := BuildRecord(RecipientBeneficiary, Values{
		"nif":             "B12345678",
		"recipient_nif":   "12345678Z",
		"beneficiary_nif": "12345678Z",
	})
	require.NoError(t, err)
	require.Equal(t, "0656", rec.Text[:4], "operation code defaults to transfer")
	require.Equal(t, RecordLength, len(rec.Text))
}

func TestBuild__Overflow(t *testing.T) {
	_, err := BuildRecord(Totals, Values{
		"nif":                "B12345678",
		"amount":             int64(1),
		"payment_line_count": 123456789,
		"record_count":       1,
	})
	require.True(t, errors.Is(err, ErrFieldOverflow))

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, Totals, fe.Record)
	require.Equal(t, "payment_line_count", fe.Field)
}

func TestBuild__SchemaLengthMismatch(t *testing.T) {
	broken := &Schema{
		Type:   RecordType("broken"),
		Length: RecordLength,
		Fields: []FieldSpec{constant("record_code", "03", 2)},
	}
	_, err := Build(broken, nil)
	require.True(t, errors.Is(err, ErrSchemaLengthMismatch))

	_, err = Build(nil, nil)
	require.True(t, errors.Is(err, ErrUnknownRecordType))

	_, err = BuildRecord(RecordType("footer"), nil)
	require.True(t, errors.Is(err, ErrUnknownRecordType))
}
