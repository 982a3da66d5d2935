// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Values maps field names to the values written into a record.
type Values map[string]interface{}

// Record is one encoded, fixed-width line of a file.
type Record struct {
	Type RecordType
	Text string
}

func (r Record) String() string {
	return r.Text
}

// Build encodes values into a record following schema field by field.
func Build(schema *Schema, values Values) (Record, error) {
	if schema == nil {
		return Record{}, ErrUnknownRecordType
	}

	var buf strings.Builder
	for _, f := range schema.Fields {
		var value interface{}
		if f.Kind != Constant {
			v, ok := values[f.Name]
			if !ok || v == nil {
				if f.Default == nil {
					return Record{}, &FieldError{Record: schema.Type, Field: f.Name, Err: ErrMissingField}
				}
				v = f.Default
			}
			value = v
		}

		encoded, err := Encode(value, f)
		if err != nil {
			var fe *FieldError
			if errors.As(err, &fe) {
				fe.Record = schema.Type
				return Record{}, fe
			}
			return Record{}, &FieldError{Record: schema.Type, Field: f.Name, Err: err}
		}
		buf.WriteString(encoded)
	}

	text := buf.String()
	if n := utf8.RuneCountInString(text); n != schema.Length {
		return Record{}, fmt.Errorf("%s: %w: got %d, want %d", schema.Type, ErrSchemaLengthMismatch, n, schema.Length)
	}
	return Record{Type: schema.Type, Text: text}, nil
}

// BuildRecord looks up the schema for t and builds a record from values.
func BuildRecord(t RecordType, values Values) (Record, error) {
	schema, err := Lookup(t)
	if err != nil {
		return Record{}, err
	}
	return Build(schema, values)
}
