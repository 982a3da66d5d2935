// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/moov-io/csb34/x/mask"

	"github.com/go-kit/kit/log"
)

// File is a generated CSB 34-01 payment file.
type File struct {
	Records []Record

	// RecordCount and PaymentCount are the values written in the totals record.
	RecordCount  int
	PaymentCount int
}

// Bytes returns every record concatenated, without separators.
func (f *File) Bytes() []byte {
	if f == nil {
		return nil
	}
	var buf bytes.Buffer
	for i := range f.Records {
		buf.WriteString(f.Records[i].Text)
	}
	return buf.Bytes()
}

// Lines returns the records joined by terminator.
func (f *File) Lines(terminator string) []byte {
	if f == nil {
		return nil
	}
	var buf bytes.Buffer
	for i := range f.Records {
		buf.WriteString(f.Records[i].Text)
		buf.WriteString(terminator)
	}
	return buf.Bytes()
}

// Writer generates CSB 34-01 files. A Writer holds no per-file state and may
// be shared across goroutines.
type Writer struct {
	logger        log.Logger
	detailRecords []RecordType
}

type Option func(*Writer) error

// WithLogger sets the logger each generated file is reported to.
func WithLogger(logger log.Logger) Option {
	return func(w *Writer) error {
		if logger != nil {
			w.logger = logger
		}
		return nil
	}
}

// WithDetailRecords sets which per-receipt records are written, and in what order.
func WithDetailRecords(types ...RecordType) Option {
	return func(w *Writer) error {
		if len(types) == 0 {
			return errors.New("no detail records")
		}
		for _, t := range types {
			if !t.IsDetail() {
				return fmt.Errorf("%w: %q is not a detail record", ErrUnknownRecordType, t)
			}
		}
		w.detailRecords = append([]RecordType(nil), types...)
		return nil
	}
}

func NewWriter(opts ...Option) (*Writer, error) {
	w := &Writer{
		logger:        log.NewNopLogger(),
		detailRecords: DefaultDetailRecords,
	}
	for i := range opts {
		if err := opts[i](w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// DetailRecords returns the per-receipt records this Writer emits.
func (w *Writer) DetailRecords() []RecordType {
	return append([]RecordType(nil), w.detailRecords...)
}

// counters are the running totals of a single Generate call.
type counters struct {
	records  int
	payments int
}

// Generate encodes order into a complete file: the four header records, the
// detail records of each receipt in order, then the totals record. Nothing is
// returned unless every record encodes.
func (w *Writer) Generate(order *PaymentOrder) (*File, error) {
	if err := Validate(order); err != nil {
		return nil, err
	}

	var (
		file = &File{}
		c    counters
	)
	for _, t := range HeaderRecords {
		rec, err := EncodeHeader(t, order)
		if err != nil {
			return nil, err
		}
		file.Records = append(file.Records, rec)
		c.records++
	}

	for i := range order.Receipts {
		for _, t := range w.detailRecords {
			rec, err := EncodeDetail(t, order, order.Receipts[i])
			if err != nil {
				return nil, fmt.Errorf("receipt %d: %w", i, err)
			}
			file.Records = append(file.Records, rec)
			c.records++
		}
		c.payments++
	}

	// The totals record counts itself plus one more, as banks expect.
	c.records += 2
	rec, err := EncodeTotals(order, c.payments, c.records)
	if err != nil {
		return nil, err
	}
	file.Records = append(file.Records, rec)
	file.RecordCount = c.records
	file.PaymentCount = c.payments

	w.logger.Log(
		"csb34", "generated file",
		"company", mask.Identifier(order.VATNumber),
		"records", file.RecordCount,
		"payments", file.PaymentCount,
	)
	return file, nil
}
