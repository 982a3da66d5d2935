// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package csb34

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/moov-io/csb34/pkg/model"
)

// Kind describes how a field's value is rendered into its slot.
type Kind int

const (
	// Constant fields carry their literal in FieldSpec.Value and ignore input.
	Constant Kind = iota
	Text
	Numeric
	Date
	SignedAmount
)

func (k Kind) String() string {
	switch k {
	case Constant:
		return "constant"
	case Text:
		return "text"
	case Numeric:
		return "numeric"
	case Date:
		return "date"
	case SignedAmount:
		return "signed-amount"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

type Justification int

const (
	Left Justification = iota
	Right
)

// DateLayout is the DDMMYY pattern dates are written with.
const DateLayout = "020106"

// FieldSpec is one slot of a fixed-width record.
type FieldSpec struct {
	Name    string
	Width   int
	Kind    Kind
	Justify Justification
	Pad     rune

	// Value is the literal written by Constant fields.
	Value string

	// Default is encoded when the caller supplies no value.
	Default interface{}
}

func (f FieldSpec) padding() rune {
	if f.Pad != 0 {
		return f.Pad
	}
	switch f.Kind {
	case Numeric, Date, SignedAmount:
		return '0'
	}
	return ' '
}

func (f FieldSpec) justification() Justification {
	switch f.Kind {
	case Numeric, Date, SignedAmount:
		return Right
	}
	return f.Justify
}

// coder is implemented by the code enums (OperationCode, Expenses, ...) which
// have a symbolic name but are written as their bank code.
type coder interface {
	Code() string
}

// Encode renders value into a string exactly f.Width characters wide.
//
// Free text is truncated when too long. Numeric, date and amount values which
// don't fit return ErrFieldOverflow instead.
func Encode(value interface{}, f FieldSpec) (string, error) {
	if f.Width <= 0 {
		return "", &FieldError{Field: f.Name, Err: ErrSchemaLengthMismatch}
	}
	switch f.Kind {
	case Constant:
		return fit(f.Value, f, false)

	case Text:
		s, err := textValue(value)
		if err != nil {
			return "", &FieldError{Field: f.Name, Err: err}
		}
		return fit(sanitize(s), f, true)

	case Numeric:
		digits, err := numericValue(value)
		if err != nil {
			return "", &FieldError{Field: f.Name, Err: err}
		}
		return fit(digits, f, false)

	case Date:
		when, err := dateValue(value)
		if err != nil {
			return "", &FieldError{Field: f.Name, Err: err}
		}
		return fit(when.Format(DateLayout), f, false)

	case SignedAmount:
		cents, err := amountValue(value)
		if err != nil {
			return "", &FieldError{Field: f.Name, Err: err}
		}
		return fit(strconv.FormatInt(cents, 10), f, false)
	}
	return "", &FieldError{Field: f.Name, Err: fmt.Errorf("%w: %v", ErrInvalidValue, f.Kind)}
}

// fit pads s up to the field width, or truncates it when allowed.
func fit(s string, f FieldSpec, truncate bool) (string, error) {
	n := utf8.RuneCountInString(s)
	if n > f.Width {
		if !truncate {
			return "", &FieldError{Field: f.Name, Err: fmt.Errorf("%w: %q is wider than %d", ErrFieldOverflow, s, f.Width)}
		}
		return string([]rune(s)[:f.Width]), nil
	}
	padding := strings.Repeat(string(f.padding()), f.Width-n)
	if f.justification() == Right {
		return padding + s, nil
	}
	return s + padding, nil
}

// sanitize replaces control characters so a value can't break the record layout.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

func textValue(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case coder:
		return v.Code(), nil
	case fmt.Stringer:
		return v.String(), nil
	case int, int32, int64:
		return fmt.Sprintf("%d", v), nil
	}
	return "", fmt.Errorf("%w: %T is not text", ErrInvalidValue, value)
}

func numericValue(value interface{}) (string, error) {
	var n int64
	switch v := value.(type) {
	case int:
		n = int64(v)
	case int32:
		n = int64(v)
	case int64:
		n = v
	case uint:
		n = int64(v)
	case uint32:
		n = int64(v)
	case coder:
		return digitsOnly(v.Code())
	case string:
		return digitsOnly(v)
	default:
		return "", fmt.Errorf("%w: %T is not numeric", ErrInvalidValue, value)
	}
	if n < 0 {
		return "", fmt.Errorf("%w: negative number %d", ErrInvalidValue, n)
	}
	return strconv.FormatInt(n, 10), nil
}

func digitsOnly(s string) (string, error) {
	if s == "" {
		return "", ErrMissingField
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q is not numeric", ErrInvalidValue, s)
		}
	}
	return s, nil
}

func dateValue(value interface{}) (time.Time, error) {
	var when time.Time
	switch v := value.(type) {
	case time.Time:
		when = v
	case *time.Time:
		if v != nil {
			when = *v
		}
	default:
		return when, fmt.Errorf("%w: %T is not a date", ErrInvalidValue, value)
	}
	if when.IsZero() {
		return when, ErrMissingField
	}
	return when, nil
}

// amountValue returns the amount scaled to cents, the implied two decimals
// of the standard. Payment files never carry negative amounts.
func amountValue(value interface{}) (int64, error) {
	var cents int64
	switch v := value.(type) {
	case model.Amount:
		cents = int64(v.Int())
	case *model.Amount:
		cents = int64(v.Int())
	case int:
		cents = int64(v)
	case int64:
		cents = v
	default:
		return 0, fmt.Errorf("%w: %T is not an amount", ErrInvalidValue, value)
	}
	if cents < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", ErrInvalidValue, cents)
	}
	return cents, nil
}
