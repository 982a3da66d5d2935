// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
)

// DefaultCurrency is the ISO 4217 symbol used by Spanish bank payment files.
const DefaultCurrency = "EUR"

var (
	// ErrDifferentCurrencies is returned when an operation on an Amount instance is attempted with another Amount of a different currency (symbol).
	ErrDifferentCurrencies = errors.New("different currencies")
)

// Amount represents units of a particular currency.
type Amount struct {
	number int
	symbol string // ISO 4217, i.e. EUR
}

// Int returns the currency amount as an integer number of cents.
// Example: "EUR 1.11" returns 111
func (a *Amount) Int() int {
	if a == nil {
		return 0
	}
	return a.number
}

// Symbol returns the ISO 4217 currency symbol, DefaultCurrency when unset.
func (a *Amount) Symbol() string {
	if a == nil || a.symbol == "" {
		return DefaultCurrency
	}
	return a.symbol
}

func (a *Amount) Validate() error {
	if a == nil {
		return errors.New("nil Amount")
	}
	_, err := currency.ParseISO(a.symbol)
	return err
}

func (a Amount) Equal(other Amount) bool {
	return a.String() == other.String()
}

// Plus returns an Amount of adding both Amount instances together.
// Currency symbols must match for Plus to return without errors.
func (a Amount) Plus(other Amount) (Amount, error) {
	if a.Symbol() != other.Symbol() {
		return a, ErrDifferentCurrencies
	}
	return Amount{number: a.number + other.number, symbol: a.Symbol()}, nil
}

// NewAmountFromInt returns an Amount object after converting an integer amount (in cents)
// and validating the ISO 4217 currency symbol.
func NewAmountFromInt(symbol string, number int) (*Amount, error) {
	return NewAmount(symbol, formattedNumber(number))
}

// NewAmount returns an Amount object after validating the ISO 4217 currency symbol.
func NewAmount(symbol string, number string) (*Amount, error) {
	var amt Amount
	if err := amt.FromString(fmt.Sprintf("%s %s", symbol, number)); err != nil {
		return nil, err
	}
	return &amt, nil
}

// String returns an amount formatted with the currency.
// Examples:
//   EUR 12.53
//   GBP 4.02
//
// The symbol returned corresponds to the ISO 4217 standard.
// Only one period used to signify decimal value will be included.
func (a *Amount) String() string {
	if a == nil || a.symbol == "" || a.number <= 0 {
		return fmt.Sprintf("%s 0.00", a.Symbol())
	}
	return fmt.Sprintf("%s %s", a.symbol, formattedNumber(a.number))
}

func formattedNumber(number int) string {
	if number <= 0 {
		return "0.00"
	}
	return fmt.Sprintf("%d.%02d", number/100, number%100)
}

// ParseAmount attempts to read a string as a valid currency symbol and number.
// Examples:
//   EUR 12.53
func ParseAmount(in string) (*Amount, error) {
	amt, err := NewAmount(DefaultCurrency, "0.00")
	if err != nil {
		return nil, err
	}
	if err := amt.FromString(in); err != nil {
		return nil, err
	}
	return amt, nil
}

// FromString attempts to parse str as a valid currency symbol and
// the quantity.
// Examples:
//   EUR 12.53
//   GBP 4.02
func (a *Amount) FromString(str string) error {
	if a == nil {
		return errors.New("nil Amount")
	}

	parts := strings.Fields(str)
	if len(parts) != 2 {
		return fmt.Errorf("invalid Amount format: %q", str)
	}

	sym, err := currency.ParseISO(parts[0])
	if err != nil {
		return err
	}

	number, err := parseCents(parts[1])
	if err != nil {
		return err
	}

	a.number = number
	a.symbol = sym.String()
	return nil
}

// MaxCents is the largest quantity an Amount holds, twelve digits of cents.
const MaxCents int64 = 999999999999

// parseCents reads an unsigned decimal quantity as cents. Values without a
// decimal point are read as cents already.
func parseCents(value string) (int, error) {
	idx := strings.Index(value, ".")
	if idx == -1 {
		if !isDigits(value) {
			return 0, fmt.Errorf("unable to read %q", value)
		}
		number, err := strconv.ParseInt(value, 10, 64)
		if err != nil || number > MaxCents {
			return 0, fmt.Errorf("amount %q out of range", value)
		}
		return int(number), nil
	}

	whole, frac := value[:idx], value[idx+1:]
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return 0, fmt.Errorf("unable to read %q", value)
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil || w > MaxCents/100 {
		return 0, fmt.Errorf("amount %q out of range", value)
	}
	for len(frac) < 3 {
		frac += "0"
	}
	dec, _ := strconv.Atoi(frac[:3])
	if dec%10 >= 5 { // round half cents up
		dec = (dec / 10) + 1
	} else {
		dec = dec / 10
	}
	cents := w*100 + int64(dec)
	if cents > MaxCents {
		return 0, fmt.Errorf("amount %q out of range", value)
	}
	return int(cents), nil
}

// isDigits rejects signs, spaces and anything else strconv would accept.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	return a.FromString(s)
}
