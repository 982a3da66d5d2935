// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	// happy path
	amt, err := NewAmount("EUR", "12.00")
	if err != nil {
		t.Error(err)
	}
	if v := amt.String(); v != "EUR 12.00" {
		t.Errorf("got %q", v)
	}

	amt, err = NewAmount("EUR", "12")
	if err != nil {
		t.Error(err)
	}
	if v := amt.String(); v != "EUR 0.12" {
		t.Errorf("got %q", v)
	}

	amt, err = NewAmount("EUR", "12.5")
	if err != nil {
		t.Error(err)
	}
	if v := amt.Int(); v != 1250 {
		t.Errorf("got %d", v)
	}

	// invalid
	_, err = NewAmount("", ".0")
	if err == nil {
		t.Errorf("expected error")
	}

	// very large number
	amt, err = NewAmount("EUR", "10000000000000000.20")
	if err != nil {
		t.Error(err)
	}
	if v := amt.String(); v != "EUR 10000000000000000.20" {
		t.Errorf("got %q", v)
	}
}

func TestAmount__zero(t *testing.T) {
	var amt Amount
	if v := amt.String(); v != "EUR 0.00" {
		t.Errorf("got %q", v)
	}
	if v := amt.Symbol(); v != DefaultCurrency {
		t.Errorf("got %q", v)
	}
	var nilAmt *Amount
	if nilAmt.Int() != 0 {
		t.Error("expected zero")
	}
}

func TestAmount__NewAmountFromInt(t *testing.T) {
	if amt, _ := NewAmountFromInt("EUR", 1266); amt.String() != "EUR 12.66" {
		t.Errorf("got %q", amt.String())
	}
	if amt, _ := NewAmountFromInt("EUR", 4102); amt.String() != "EUR 41.02" {
		t.Errorf("got %q", amt.String())
	}
	if amt, _ := NewAmountFromInt("EUR", 7); amt.String() != "EUR 0.07" {
		t.Errorf("got %q", amt.String())
	}
}

func TestAmount__Int(t *testing.T) {
	amt, _ := NewAmount("EUR", "12.53")
	if v := amt.Int(); v != 1253 {
		t.Error(v)
	}

	// check rouding with .Int()
	amt, _ = NewAmount("EUR", "14.562")
	if v := amt.Int(); v != 1456 {
		t.Error(v)
	}
	amt, _ = NewAmount("EUR", "14.568")
	if v := amt.Int(); v != 1457 {
		t.Error(v)
	}

	// small amounts
	amt, _ = NewAmount("EUR", "0.03")
	if v := amt.Int(); v != 3 {
		t.Error(v)
	}
	amt, _ = NewAmount("EUR", "0.003")
	if v := amt.Int(); v != 0 {
		t.Error(v)
	}

	amt, _ = NewAmount("EUR", fmt.Sprintf("%.3f", 6907./50.0))
	if v := amt.Int(); v != 13814 {
		t.Error(v)
	}
}

func TestAmount__FromString(t *testing.T) {
	amt := Amount{}
	if err := amt.FromString("fail"); err == nil {
		t.Error("exected error")
	}
	if err := amt.FromString("EUR 12.00"); err != nil {
		t.Error(err)
	}
	if err := amt.Validate(); err != nil {
		t.Error(err)
	}
	if err := amt.FromString("EUR invalid"); err == nil {
		t.Error("expected error")
	}
	if err := amt.FromString("EUR 1.2x"); err == nil {
		t.Error("expected error")
	}
}

func TestAmount__FromStringBounds(t *testing.T) {
	for _, in := range []string{
		"EUR -0.50",
		"EUR -12.00",
		"EUR -5",
		"EUR +1.00",
		"EUR 1.-5",
		"EUR 184467440737095517.00",
		"EUR 92233720368547758.07",
		"EUR 10000000000.00",
		"EUR 1000000000000",
	} {
		amt, err := ParseAmount(in)
		require.Error(t, err, in)
		require.Nil(t, amt, in)
	}

	amt, err := ParseAmount("EUR 9999999999.99")
	require.NoError(t, err)
	require.Equal(t, int(MaxCents), amt.Int())
	require.Equal(t, "EUR 9999999999.99", amt.String())

	amt, err = ParseAmount("EUR 0.50")
	require.NoError(t, err)
	require.Equal(t, 50, amt.Int())
}

func TestAmount__json(t *testing.T) {
	raw := []byte(`"EUR 12.03"`)
	amt := Amount{}
	if err := json.Unmarshal(raw, &amt); err != nil {
		t.Error(err.Error())
	}
	if amt.symbol != "EUR" || amt.number != 1203 {
		t.Errorf("got %#v", amt)
	}

	bs, err := json.Marshal(Amount{1200, "EUR"})
	if err != nil {
		t.Error(err)
	}
	if v := string(bs); v != `"EUR 12.00"` {
		t.Errorf("got %q", v)
	}

	in := []byte(`"other thing"`)
	if err := json.Unmarshal(in, &amt); err == nil {
		t.Errorf("expected error")
	}

	// note 1l9.33 -- the 'l' isn't a 1
	if err := json.Unmarshal([]byte(`"EUR 1l9.33"`), &amt); err == nil {
		t.Fatal("expected error")
	} else if v := err.Error(); v != `strconv.Atoi: parsing "1l9": invalid syntax` {
		t.Errorf("got %s", err)
	}
}

func TestAmount__Equal(t *testing.T) {
	testCases := []struct {
		name          string
		amount, other Amount
		expected      bool
	}{
		{"Two amounts are equal", Amount{number: 10, symbol: "EUR"}, Amount{number: 10, symbol: "EUR"}, true},
		{"The numbers are the same but the symbols don't match", Amount{number: 10, symbol: "EUR"}, Amount{number: 10, symbol: "GBP"}, false},
		{"The symbols match but the numbers don't", Amount{number: 10, symbol: "EUR"}, Amount{number: 11, symbol: "EUR"}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.amount.Equal(tc.other); got != tc.expected {
				t.Errorf("got %v", got)
			}
		})
	}
}

func TestAmount__Plus(t *testing.T) {
	a := Amount{number: 10, symbol: "EUR"}
	b := Amount{number: 15}
	sum, err := a.Plus(b)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Int() != 25 {
		t.Errorf("got %d", sum.Int())
	}
	if _, err := a.Plus(Amount{number: 1, symbol: "GBP"}); err != ErrDifferentCurrencies {
		t.Errorf("unexpected error: %v", err)
	}
}
