// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package mask

import (
	"testing"
)

func TestIdentifier(t *testing.T) {
	cases := map[string]string{
		"":                     "****",
		"B123":                 "****",
		"B12345678":            "*****5678",
		"12345678901234567890": "****************7890",
	}
	for input, expected := range cases {
		if got := Identifier(input); got != expected {
			t.Errorf("Identifier(%q)=%q, expected %q", input, got, expected)
		}
	}
}
