// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package mask

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Identifier hides all but the last four characters of a VAT or account number.
func Identifier(s string) string {
	n := utf8.RuneCountInString(s)
	if n <= 4 {
		return "****" // too short, we can't mask anything
	}
	runes := []rune(s)
	return fmt.Sprintf("%s%s", strings.Repeat("*", n-4), string(runes[n-4:]))
}
