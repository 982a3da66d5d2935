// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
)

// SumAmounts adds each amount together. All amounts must share a currency.
func SumAmounts(amounts ...Amount) (*Amount, error) {
	total, _ := NewAmount(DefaultCurrency, "0.00")
	for i := range amounts {
		if i == 0 {
			total.symbol = amounts[i].Symbol()
		}
		sum, err := total.Plus(amounts[i])
		if err != nil {
			return nil, fmt.Errorf("problem adding %s: %v", amounts[i].String(), err)
		}
		total = &sum
	}
	return total, nil
}
