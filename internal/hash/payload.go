// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

// Payload returns the hex encoded SHA-256 of a generated file.
func Payload(bs []byte) (string, error) {
	if len(bs) == 0 {
		return "", errors.New("sha256: empty payload")
	}
	sum := sha256.Sum256(bs)
	return hex.EncodeToString(sum[:]), nil
}
