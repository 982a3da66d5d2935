// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

// Package gpgxtest creates throwaway openpgp keys for tests.
package gpgxtest

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
)

// WriteKey creates a throwaway key pair and writes its armored public
// key into dir. The returned entity holds the private key for decrypting.
func WriteKey(dir string) (string, *openpgp.Entity, error) {
	entity, err := openpgp.NewEntity("csb34", "test", "csb34@example.com", nil)
	if err != nil {
		return "", nil, err
	}

	path := filepath.Join(dir, "test.pub")
	fd, err := os.Create(path)
	if err != nil {
		return "", nil, err
	}
	defer fd.Close()

	w, err := armor.Encode(fd, openpgp.PublicKeyType, nil)
	if err != nil {
		return "", nil, err
	}
	if err := entity.Serialize(w); err != nil {
		return "", nil, err
	}
	if err := w.Close(); err != nil {
		return "", nil, err
	}
	return path, entity, nil
}

// TempDir is a shorthand for tests needing a scratch directory.
func TempDir() (string, error) {
	return ioutil.TempDir("", "gpgx")
}
