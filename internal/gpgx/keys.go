// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package gpgx

import (
	"bytes"
	"errors"
	"io"
	"io/ioutil"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/armor"
	_ "golang.org/x/crypto/ripemd160"
)

// ReadArmoredKeyFile attempts to read the filepath and parses an armored GPG key
func ReadArmoredKeyFile(path string) (openpgp.EntityList, error) {
	bs, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return openpgp.ReadArmoredKeyRing(bytes.NewBuffer(bs))
}

// Encrypt returns msg encrypted for pubkeys and armored as a PGP MESSAGE.
func Encrypt(msg []byte, pubkeys openpgp.EntityList) ([]byte, error) {
	if len(pubkeys) == 0 {
		return nil, errors.New("no public keys to encrypt with")
	}

	var encCloser, armorCloser io.WriteCloser
	var err error

	encbuf := new(bytes.Buffer)
	encCloser, err = openpgp.Encrypt(encbuf, pubkeys, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	if _, err = encCloser.Write(msg); err != nil {
		return nil, err
	}
	if err = encCloser.Close(); err != nil {
		return nil, err
	}

	armorbuf := new(bytes.Buffer)
	armorCloser, err = armor.Encode(armorbuf, "PGP MESSAGE", nil)
	if err != nil {
		return nil, err
	}
	if _, err = armorCloser.Write(encbuf.Bytes()); err != nil {
		return nil, err
	}
	if err = armorCloser.Close(); err != nil {
		return nil, err
	}

	return armorbuf.Bytes(), nil
}

// Decrypt reads an armored message with a single private key.
func Decrypt(cipherArmored []byte, keys openpgp.EntityList) ([]byte, error) {
	if !(len(keys) == 1 && keys[0].PrivateKey != nil) {
		return nil, errors.New("Requires a single private key.")
	}

	result, err := armor.Decode(bytes.NewBuffer(cipherArmored))
	if err != nil {
		return nil, err
	}
	md, err := openpgp.ReadMessage(result.Body, keys, nil, nil)
	if err != nil {
		return nil, err
	}

	bs, err := ioutil.ReadAll(md.UnverifiedBody)
	if err != nil {
		return nil, err
	}
	if md.SignatureError != nil {
		return nil, md.SignatureError
	}
	return bs, nil
}
