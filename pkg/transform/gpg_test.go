// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package transform

import (
	"os"
	"testing"

	"github.com/moov-io/csb34/internal/gpgx"
	"github.com/moov-io/csb34/internal/gpgx/gpgxtest"
	"github.com/moov-io/csb34/pkg/config"
	"github.com/moov-io/csb34/pkg/csb34"

	"github.com/go-kit/kit/log"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/openpgp"
)

func testFile(t *testing.T) *csb34.File {
	t.Helper()

	return &csb34.File{
		Records: []csb34.Record{
			{Type: csb34.HeaderName, Text: "0356B12345678             002Moov Iberia SL                     "},
		},
	}
}

func TestGPGEncryptor(t *testing.T) {
	dir, err := gpgxtest.TempDir()
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	keyFile, entity, err := gpgxtest.WriteKey(dir)
	require.NoError(t, err)

	cfg := &config.PreUpload{
		GPG: &config.GPG{KeyFile: keyFile},
	}
	processors, err := Multi(log.NewNopLogger(), cfg)
	require.NoError(t, err)
	require.Len(t, processors, 1)
	require.Equal(t, "GPG{pubKey:true}", processors[0].(*GPGEncryption).String())

	file := testFile(t)
	res, err := ForUpload(file, processors)
	require.NoError(t, err)
	require.Equal(t, file, res.File)
	require.NotEmpty(t, res.Encrypted)

	decrypted, err := gpgx.Decrypt(res.Encrypted, openpgp.EntityList{entity})
	require.NoError(t, err)
	require.Equal(t, file.Bytes(), decrypted)
}

func TestGPGEncryptor__Errors(t *testing.T) {
	_, err := NewGPGEncryptor(nil, nil)
	require.Error(t, err)

	_, err = NewGPGEncryptor(nil, &config.GPG{KeyFile: "missing.pub"})
	require.Error(t, err)

	gpg := &GPGEncryption{}
	_, err = gpg.Transform(&Result{})
	require.Error(t, err)
}

func TestMulti__Empty(t *testing.T) {
	processors, err := Multi(log.NewNopLogger(), nil)
	require.NoError(t, err)
	require.Empty(t, processors)

	res, err := ForUpload(testFile(t), processors)
	require.NoError(t, err)
	require.Empty(t, res.Encrypted)
}
