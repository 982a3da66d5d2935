// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package audittrail

import (
	"errors"

	"github.com/moov-io/csb34/pkg/config"
	"github.com/moov-io/csb34/pkg/csb34"
)

// Storage is an interface for saving and encrypting generated payment files
// for records retention. This is often a requirement of agreements.
//
// File retention after upload is not part of this storage.
type Storage interface {
	// SaveFile will encrypt and copy the file to the configured file storage.
	SaveFile(filename string, file *csb34.File) error

	Close() error
}

// NewStorage returns the Storage for cfg. Saved copies are written with the
// charset and line terminator of out so they match what the bank receives.
func NewStorage(cfg *config.AuditTrail, out *config.Output) (Storage, error) {
	if cfg == nil {
		return discard{}, nil
	}
	if cfg.BucketURI != "" {
		return newBlobStorage(cfg, out)
	}
	return nil, errors.New("unknown storage config")
}

// discard is used when no audit trail is configured.
type discard struct{}

func (discard) SaveFile(string, *csb34.File) error { return nil }
func (discard) Close() error                       { return nil }
