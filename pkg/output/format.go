// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"errors"
	"strings"

	"github.com/moov-io/csb34/pkg/config"
	"github.com/moov-io/csb34/pkg/transform"
)

// Formatter is a structure for encoding an encrypted or plaintext CSB 34-01 file.
type Formatter interface {
	Format(buf *bytes.Buffer, res *transform.Result) error
}

func NewFormatter(cfg *config.Output) (Formatter, error) {
	if cfg == nil {
		return &CSB34{}, nil
	}
	plain := &CSB34{
		Charset:        cfg.Charset,
		LineTerminator: cfg.LineTerminator,
	}
	switch {
	case cfg.Format == "" || strings.EqualFold(cfg.Format, "csb34"):
		return plain, nil

	case strings.EqualFold(cfg.Format, "base64"):
		return &Base64{Plain: plain}, nil

	case strings.EqualFold(cfg.Format, "encrypted-bytes"):
		return &Encrypted{}, nil
	}
	return nil, errors.New("unknown output format")
}
