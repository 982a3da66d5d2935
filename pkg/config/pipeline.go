// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"errors"
	"fmt"
	"strings"
)

type Output struct {
	// Format is one of csb34, base64 or encrypted-bytes
	Format string

	// Charset is iso-8859-1 (default) or utf-8
	Charset string

	// LineTerminator is none, lf or crlf
	LineTerminator string `mapstructure:"line_terminator"`
}

var (
	outputFormats   = []string{"", "csb34", "base64", "encrypted-bytes"}
	charsets        = []string{"", "utf-8", "iso-8859-1"}
	lineTerminators = []string{"", "none", "lf", "crlf"}
)

func (cfg *Output) Validate() error {
	if cfg == nil {
		return nil
	}
	if !oneOf(cfg.Format, outputFormats) {
		return fmt.Errorf("unknown format %q", cfg.Format)
	}
	if !oneOf(cfg.Charset, charsets) {
		return fmt.Errorf("unknown charset %q", cfg.Charset)
	}
	if !oneOf(cfg.LineTerminator, lineTerminators) {
		return fmt.Errorf("unknown line_terminator %q", cfg.LineTerminator)
	}
	return nil
}

func oneOf(v string, options []string) bool {
	for i := range options {
		if strings.EqualFold(v, options[i]) {
			return true
		}
	}
	return false
}

type PreUpload struct {
	GPG *GPG
}

func (cfg *PreUpload) Validate() error {
	if cfg == nil {
		return nil
	}
	if cfg.GPG != nil && cfg.GPG.KeyFile == "" {
		return errors.New("gpg: missing key file")
	}
	return nil
}

type GPG struct {
	KeyFile string `mapstructure:"key_file"`
}

type AuditTrail struct {
	BucketURI string `mapstructure:"bucket_uri"`
	GPG       *GPG
}

func (cfg *AuditTrail) Validate() error {
	if cfg == nil {
		return nil
	}
	if cfg.BucketURI == "" {
		return errors.New("missing bucket_uri")
	}
	if cfg.GPG != nil && cfg.GPG.KeyFile == "" {
		return errors.New("gpg: missing key file")
	}
	return nil
}
