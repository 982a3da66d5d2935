// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/moov-io/csb34/pkg/transform"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// CSB34 writes the plaintext records of a file.
type CSB34 struct {
	// Charset is iso-8859-1 (the default) or utf-8. Characters without an
	// ISO-8859-1 form are replaced so every record keeps its width in bytes.
	// utf-8 writes multi-byte runes, so records with accents exceed 64 bytes.
	Charset string

	// LineTerminator is appended after every record: none (default), lf or crlf.
	LineTerminator string
}

func (f *CSB34) Format(buf *bytes.Buffer, res *transform.Result) error {
	if res == nil || res.File == nil {
		return errors.New("missing file")
	}

	var payload []byte
	switch strings.ToLower(f.LineTerminator) {
	case "", "none":
		payload = res.File.Bytes()
	case "lf":
		payload = res.File.Lines("\n")
	case "crlf":
		payload = res.File.Lines("\r\n")
	default:
		return fmt.Errorf("unknown line terminator %q", f.LineTerminator)
	}

	switch strings.ToLower(f.Charset) {
	case "utf-8":
		buf.Write(payload)
	case "", "iso-8859-1":
		bs, err := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).Bytes(payload)
		if err != nil {
			return fmt.Errorf("unable to encode file as iso-8859-1: %v", err)
		}
		buf.Write(bs)
	default:
		return fmt.Errorf("unknown charset %q", f.Charset)
	}
	return nil
}
