// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package output

import (
	"bytes"
	"encoding/base64"

	"github.com/moov-io/csb34/pkg/transform"
)

type Base64 struct {
	Plain *CSB34
}

// Format converts any encrypted bytes into standard Base64 encoding. If no encrypted
// bytes are passed then the file is written as plain records and then Base64 encoded.
func (b *Base64) Format(buf *bytes.Buffer, res *transform.Result) error {
	if res != nil && len(res.Encrypted) > 0 {
		buf.WriteString(base64.StdEncoding.EncodeToString(res.Encrypted))
		return nil
	}

	plain := b.Plain
	if plain == nil {
		plain = &CSB34{}
	}
	var buf2 bytes.Buffer
	if err := plain.Format(&buf2, res); err != nil {
		return err
	}
	buf.WriteString(base64.StdEncoding.EncodeToString(buf2.Bytes()))
	return nil
}
