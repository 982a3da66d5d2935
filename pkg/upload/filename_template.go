// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package upload

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"text/template"
	"time"
)

type FilenameData struct {
	// VATNumber is the ordering company's tax identifier
	VATNumber string

	// GPG is true if the file has been encrypted with GPG
	GPG bool
}

var filenameFunctions template.FuncMap = map[string]interface{}{
	"date": func(pattern string) string {
		return time.Now().Format(pattern)
	},
	"env": func(name string) string {
		return os.Getenv(name)
	},
}

// RenderFilename executes a filename template for a generated payment file.
func RenderFilename(raw string, data FilenameData) (string, error) {
	t, err := template.New(data.VATNumber).Funcs(filenameFunctions).Parse(raw)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}

	filename := strings.TrimSpace(buf.String())
	if filename == "" {
		return "", errors.New("empty filename rendered")
	}
	if strings.ContainsAny(filename, `/\`) {
		return "", errors.New("filename contains a path separator")
	}
	return filename, nil
}

// ValidateTemplate renders a template with example data so bad templates
// are caught on startup rather than on the first generated file.
func ValidateTemplate(raw string) error {
	_, err := RenderFilename(raw, FilenameData{
		VATNumber: "B12345678",
		GPG:       true,
	})
	return err
}
