// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package orders

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/moov-io/base"
	"github.com/moov-io/csb34/internal/hash"
	"github.com/moov-io/csb34/pkg/audittrail"
	"github.com/moov-io/csb34/pkg/config"
	"github.com/moov-io/csb34/pkg/csb34"
	"github.com/moov-io/csb34/pkg/output"
	"github.com/moov-io/csb34/pkg/transform"
	"github.com/moov-io/csb34/pkg/upload"
	"github.com/moov-io/csb34/x/mask"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

var (
	filesGenerated = prometheus.NewCounterFrom(stdprometheus.CounterOpts{
		Name: "csb34_files_generated",
		Help: "Counter of CSB 34-01 files generated",
	}, []string{"status"})
)

// Generated is a formatted file ready to hand over to the bank.
type Generated struct {
	ID          string
	Filename    string
	ContentType string
	Payload     []byte

	// Checksum is the hex SHA-256 of Payload
	Checksum string

	File *csb34.File
}

// Generator runs an order through the writer, pre-upload transforms, the
// output formatter and the audit trail.
type Generator struct {
	logger log.Logger

	writer           *csb34.Writer
	preUpload        []transform.PreUpload
	formatter        output.Formatter
	contentType      string
	auditTrail       audittrail.Storage
	filenameTemplate string
}

func NewGenerator(cfg *config.Config, auditTrail audittrail.Storage) (*Generator, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil %T", cfg)
	}
	detailRecords, err := cfg.Generation.RecordTypes()
	if err != nil {
		return nil, err
	}
	writer, err := csb34.NewWriter(
		csb34.WithLogger(cfg.Logger),
		csb34.WithDetailRecords(detailRecords...),
	)
	if err != nil {
		return nil, err
	}
	preUpload, err := transform.Multi(cfg.Logger, cfg.PreUpload)
	if err != nil {
		return nil, err
	}
	formatter, err := output.NewFormatter(cfg.Output)
	if err != nil {
		return nil, err
	}
	if err := upload.ValidateTemplate(cfg.FilenameTemplate); err != nil {
		return nil, fmt.Errorf("filename template: %v", err)
	}
	if auditTrail == nil {
		auditTrail, _ = audittrail.NewStorage(nil, nil)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &Generator{
		logger:           logger,
		writer:           writer,
		preUpload:        preUpload,
		formatter:        formatter,
		contentType:      contentType(cfg.Output),
		auditTrail:       auditTrail,
		filenameTemplate: cfg.FilenameTemplate,
	}, nil
}

func contentType(cfg *config.Output) string {
	if cfg == nil {
		return "text/plain; charset=iso-8859-1"
	}
	switch {
	case strings.EqualFold(cfg.Format, "encrypted-bytes"):
		return "application/pgp-encrypted"
	case strings.EqualFold(cfg.Format, "base64"):
		return "text/plain; charset=us-ascii"
	case strings.EqualFold(cfg.Charset, "utf-8"):
		return "text/plain; charset=utf-8"
	}
	return "text/plain; charset=iso-8859-1"
}

// invalidOrder marks errors caused by the order itself rather than the service.
type invalidOrder struct {
	err error
}

func (e *invalidOrder) Error() string { return e.err.Error() }
func (e *invalidOrder) Unwrap() error { return e.err }

// Generate writes order and returns the formatted payload. Errors from the
// order itself are reported as invalidOrder.
func (g *Generator) Generate(order *csb34.PaymentOrder) (*Generated, error) {
	gen, err := g.generate(order)
	if err != nil {
		filesGenerated.With("status", "failure").Add(1)
		return nil, err
	}
	filesGenerated.With("status", "success").Add(1)
	return gen, nil
}

func (g *Generator) generate(order *csb34.PaymentOrder) (*Generated, error) {
	file, err := g.writer.Generate(order)
	if err != nil {
		return nil, &invalidOrder{err: err}
	}
	gen := &Generated{
		ID:          base.ID(),
		ContentType: g.contentType,
		File:        file,
	}

	res, err := transform.ForUpload(file, g.preUpload)
	if err != nil {
		return nil, fmt.Errorf("pre-upload: %v", err)
	}

	var buf bytes.Buffer
	if err := g.formatter.Format(&buf, res); err != nil {
		return nil, fmt.Errorf("format: %v", err)
	}
	gen.Payload = buf.Bytes()
	gen.Checksum, err = hash.Payload(gen.Payload)
	if err != nil {
		return nil, err
	}

	gen.Filename, err = upload.RenderFilename(g.filenameTemplate, upload.FilenameData{
		VATNumber: order.VATNumber,
		GPG:       len(res.Encrypted) > 0,
	})
	if err != nil {
		return nil, &invalidOrder{err: fmt.Errorf("filename: %v", err)}
	}

	if err := g.auditTrail.SaveFile(gen.Filename, file); err != nil {
		return nil, fmt.Errorf("audit trail: %v", err)
	}

	g.logger.Log(
		"orders", "generated file",
		"fileID", gen.ID,
		"filename", gen.Filename,
		"company", mask.Identifier(order.VATNumber),
		"bytes", len(gen.Payload),
		"sha256", gen.Checksum,
	)
	return gen, nil
}
