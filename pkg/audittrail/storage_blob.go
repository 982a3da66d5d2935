// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package audittrail

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/moov-io/csb34/internal/gpgx"
	"github.com/moov-io/csb34/pkg/config"
	"github.com/moov-io/csb34/pkg/csb34"
	"github.com/moov-io/csb34/pkg/output"
	"github.com/moov-io/csb34/pkg/transform"
	"golang.org/x/crypto/openpgp"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/azureblob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements Storage with gocloud.dev/blob which allows
// clients to use AWS S3, GCP Storage, and Azure Storage.
type blobStorage struct {
	bucket          *blob.Bucket
	outputFormatter *output.CSB34
	pubKey          openpgp.EntityList
}

func newBlobStorage(cfg *config.AuditTrail, out *config.Output) (*blobStorage, error) {
	storage := &blobStorage{
		outputFormatter: &output.CSB34{},
	}
	if out != nil {
		storage.outputFormatter.Charset = out.Charset
		storage.outputFormatter.LineTerminator = out.LineTerminator
	}

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURI)
	if err != nil {
		return nil, err
	}
	storage.bucket = bucket

	if cfg.GPG != nil {
		pubKey, err := gpgx.ReadArmoredKeyFile(cfg.GPG.KeyFile)
		if err != nil {
			bucket.Close()
			return nil, err
		}
		storage.pubKey = pubKey
	}
	return storage, nil
}

func (bs *blobStorage) Close() error {
	if bs == nil {
		return nil
	}
	return bs.bucket.Close()
}

func (bs *blobStorage) SaveFile(filename string, file *csb34.File) error {
	result := &transform.Result{File: file}

	var buf bytes.Buffer
	if err := bs.outputFormatter.Format(&buf, result); err != nil {
		return err
	}

	contents := buf.Bytes()
	if len(bs.pubKey) > 0 {
		encrypted, err := gpgx.Encrypt(contents, bs.pubKey)
		if err != nil {
			return err
		}
		contents = encrypted
	}

	// write the file in a sub-path of the yyy-mm-dd
	path := fmt.Sprintf("audit-trail/%s/%s", time.Now().Format("2006-01-02"), filename)
	w, err := bs.bucket.NewWriter(context.Background(), path, nil)
	if err != nil {
		return err
	}

	_, copyErr := w.Write(contents)
	closeErr := w.Close()

	if copyErr != nil || closeErr != nil {
		return fmt.Errorf("copyErr=%v closeErr=%v", copyErr, closeErr)
	}

	return nil
}
