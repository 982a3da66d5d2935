// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"fmt"

	"github.com/moov-io/csb34/pkg/csb34"
)

type Generation struct {
	// DetailRecords lists the per-receipt records written for each payment.
	// Defaults to recipient_identity and recipient_name.
	DetailRecords []string `mapstructure:"detail_records"`
}

func (cfg Generation) Validate() error {
	_, err := cfg.RecordTypes()
	return err
}

// RecordTypes parses DetailRecords, returning the defaults when none are set.
func (cfg Generation) RecordTypes() ([]csb34.RecordType, error) {
	if len(cfg.DetailRecords) == 0 {
		return csb34.DefaultDetailRecords, nil
	}
	var out []csb34.RecordType
	for i := range cfg.DetailRecords {
		t, err := csb34.ParseRecordType(cfg.DetailRecords[i])
		if err != nil {
			return nil, err
		}
		if !t.IsDetail() {
			return nil, fmt.Errorf("%s is not a detail record", t)
		}
		out = append(out, t)
	}
	return out, nil
}
