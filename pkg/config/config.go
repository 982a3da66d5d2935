// Copyright 2020 The Moov Authors
// Use of this source code is governed by an Apache License
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/spf13/viper"
)

type Config struct {
	Logger  log.Logger `yaml:"-" json:"-"`
	Logging Logging

	HTTP  HTTP
	Admin Admin

	Generation Generation
	Output     *Output
	PreUpload  *PreUpload  `mapstructure:"pre_upload"`
	AuditTrail *AuditTrail `mapstructure:"audit_trail"`

	FilenameTemplate string `mapstructure:"filename_template"`
}

type Logging struct {
	Format string
}

type HTTP struct {
	BindAddress string `mapstructure:"bind_address"`
}

type Admin struct {
	BindAddress string `mapstructure:"bind_address"`
}

// DefaultFilenameTemplate names files after the company and the current date.
const DefaultFilenameTemplate = `CSB34-{{ .VATNumber }}-{{ date "20060102" }}.txt{{ if .GPG }}.gpg{{ end }}`

func Empty() *Config {
	return &Config{
		Logger: log.NewNopLogger(),
		HTTP: HTTP{
			BindAddress: ":8200",
		},
		Admin: Admin{
			BindAddress: ":9200",
		},
		FilenameTemplate: DefaultFilenameTemplate,
	}
}

func FromFile(path string) (*Config, error) {
	if path != "" {
		bs, err := ioutil.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %v", path, err)
		}
		return Read(bs)
	}
	cfg := SetupLogger(Empty())
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Read(data []byte) (*Config, error) {
	vip := viper.New()
	vip.SetConfigType("yaml")
	if err := vip.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("problem reading config: %v", err)
	}

	cfg := Empty()
	if err := vip.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("problem unmarshaling config: %v", err)
	}

	cfg = SetupLogger(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetupLogger replaces cfg.Logger according to cfg.Logging.
func SetupLogger(cfg *Config) *Config {
	if strings.EqualFold(cfg.Logging.Format, "json") {
		cfg.Logger = log.NewJSONLogger(os.Stderr)
	} else {
		cfg.Logger = log.NewLogfmtLogger(os.Stderr)
	}

	cfg.Logger = log.With(cfg.Logger, "ts", log.DefaultTimestampUTC)
	cfg.Logger = log.With(cfg.Logger, "caller", log.DefaultCaller)

	return cfg
}

// Validate checks a Config fields and performs various confirmations
// their values conform to expectations.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.New("missing Config")
	}

	if err := cfg.Generation.Validate(); err != nil {
		return fmt.Errorf("generation: %v", err)
	}
	if err := cfg.Output.Validate(); err != nil {
		return fmt.Errorf("output: %v", err)
	}
	if err := cfg.PreUpload.Validate(); err != nil {
		return fmt.Errorf("pre-upload: %v", err)
	}
	if err := cfg.AuditTrail.Validate(); err != nil {
		return fmt.Errorf("audit-trail: %v", err)
	}
	if strings.TrimSpace(cfg.FilenameTemplate) == "" {
		return errors.New("missing filename_template")
	}
	return nil
}
