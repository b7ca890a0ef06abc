// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package convertobj

import (
	"io"

	"gate.computer/convertobj/binary"
	"gate.computer/convertobj/decode"
	"gate.computer/convertobj/emit"
	"gate.computer/convertobj/object"
	"gate.computer/convertobj/order"
	"go.uber.org/zap"
)

// Config for a conversion.  The zero value disables all optional features;
// DefaultConfig returns the usual settings.
type Config struct {
	Verbose          bool `yaml:"verbose"`           // Log records and module order (needs Logger).
	Sort             bool `yaml:"sort"`              // Reorder modules by locality.
	DebugNames       bool `yaml:"debug_names"`       // Append MacsBug names to code modules.
	FunctionSections bool `yaml:"function_sections"` // Each code module gets its own section.
	DataSections     bool `yaml:"data_sections"`     // Each data module gets its own section.
	DataInText       bool `yaml:"data_in_text"`      // Place data in the text section.
	MaxModuleSize    int  `yaml:"max_module_size"`   // Defaults to decode.DefaultMaxModuleSize.

	Logger *zap.Logger `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		Sort:             true,
		DebugNames:       true,
		FunctionSections: true,
		DataSections:     true,
		MaxModuleSize:    decode.DefaultMaxModuleSize,
	}
}

func (config *Config) logger() *zap.Logger {
	if config.Verbose && config.Logger != nil {
		return config.Logger
	}
	return zap.NewNop()
}

// Load an object file and reorder its modules if configured.
func Load(config *Config, r binary.Reader) (*object.File, error) {
	log := config.logger()

	f, err := decode.File(&decode.Config{
		MaxModuleSize: config.MaxModuleSize,
		Logger:        log,
	}, r)
	if err != nil {
		return nil, err
	}

	if config.Sort {
		order.Sort(f, log)
	}

	return f, nil
}

// Convert an object file to assembler source.  Nothing is written if the
// object file cannot be decoded.
func Convert(config *Config, w io.Writer, r binary.Reader) error {
	if config == nil {
		c := DefaultConfig()
		config = &c
	}

	f, err := Load(config, r)
	if err != nil {
		return err
	}

	return emit.File(w, &emit.Config{
		DebugNames:       config.DebugNames,
		FunctionSections: config.FunctionSections,
		DataSections:     config.DataSections,
		DataInText:       config.DataInText,
	}, f)
}
