// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"gate.computer/convertobj"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// loadConfig reads a YAML file into config.  Options which were set on the
// command line take precedence.
func loadConfig(config *convertobj.Config, filename string, flags *flag.FlagSet) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}

	return mergeConfig(config, data, flags)
}

func mergeConfig(config *convertobj.Config, data []byte, flags *flag.FlagSet) error {
	fileConfig := *config

	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return xerrors.Errorf("configuration: %w", err)
	}

	explicit := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	merge := func(name string, dst *bool, src bool) {
		if !explicit[name] {
			*dst = src
		}
	}

	merge("v", &config.Verbose, fileConfig.Verbose)
	merge("sort", &config.Sort, fileConfig.Sort)
	merge("macsbug", &config.DebugNames, fileConfig.DebugNames)
	merge("function-sections", &config.FunctionSections, fileConfig.FunctionSections)
	merge("data-sections", &config.DataSections, fileConfig.DataSections)
	merge("data-in-text", &config.DataInText, fileConfig.DataInText)

	if !explicit["maxmodulesize"] {
		config.MaxModuleSize = fileConfig.MaxModuleSize
	}

	return nil
}
