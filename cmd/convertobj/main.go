// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Program convertobj converts an MPW object file to GNU assembler source.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"gate.computer/convertobj"
	"gate.computer/convertobj/errors/errordata"
	"gate.computer/convertobj/object/debug/dump"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func usage(flags *flag.FlagSet) {
	fmt.Fprintf(flags.Output(), "Usage: %s [options] mpw.o > out.s\n\nOptions:\n", os.Args[0])
	flags.PrintDefaults()
}

func run(args []string) int {
	config := convertobj.DefaultConfig()

	var (
		configFile string
		dumpText   bool
		dumpInfo   bool
		errorJSON  bool
	)

	flags := flag.NewFlagSet("convertobj", flag.ContinueOnError)
	flags.Usage = func() { usage(flags) }
	flags.StringVar(&configFile, "config", "", "YAML configuration file")
	flags.BoolVar(&config.Verbose, "v", config.Verbose, "verbose logging")
	flags.BoolVar(&config.Sort, "sort", config.Sort, "reorder modules by locality")
	flags.BoolVar(&config.DebugNames, "macsbug", config.DebugNames, "append MacsBug names to code")
	flags.BoolVar(&config.FunctionSections, "function-sections", config.FunctionSections, "place each code module in its own section")
	flags.BoolVar(&config.DataSections, "data-sections", config.DataSections, "place each data module in its own section")
	flags.BoolVar(&config.DataInText, "data-in-text", config.DataInText, "place data in the text section")
	flags.IntVar(&config.MaxModuleSize, "maxmodulesize", config.MaxModuleSize, "maximum module size")
	flags.BoolVar(&dumpText, "dumptext", false, "disassemble code modules to stderr")
	flags.BoolVar(&dumpInfo, "dumpinfo", false, "list modules to stderr")
	flags.BoolVar(&errorJSON, "errorjson", false, "report conversion errors as JSON")

	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 1 {
		usage(flags)
		return 1
	}
	filename := flags.Arg(0)

	if configFile != "" {
		if err := loadConfig(&config, configFile, flags); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	if config.Verbose {
		log, err := newLogger()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer log.Sync()
		config.Logger = log
	}

	data, unmap, err := mapFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read input file %q: %v\n", filename, err)
		usage(flags)
		return 1
	}
	defer unmap()

	if dumpText || dumpInfo {
		f, err := convertobj.Load(&config, bytes.NewReader(data))
		if err != nil {
			report(err, errorJSON)
			return 1
		}
		if dumpInfo {
			dump.Modules(os.Stderr, f)
		}
		if dumpText {
			if err := dump.Text(os.Stderr, f); err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
		}
	}

	if err := convertobj.Convert(&config, os.Stdout, bytes.NewReader(data)); err != nil {
		report(err, errorJSON)
		return 1
	}

	return 0
}

func report(err error, asJSON bool) {
	if asJSON {
		if data, e := json.Marshal(errordata.Deconstruct(err)); e == nil {
			fmt.Fprintf(os.Stderr, "%s\n", data)
			return
		}
	}
	fmt.Fprintln(os.Stderr, err)
}

func newLogger() (*zap.Logger, error) {
	c := zap.NewDevelopmentConfig()
	c.OutputPaths = []string{"stderr"}
	c.DisableStacktrace = true
	return c.Build()
}
