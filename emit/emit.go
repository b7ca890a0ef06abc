// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package emit writes object file contents as GNU assembler source.
//
// Module content is written byte by byte, except where a relocation starts:
// the relocation is written as a .short or .long expression which covers the
// relocation's width.  Labels are written before the content at their offset.
package emit

import (
	"bufio"
	"fmt"
	"io"

	"gate.computer/convertobj/object"
	"gate.computer/convertobj/symbol"
	"golang.org/x/xerrors"
)

const (
	Preamble  = "\t.text\n\t.align 2\n"
	Separator = "# ######\n\n"
)

// Longest debug name which fits in the short form of the length prefix.
const maxShortDebugNameLen = 31

type Config struct {
	DebugNames       bool // Append MacsBug names to code modules.
	FunctionSections bool // Each code module gets its own section.
	DataSections     bool // Each data module gets its own section.
	DataInText       bool // Data modules are placed in the text section.
}

// File writes the preamble and all modules in their current order.  The
// output is flushed after the preamble and after each module.
func File(w io.Writer, config *Config, f *object.File) error {
	if config == nil {
		config = new(Config)
	}

	e := &emitter{
		w:      bufio.NewWriter(w),
		config: config,
		file:   f,
		enc:    symbol.NewEncoder(f),
	}

	e.w.WriteString(Preamble)
	if err := e.w.Flush(); err != nil {
		return xerrors.Errorf("writing preamble: %w", err)
	}

	for _, m := range f.Modules {
		e.module(m)

		if err := e.w.Flush(); err != nil {
			name, _ := f.Strings.Lookup(m.Name)
			return xerrors.Errorf("writing module %q: %w", name, err)
		}
	}

	return nil
}

type emitter struct {
	w      *bufio.Writer
	config *Config
	file   *object.File
	enc    symbol.Encoder
}

func (e *emitter) printf(format string, args ...interface{}) {
	fmt.Fprintf(e.w, format, args...)
}

func (e *emitter) module(m *object.Module) {
	section := e.enc.Encode(e.file.Sections.Section(m.Name))
	content := m.Bytes.Bytes()

	if m.Data && !e.config.DataInText {
		if e.config.DataSections {
			e.printf("\t.section .data.%s,\"aw\"\n", section)
		} else {
			e.printf("\t.data\n")
		}
		if len(content) >= 2 {
			e.printf("\t.align 2,0\n")
		}
	} else {
		if e.config.FunctionSections {
			e.printf("\t.section    .text.%s,\"ax\",@progbits\n", section)
		} else {
			e.printf("\t.section    .text,\"ax\",@progbits\n")
		}
		e.printf("\t.align 2,0\n")
	}

	for offset := 0; offset < len(content); {
		e.labels(m, offset)

		if r, found := m.Relocs[uint32(offset)]; found {
			e.reloc(r, content[offset:])
			offset += r.Width
		} else {
			e.printf("\t.byte %d\n", content[offset])
			offset++
		}
	}

	// Labels may also follow the content.
	e.labels(m, len(content))

	if e.config.DebugNames && !m.Data {
		e.debugName(section)
	}

	e.w.WriteString(Separator)
}

func (e *emitter) labels(m *object.Module, offset int) {
	for _, id := range m.Labels[uint32(offset)] {
		label := e.enc.Encode(id)
		if !e.enc.Local(id) {
			e.printf("\t.globl %s\n", label)
		}
		e.printf("%s:\n", label)
	}
}

func (e *emitter) reloc(r object.Relocation, content []byte) {
	e.w.WriteString(Reloc(e.enc, r, r.Addend(content)))
	e.w.WriteString("\n")
}

// Reloc formats a relocation directive (without newline).
func Reloc(enc symbol.Encoder, r object.Relocation, addend int32) string {
	var directive string

	switch r.Width {
	case 2:
		directive = "\t.short "

	case 4:
		directive = "\t.long "

	default:
		panic(fmt.Sprintf("relocation width: %d", r.Width))
	}

	s := directive + enc.Encode(r.Symbol)

	if r.Difference() {
		s += " - " + enc.Encode(r.Subtrahend)
	}

	switch a := int64(addend); {
	case a > 0:
		s += fmt.Sprintf(" + %d", a)

	case a < 0:
		s += fmt.Sprintf(" - %d", -a)
	}

	// 16-bit references to a single symbol are PC-relative.
	if r.Width == 2 && !r.Difference() {
		s += " - ."
	}

	return s
}

// debugName writes a MacsBug symbol after the code.
func (e *emitter) debugName(section string) {
	if e.config.FunctionSections {
		e.printf("\t.section    .text.%s.macsbug,\"ax\",@progbits\n", section)
	}

	name := section
	if len(name) > 255 {
		name = name[:255]
	}

	if len(name) <= maxShortDebugNameLen {
		e.printf("\t.byte %d\n", len(name)|0x80)
	} else {
		e.printf("\t.byte 0x80\n")
		e.printf("\t.byte %d\n", len(name))
	}

	e.printf("\t.ascii \"%s\"\n", name)
	e.printf("\t.align 2,0\n\t.short 0\n")
}
