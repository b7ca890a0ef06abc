// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo

package dump

import (
	"fmt"
	"io"
	"strings"

	"gate.computer/convertobj/object"
	"gate.computer/convertobj/symbol"
	"github.com/bnagy/gapstone"
)

const (
	csArch = 8      // CS_ARCH_M68K
	csMode = 1 << 1 // CS_MODE_M68K_000
)

// Text writes a disassembly listing of the code modules.  Relocated fields
// are annotated with their assembler expressions.
func Text(w io.Writer, f *object.File) error {
	engine, err := gapstone.New(csArch, csMode)
	if err != nil {
		return err
	}
	defer engine.Close()

	enc := symbol.NewEncoder(f)

	for _, m := range f.Modules {
		if m.Data {
			continue
		}

		fmt.Fprintf(w, "; module %s\n", enc.Encode(m.Name))
		text := m.Bytes.Bytes()

		for offset := 0; offset < len(text); {
			insns, _ := engine.Disasm(text[offset:], uint64(offset), 0)

			for _, insn := range insns {
				printInsn(w, enc, m, insn.Address, insn.Size, strings.TrimSpace(insn.Mnemonic+"\t"+insn.OpStr))
				offset = int(insn.Address + insn.Size)
			}

			if offset < len(text) {
				// Undecodable; instructions are word-aligned.
				n := 2
				if offset+n > len(text) {
					n = 1
				}
				printInsn(w, enc, m, uint(offset), uint(n), ".byte\t"+hexBytes(text[offset:offset+n]))
				offset += n
			}
		}

		fmt.Fprintln(w)
	}

	return nil
}

func printInsn(w io.Writer, enc symbol.Encoder, m *object.Module, addr, size uint, text string) {
	for _, label := range m.Labels[uint32(addr)] {
		fmt.Fprintf(w, "%s:\n", enc.Encode(label))
	}

	fmt.Fprintf(w, "%8x\t%s", addr, text)

	content := m.Bytes.Bytes()
	for offset := uint32(addr); offset < uint32(addr+size); offset++ {
		if r, found := m.Relocs[offset]; found && int(offset)+r.Width <= len(content) {
			fmt.Fprintf(w, "\t; %x: %s", offset, relocExpr(enc, r, content[offset:]))
		}
	}

	fmt.Fprintln(w)
}
