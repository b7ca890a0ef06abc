// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dump writes human-readable listings of object files.
package dump

import (
	"fmt"
	"io"
	"strings"

	"gate.computer/convertobj/emit"
	"gate.computer/convertobj/object"
	"gate.computer/convertobj/symbol"
)

func relocExpr(enc symbol.Encoder, r object.Relocation, content []byte) string {
	return strings.TrimSpace(emit.Reloc(enc, r, r.Addend(content)))
}

func hexBytes(b []byte) string {
	s := make([]string, len(b))
	for i, x := range b {
		s[i] = fmt.Sprintf("0x%02x", x)
	}
	return strings.Join(s, ", ")
}

// Modules writes a summary of each module: its kind, size, section, labels
// and relocations.
func Modules(w io.Writer, f *object.File) {
	enc := symbol.NewEncoder(f)

	for i, m := range f.Modules {
		kind := "code"
		if m.Data {
			kind = "data"
		}

		segment, _ := f.Strings.Lookup(m.Segment)
		fmt.Fprintf(w, "%d\t%s %s size=%d segment=%q section=%s\n", i, kind, enc.Encode(m.Name), m.Len(), segment, enc.Encode(f.Sections.Section(m.Name)))

		for _, offset := range m.LabelOffsets() {
			for _, label := range m.Labels[offset] {
				fmt.Fprintf(w, "\t%8x\tlabel\t%s\n", offset, enc.Encode(label))
			}
		}

		content := m.Bytes.Bytes()
		for _, offset := range m.RelocOffsets() {
			fmt.Fprintf(w, "\t%8x\treloc\t%s\n", offset, relocExpr(enc, m.Relocs[offset], content[offset:]))
		}

		if len(m.Near) > 0 {
			fmt.Fprintf(w, "\t\tnear\t%v\n", m.Near)
		}
	}
}
