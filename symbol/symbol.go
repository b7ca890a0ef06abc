// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package symbol converts object file names to assembler identifiers.
//
// Letters, digits and underscores are kept.  Other bytes are replaced by an
// escape sequence: "__z", the decimal byte value and "_".  Names which are
// empty or start with a digit are prefixed with "__z".  Local names are
// prefixed with "L<id>." which makes them unique across object files.
package symbol

import (
	"strconv"
	"strings"

	"gate.computer/convertobj/object"
)

const escape = "__z"

type Encoder struct {
	Strings object.Strings
	Locals  object.Locals
}

func NewEncoder(f *object.File) Encoder {
	return Encoder{f.Strings, f.Locals}
}

// Encode a registered name.
func (e Encoder) Encode(id object.StringID) string {
	name := e.Strings.Name(id)

	var b strings.Builder

	if e.Locals.Contains(id) {
		b.WriteString("L")
		b.WriteString(strconv.Itoa(int(id)))
		b.WriteString(".")
	}

	if name == "" || isDigit(name[0]) {
		b.WriteString(escape)
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' || isDigit(c) || isLetter(c) {
			b.WriteByte(c)
		} else {
			b.WriteString(escape)
			b.WriteString(strconv.Itoa(int(c)))
			b.WriteString("_")
		}
	}

	return b.String()
}

// Local reports whether the name is not externally visible.
func (e Encoder) Local(id object.StringID) bool {
	return e.Locals.Contains(id)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
