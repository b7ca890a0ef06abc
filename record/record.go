// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package record defines the records of the object file format.
//
// Each record starts with a type byte.  Multi-byte fields are big-endian.
// Records with a variable extent carry a size field which includes the type,
// flags and size fields themselves.
package record

import (
	"fmt"
)

type Type byte

const (
	TypePad         Type = 0
	TypeFirst       Type = 1
	TypeLast        Type = 2
	TypeComment     Type = 3
	TypeDictionary  Type = 4
	TypeModule      Type = 5
	TypeEntryPoint  Type = 6
	TypeSize        Type = 7
	TypeContent     Type = 8
	TypeReference   Type = 9
	TypeComputedRef Type = 10
	TypeFilename    Type = 11
)

var typeStrings = []string{
	TypePad:         "pad",
	TypeFirst:       "first",
	TypeLast:        "last",
	TypeComment:     "comment",
	TypeDictionary:  "dictionary",
	TypeModule:      "module",
	TypeEntryPoint:  "entry point",
	TypeSize:        "size",
	TypeContent:     "content",
	TypeReference:   "reference",
	TypeComputedRef: "computed reference",
	TypeFilename:    "filename",
}

func (t Type) String() string {
	if int(t) < len(typeStrings) {
		return typeStrings[t]
	}
	return fmt.Sprintf("<unknown record type %d>", byte(t))
}

// MaxVersion is the newest supported object file version.
const MaxVersion = 3

// Module and entry point flags.
const (
	FlagData   = 0x01 // Default is code.
	FlagExtern = 0x08 // Default is local.
)

// Reference flags.
const (
	Flag16BitPatch  = 0x10 // Default is 32-bit.
	FlagFromData    = 0x01 // Default is from code.
	FlagA5Relative  = 0x80 // Default is absolute.
	FlagsUnknownRef = 0x6e
)

// FlagsDifference is the only supported computed reference flags value.
const FlagsDifference = 0x90

// Content flags.
const (
	FlagContentOffset = 0x08
	FlagContentRepeat = 0x10
)

// Fixed header sizes of records with a size field.
const (
	CommentHeaderSize     = 4 // type, flags, size
	DictionaryHeaderSize  = 6 // type, flags, size, first id
	ContentHeaderSize     = 4 // type, flags, size
	ReferenceHeaderSize   = 6 // type, flags, size, symbol
	ComputedRefHeaderSize = 8 // type, flags, size, symbol, symbol
)

// Record is one of the record variants defined in this package.
type Record interface {
	Type() Type
}

type First struct {
	Flags   uint8
	Version uint16
}

type Last struct {
	Flags uint8
}

type Pad struct{}

type Comment struct {
	Flags uint8
	Text  []byte
}

type Dictionary struct {
	Flags   uint8
	FirstID uint16
	Names   []string
}

type Module struct {
	Flags   uint8
	Name    uint16
	Segment uint16
}

type EntryPoint struct {
	Flags  uint8
	Name   uint16
	Offset uint32
}

type Size struct {
	Flags uint8
	Size  uint32
}

type Content struct {
	Flags  uint8
	Offset uint32 // Valid if HasOffset.
	Repeat uint16 // 1 unless FlagContentRepeat is set.
	Data   []byte
}

type Reference struct {
	Flags   uint8
	Symbol  uint16
	Offsets []uint16
}

type ComputedRef struct {
	Flags      uint8
	Symbol     uint16
	Subtrahend uint16
	Offsets    []uint16
}

type Filename struct {
	Flags uint8
	Name  uint16
	Date  uint32
}

func (First) Type() Type       { return TypeFirst }
func (Last) Type() Type        { return TypeLast }
func (Pad) Type() Type         { return TypePad }
func (Comment) Type() Type     { return TypeComment }
func (Dictionary) Type() Type  { return TypeDictionary }
func (Module) Type() Type      { return TypeModule }
func (EntryPoint) Type() Type  { return TypeEntryPoint }
func (Size) Type() Type        { return TypeSize }
func (Content) Type() Type     { return TypeContent }
func (Reference) Type() Type   { return TypeReference }
func (ComputedRef) Type() Type { return TypeComputedRef }
func (Filename) Type() Type    { return TypeFilename }

// Extern reports whether the name introduced by a module or entry point
// record is externally visible.
func (r Module) Extern() bool     { return r.Flags&FlagExtern != 0 }
func (r Module) Data() bool       { return r.Flags&FlagData != 0 }
func (r EntryPoint) Extern() bool { return r.Flags&FlagExtern != 0 }

// HasOffset reports whether the content record specifies its offset.
func (r Content) HasOffset() bool { return r.Flags&FlagContentOffset != 0 }

// Width of the patched field.  The from-data flag doesn't affect the width.
func (r Reference) Width() int {
	if (r.Flags&^FlagFromData)&Flag16BitPatch != 0 {
		return 2
	}
	return 4
}
