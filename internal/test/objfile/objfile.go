// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package objfile assembles object file streams for tests.
package objfile

import (
	"bytes"
	"encoding/binary"

	"gate.computer/convertobj/record"
)

// Builder appends records to a byte stream.  Size fields are computed.
type Builder struct {
	bytes.Buffer
}

// New stream which starts with a first record.
func New(version uint16) *Builder {
	b := new(Builder)
	b.First(version)
	return b
}

func (b *Builder) u8(x uint8) *Builder {
	b.WriteByte(x)
	return b
}

func (b *Builder) u16(x uint16) *Builder {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], x)
	b.Write(buf[:])
	return b
}

func (b *Builder) u32(x uint32) *Builder {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], x)
	b.Write(buf[:])
	return b
}

func (b *Builder) First(version uint16) *Builder {
	return b.u8(uint8(record.TypeFirst)).u8(0).u16(version)
}

func (b *Builder) Last() *Builder {
	return b.u8(uint8(record.TypeLast)).u8(0)
}

func (b *Builder) Pad() *Builder {
	return b.u8(uint8(record.TypePad))
}

func (b *Builder) Comment(text string) *Builder {
	b.u8(uint8(record.TypeComment)).u8(0).u16(uint16(record.CommentHeaderSize + len(text)))
	b.WriteString(text)
	return b
}

func (b *Builder) Dictionary(firstID uint16, names ...string) *Builder {
	size := record.DictionaryHeaderSize
	for _, s := range names {
		size += 1 + len(s)
	}

	b.u8(uint8(record.TypeDictionary)).u8(0).u16(uint16(size)).u16(firstID)
	for _, s := range names {
		b.u8(uint8(len(s)))
		b.WriteString(s)
	}
	return b
}

func (b *Builder) Module(flags uint8, name, segment uint16) *Builder {
	return b.u8(uint8(record.TypeModule)).u8(flags).u16(name).u16(segment)
}

func (b *Builder) EntryPoint(flags uint8, name uint16, offset uint32) *Builder {
	return b.u8(uint8(record.TypeEntryPoint)).u8(flags).u16(name).u32(offset)
}

func (b *Builder) Size(size uint32) *Builder {
	return b.u8(uint8(record.TypeSize)).u8(0).u32(size)
}

// Content without offset or repeat count.
func (b *Builder) Content(data ...byte) *Builder {
	b.u8(uint8(record.TypeContent)).u8(0).u16(uint16(record.ContentHeaderSize + len(data)))
	b.Write(data)
	return b
}

// ContentAt an explicit offset, repeated if repeat is not 1.
func (b *Builder) ContentAt(offset uint32, repeat uint16, data ...byte) *Builder {
	flags := uint8(record.FlagContentOffset)
	size := record.ContentHeaderSize + 4 + len(data)
	if repeat != 1 {
		flags |= record.FlagContentRepeat
		size += 2
	}

	b.u8(uint8(record.TypeContent)).u8(flags).u16(uint16(size)).u32(offset)
	if repeat != 1 {
		b.u16(repeat)
	}
	b.Write(data)
	return b
}

func (b *Builder) Reference(flags uint8, symbol uint16, offsets ...uint16) *Builder {
	b.u8(uint8(record.TypeReference)).u8(flags).u16(uint16(record.ReferenceHeaderSize + 2*len(offsets))).u16(symbol)
	for _, x := range offsets {
		b.u16(x)
	}
	return b
}

func (b *Builder) ComputedRef(flags uint8, symbol, subtrahend uint16, offsets ...uint16) *Builder {
	b.u8(uint8(record.TypeComputedRef)).u8(flags).u16(uint16(record.ComputedRefHeaderSize + 2*len(offsets))).u16(symbol).u16(subtrahend)
	for _, x := range offsets {
		b.u16(x)
	}
	return b
}

func (b *Builder) Filename(name uint16, date uint32) *Builder {
	return b.u8(uint8(record.TypeFilename)).u8(0).u16(name).u32(date)
}

// Raw bytes.
func (b *Builder) Raw(data ...byte) *Builder {
	b.Write(data)
	return b
}
