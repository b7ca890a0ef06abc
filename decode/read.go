// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package decode

import (
	"gate.computer/convertobj/internal/errors"
	"gate.computer/convertobj/internal/loader"
	"gate.computer/convertobj/internal/pan"
	"gate.computer/convertobj/record"
)

func readFirst(load *loader.L) record.First {
	if t := record.Type(load.Byte()); t != record.TypeFirst {
		pan.Panic(errors.FormatErrorf("not an object file: leading record type is %d", t))
	}

	var r record.First
	r.Flags = load.Byte()
	r.Version = load.Uint16()

	if r.Version > record.MaxVersion {
		pan.Panic(errors.FormatErrorf("unknown object file version %d", r.Version))
	}
	return r
}

// readRecord reads one record, starting with its type byte.
func readRecord(load *loader.L) record.Record {
	pos := load.Tell()

	switch t := record.Type(load.Byte()); t {
	case record.TypePad:
		return record.Pad{}

	case record.TypeLast:
		return record.Last{Flags: load.Byte()}

	case record.TypeComment:
		return readComment(load)

	case record.TypeDictionary:
		return readDictionary(load)

	case record.TypeModule:
		return record.Module{
			Flags:   load.Byte(),
			Name:    load.Uint16(),
			Segment: load.Uint16(),
		}

	case record.TypeEntryPoint:
		return record.EntryPoint{
			Flags:  load.Byte(),
			Name:   load.Uint16(),
			Offset: load.Uint32(),
		}

	case record.TypeSize:
		return record.Size{
			Flags: load.Byte(),
			Size:  load.Uint32(),
		}

	case record.TypeContent:
		return readContent(load)

	case record.TypeReference:
		return readReference(load)

	case record.TypeComputedRef:
		return readComputedRef(load)

	case record.TypeFilename:
		return record.Filename{
			Flags: load.Byte(),
			Name:  load.Uint16(),
			Date:  load.Uint32(),
		}

	default:
		pan.Panic(errors.FormatErrorf("unknown record type %d at 0x%x", byte(t), pos))
		return nil
	}
}

// payloadSize reads a record size field and returns the number of bytes
// following the fixed header.
func payloadSize(load *loader.L, t record.Type, headerSize int) int {
	size := int(load.Uint16())
	if size < headerSize {
		pan.Panic(errors.FormatErrorf("%s record size %d is smaller than its header", t, size))
	}
	return size - headerSize
}

func readComment(load *loader.L) (r record.Comment) {
	r.Flags = load.Byte()
	r.Text = load.Bytes(payloadSize(load, record.TypeComment, record.CommentHeaderSize))
	return
}

func readDictionary(load *loader.L) (r record.Dictionary) {
	r.Flags = load.Byte()
	n := payloadSize(load, record.TypeDictionary, record.DictionaryHeaderSize)
	r.FirstID = load.Uint16()

	for n > 0 {
		length := int(load.Byte())
		n -= 1 + length
		if n < 0 {
			pan.Panic(errors.FormatError("dictionary string exceeds record size"))
		}
		r.Names = append(r.Names, string(load.Bytes(length)))
	}
	return
}

func readContent(load *loader.L) (r record.Content) {
	r.Flags = load.Byte()
	n := payloadSize(load, record.TypeContent, record.ContentHeaderSize)

	if r.Flags&record.FlagContentOffset != 0 {
		r.Offset = load.Uint32()
		n -= 4
	}

	r.Repeat = 1
	if r.Flags&record.FlagContentRepeat != 0 {
		r.Repeat = load.Uint16()
		n -= 2
		if r.Repeat == 0 {
			pan.Panic(errors.FormatError("content repeat count is zero"))
		}
	}

	if n < 0 {
		pan.Panic(errors.FormatError("content record size is smaller than its header"))
	}

	r.Data = load.Bytes(n)
	return
}

func readReference(load *loader.L) (r record.Reference) {
	r.Flags = load.Byte()
	n := payloadSize(load, record.TypeReference, record.ReferenceHeaderSize)
	r.Symbol = load.Uint16()

	if r.Flags&record.FlagsUnknownRef != 0 {
		pan.Panic(&errors.UnsupportedError{
			Record: "reference",
			Flags:  r.Flags,
			Reason: "unknown relocation flags; cannot convert this file",
		})
	}
	if r.Flags&record.FlagA5Relative != 0 {
		pan.Panic(&errors.UnsupportedError{
			Record: "reference",
			Flags:  r.Flags,
			Reason: "A5-relative references (near-model global variables or calls to imported functions) cannot be converted",
		})
	}

	r.Offsets = readOffsets(load, record.TypeReference, n)
	return
}

func readComputedRef(load *loader.L) (r record.ComputedRef) {
	r.Flags = load.Byte()
	n := payloadSize(load, record.TypeComputedRef, record.ComputedRefHeaderSize)
	r.Symbol = load.Uint16()
	r.Subtrahend = load.Uint16()

	if r.Flags != record.FlagsDifference {
		pan.Panic(errors.FormatErrorf("unexpected computed reference flags: 0x%02x", r.Flags))
	}

	r.Offsets = readOffsets(load, record.TypeComputedRef, n)
	return
}

func readOffsets(load *loader.L, t record.Type, n int) []uint16 {
	if n%2 != 0 {
		pan.Panic(errors.FormatErrorf("%s record offset list has odd size %d", t, n))
	}

	offsets := make([]uint16, n/2)
	for i := range offsets {
		offsets[i] = load.Uint16()
	}
	return offsets
}
