// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package decode reads object files.
//
// Decoding is a single pass over the record stream.  Records which need a
// current module (size, content, references and entry points) apply to the
// module introduced by the most recent module record.  The stream must end
// with a last record; end of input before it is an error.
package decode

import (
	"gate.computer/convertobj/binary"
	"gate.computer/convertobj/internal/errors"
	"gate.computer/convertobj/internal/loader"
	"gate.computer/convertobj/internal/pan"
	"gate.computer/convertobj/object"
	"gate.computer/convertobj/record"
	"go.uber.org/zap"
	"golang.org/x/xerrors"
)

// DefaultMaxModuleSize limits module content size if Config.MaxModuleSize is
// not set.
const DefaultMaxModuleSize = 16 * 1024 * 1024

type Config struct {
	MaxModuleSize int
	Logger        *zap.Logger // Records are logged at debug level.
}

type decoder struct {
	log     *zap.Logger
	maxSize int
	file    *object.File
	module  *object.Module
}

// File decodes an object file.  Errors caused by malformed input can be
// inspected with the errors package.  Other errors are read errors.
func File(config *Config, r binary.Reader) (f *object.File, err error) {
	if config == nil {
		config = new(Config)
	}

	d := &decoder{
		log:     config.Logger,
		maxSize: config.MaxModuleSize,
		file:    object.NewFile(),
	}
	if d.log == nil {
		d.log = zap.NewNop()
	}
	if d.maxSize <= 0 {
		d.maxSize = DefaultMaxModuleSize
	}

	load := loader.New(r)

	defer func() {
		if x := recover(); x != nil {
			f = nil
			err = xerrors.Errorf("object file offset 0x%x: %w", load.Tell(), pan.Error(x))
		}
	}()

	first := readFirst(load)
	d.log.Debug("first", zap.Uint16("version", first.Version))

	for {
		pos := load.Tell()
		rec := readRecord(load)

		if ce := d.log.Check(zap.DebugLevel, "record"); ce != nil {
			ce.Write(zap.Int64("pos", pos), zap.Stringer("type", rec.Type()), zap.Any("fields", rec))
		}

		if d.apply(rec) {
			break
		}
	}

	if err := d.file.Check(); err != nil {
		return nil, err
	}

	return d.file, nil
}

// apply a record to the object file.  The result is true after the last
// record.
func (d *decoder) apply(rec record.Record) (last bool) {
	switch r := rec.(type) {
	case record.Pad, record.Comment, record.Filename:

	case record.Dictionary:
		for i, name := range r.Names {
			d.file.Strings.Register(object.StringID(int(r.FirstID)+i), name)
		}

	case record.Module:
		name := object.StringID(r.Name)

		d.file.Sections.Declare(name)
		if !r.Extern() {
			d.file.Locals.Add(name)
		}

		d.module = object.NewModule(name, object.StringID(r.Segment), r.Data(), d.maxSize)
		d.file.Modules = append(d.file.Modules, d.module)

	case record.Size:
		d.current(r).Bytes.ResizeBytes(int(r.Size))

	case record.Content:
		d.applyContent(d.current(r), r)

	case record.Reference:
		m := d.current(r)
		reloc := object.Relocation{
			Width:      r.Width(),
			Symbol:     object.StringID(r.Symbol),
			Subtrahend: object.NoSymbol,
		}
		for _, offset := range r.Offsets {
			m.SetReloc(uint32(offset), reloc)
		}

	case record.EntryPoint:
		name := object.StringID(r.Name)
		if !r.Extern() {
			d.file.Locals.Add(name)
		}
		d.current(r).AddLabel(r.Offset, name)

	case record.ComputedRef:
		m := d.current(r)
		reloc := object.Relocation{
			Width:      2,
			Symbol:     object.StringID(r.Symbol),
			Subtrahend: object.StringID(r.Subtrahend),
		}
		if d.file.Sections.Inherit(m.Name, reloc.Symbol) {
			d.log.Debug("section", zap.Int32("module", int32(m.Name)), zap.Int32("section", int32(d.file.Sections.Section(m.Name))))
		}
		for _, offset := range r.Offsets {
			m.SetReloc(uint32(offset), reloc)
		}

	case record.Last:
		return true

	default:
		panic(rec)
	}

	return false
}

func (d *decoder) applyContent(m *object.Module, r record.Content) {
	offset := uint64(m.Cursor)
	if r.HasOffset() {
		offset = uint64(r.Offset)
	}

	size := uint64(len(r.Data))
	end := offset + size*uint64(r.Repeat)

	b := m.Bytes.Reserve(int(end))
	for i := offset; i < end; i += size {
		copy(b[i:], r.Data)
		if size == 0 {
			break
		}
	}

	m.Cursor = uint32(end)
}

func (d *decoder) current(r record.Record) *object.Module {
	if d.module == nil {
		pan.Panic(errors.FormatErrorf("%s record precedes the first module record", r.Type()))
	}
	return d.module
}
