// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package object contains the in-memory representation of a decoded object
// file.
//
// A File owns its modules, its string dictionary and the side tables which
// describe symbol visibility and section grouping.  Modules refer to each
// other only by index, so the reference graph built by the order package may
// contain cycles.
package object

import (
	"gate.computer/convertobj/internal/errors"
)

type File struct {
	Strings  Strings
	Locals   Locals
	Sections SectionMap
	Modules  []*Module
}

func NewFile() *File {
	return &File{
		Strings:  make(Strings),
		Locals:   make(Locals),
		Sections: make(SectionMap),
	}
}

// Check the invariants which the emitter relies on.  Every referenced string
// must be registered.  Labels must lie within the module content (a label may
// also follow the last byte).  Relocations must fit within the content and
// must not overlap each other or a label.
func (f *File) Check() error {
	for _, m := range f.Modules {
		if err := f.checkModule(m); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) checkModule(m *Module) error {
	if err := f.checkString(m.Name, "module name"); err != nil {
		return err
	}

	name := f.Strings[m.Name]
	size := uint64(m.Len())

	for _, offset := range m.LabelOffsets() {
		if uint64(offset) > size {
			return errors.FormatErrorf("module %q: label offset 0x%x is beyond module size 0x%x", name, offset, size)
		}
		for _, label := range m.Labels[offset] {
			if err := f.checkString(label, "label"); err != nil {
				return err
			}
		}
	}

	var end uint64

	for _, offset := range m.RelocOffsets() {
		r := m.Relocs[offset]

		if uint64(offset) < end {
			return errors.FormatErrorf("module %q: relocation at offset 0x%x overlaps previous relocation", name, offset)
		}
		end = uint64(offset) + uint64(r.Width)
		if end > size {
			return errors.FormatErrorf("module %q: relocation at offset 0x%x exceeds module size 0x%x", name, offset, size)
		}

		for i := uint64(offset) + 1; i < end; i++ {
			if _, found := m.Labels[uint32(i)]; found {
				return errors.FormatErrorf("module %q: label at offset 0x%x is inside a relocation", name, i)
			}
		}

		if err := f.checkString(r.Symbol, "relocation symbol"); err != nil {
			return err
		}
		if r.Difference() {
			if err := f.checkString(r.Subtrahend, "relocation symbol"); err != nil {
				return err
			}
		}
	}

	return nil
}

func (f *File) checkString(id StringID, what string) error {
	if _, found := f.Strings.Lookup(id); !found {
		return errors.FormatErrorf("%s refers to undefined string id %d", what, id)
	}
	return nil
}
