// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"sort"

	"gate.computer/convertobj/binary"
	"gate.computer/convertobj/buffer"
)

// Relocation replaces Width bytes of module content with a symbolic
// expression.  The addend is stored in the content bytes which the relocation
// covers.
type Relocation struct {
	Width      int // 2 or 4
	Symbol     StringID
	Subtrahend StringID // NoSymbol if absent
}

// Difference reports whether the relocation denotes Symbol - Subtrahend.
func (r Relocation) Difference() bool {
	return r.Subtrahend != NoSymbol
}

// Addend reads the signed big-endian value stored at the start of b.
func (r Relocation) Addend(b []byte) int32 {
	switch r.Width {
	case 2:
		return int32(binary.Int16(b))

	case 4:
		return binary.Int32(b)

	default:
		panic(r.Width)
	}
}

// Module is a unit of code or data.
type Module struct {
	Name    StringID
	Segment StringID
	Data    bool
	Bytes   buffer.Limited
	Labels  map[uint32][]StringID
	Relocs  map[uint32]Relocation

	// Near contains indexes of File.Modules which are targets or sources of
	// short-range relocations.  It is populated by the order package.
	Near []int

	// Cursor is the offset following the most recent content.
	Cursor uint32
}

// NewModule with its own name as the label at offset 0.
func NewModule(name, segment StringID, data bool, maxSize int) *Module {
	return &Module{
		Name:    name,
		Segment: segment,
		Data:    data,
		Bytes:   buffer.MakeLimited(nil, maxSize),
		Labels:  map[uint32][]StringID{0: {name}},
		Relocs:  make(map[uint32]Relocation),
	}
}

func (m *Module) Len() int {
	return m.Bytes.Len()
}

// AddLabel appends a name to the aliases at an offset.
func (m *Module) AddLabel(offset uint32, name StringID) {
	m.Labels[offset] = append(m.Labels[offset], name)
}

// SetReloc installs a relocation.  An existing relocation at the same offset
// is replaced.
func (m *Module) SetReloc(offset uint32, r Relocation) {
	m.Relocs[offset] = r
}

// LabelOffsets in ascending order.
func (m *Module) LabelOffsets() []uint32 {
	return sortedKeys(m.Labels)
}

// RelocOffsets in ascending order.
func (m *Module) RelocOffsets() []uint32 {
	return sortedKeys(m.Relocs)
}

func sortedKeys[V any](m map[uint32]V) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
