// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package order rearranges modules so that modules connected by 16-bit
// relocations are placed close to each other.
//
// This is a heuristic: it improves the odds that short PC-relative operands
// stay within range, but it doesn't guarantee it.  32-bit relocations don't
// affect placement.
package order

import (
	"sort"

	"gate.computer/convertobj/object"
	"go.uber.org/zap"
)

// Sort the modules of f in place.  The Near lists of the modules are rebuilt
// and refer to the new module indexes afterwards.
func Sort(f *object.File, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	Link(f, log)
	seq := Sequence(f.Modules)
	permute(f, seq)

	if ce := log.Check(zap.DebugLevel, "order"); ce != nil {
		names := make([]string, len(f.Modules))
		for i, m := range f.Modules {
			names[i], _ = f.Strings.Lookup(m.Name)
		}
		ce.Write(zap.Strings("modules", names))
	}
}

// Owners maps every label to the index of the module which defines it.  If a
// name is defined by several modules, the last one wins.
func Owners(modules []*object.Module) map[object.StringID]int {
	owners := make(map[object.StringID]int)
	for i, m := range modules {
		for _, offset := range m.LabelOffsets() {
			for _, name := range m.Labels[offset] {
				owners[name] = i
			}
		}
	}
	return owners
}

// Link populates the Near lists of the modules of f.  A 16-bit relocation to
// a single symbol links the referring module and the module which defines the
// symbol.  A 16-bit difference links the modules which define the two
// symbols.
func Link(f *object.File, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}

	for _, m := range f.Modules {
		m.Near = nil
	}

	owners := Owners(f.Modules)

	link := func(a, b int) {
		f.Modules[b].Near = append(f.Modules[b].Near, a)
		f.Modules[a].Near = append(f.Modules[a].Near, b)
		log.Debug("near", zap.Int("module", a), zap.Int("target", b))
	}

	for i, m := range f.Modules {
		for _, offset := range m.RelocOffsets() {
			r := m.Relocs[offset]
			if r.Width != 2 {
				continue
			}

			if !r.Difference() {
				if j, found := owners[r.Symbol]; found {
					link(i, j)
				}
			} else {
				j1, found1 := owners[r.Symbol]
				j2, found2 := owners[r.Subtrahend]
				if found1 && found2 {
					link(j1, j2)
				}
			}
		}
	}
}

// Sequence determines the module order based on the Near lists.  The result is
// a permutation of module indexes.
//
// Modules are placed in breadth-first order over the near-reference graph.
// When the placed modules have no unplaced neighbors, the unplaced module with
// the smallest name id (or the earliest one, if equal) is placed next.
func Sequence(modules []*object.Module) []int {
	var (
		emitted  = make([]bool, len(modules))
		seq      = make([]int, 0, len(modules))
		fallback = make([]int, len(modules))
	)

	for i := range fallback {
		fallback[i] = i
	}
	sort.SliceStable(fallback, func(i, j int) bool {
		return modules[fallback[i]].Name < modules[fallback[j]].Name
	})

	emit := func(i int) {
		emitted[i] = true
		seq = append(seq, i)
	}

	for scan := 0; len(seq) < len(modules); {
		for ; scan < len(seq); scan++ {
			for _, j := range modules[seq[scan]].Near {
				if !emitted[j] {
					emit(j)
				}
			}
		}

		for len(fallback) > 0 && emitted[fallback[0]] {
			fallback = fallback[1:]
		}
		if len(fallback) > 0 {
			emit(fallback[0])
			fallback = fallback[1:]
		}
	}

	return seq
}

func permute(f *object.File, seq []int) {
	index := make([]int, len(seq))
	modules := make([]*object.Module, len(seq))

	for newIndex, oldIndex := range seq {
		index[oldIndex] = newIndex
		modules[newIndex] = f.Modules[oldIndex]
	}

	for _, m := range modules {
		for i, j := range m.Near {
			m.Near[i] = index[j]
		}
	}

	f.Modules = modules
}
