// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package order

import (
	"math/rand"
	"testing"

	"gate.computer/convertobj/object"
)

type testFile struct {
	*object.File
}

func newTestFile() testFile {
	return testFile{object.NewFile()}
}

func (f testFile) module(name object.StringID, size int) *object.Module {
	f.Strings.Register(name, string(rune('a'+name)))
	m := object.NewModule(name, name, false, 1024)
	m.Bytes.ResizeBytes(size)
	f.Modules = append(f.Modules, m)
	return m
}

func ref(width int, symbol object.StringID) object.Relocation {
	return object.Relocation{Width: width, Symbol: symbol, Subtrahend: object.NoSymbol}
}

func names(f testFile) (ids []object.StringID) {
	for _, m := range f.Modules {
		ids = append(ids, m.Name)
	}
	return
}

func equal(a, b []object.StringID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNearReference(t *testing.T) {
	f := newTestFile()

	a := f.module(5, 4)
	f.module(1, 2)
	f.module(9, 2)
	b := f.module(6, 8)

	b.AddLabel(4, 7)
	f.Strings.Register(7, "entry")
	a.SetReloc(0, ref(2, 7))

	Sort(f.File, nil)

	if ids := names(f); !equal(ids, []object.StringID{1, 5, 6, 9}) {
		t.Errorf("order: %v", ids)
	}

	// Near lists refer to the new indexes.
	if near := f.Modules[1].Near; len(near) != 1 || near[0] != 2 {
		t.Errorf("near list of a: %v", near)
	}
	if near := f.Modules[2].Near; len(near) != 1 || near[0] != 1 {
		t.Errorf("near list of b: %v", near)
	}
}

func TestWideReferencesIgnored(t *testing.T) {
	f := newTestFile()

	a := f.module(2, 4)
	f.module(0, 2)
	f.module(1, 2)
	a.SetReloc(0, ref(4, 1))

	Sort(f.File, nil)

	if ids := names(f); !equal(ids, []object.StringID{0, 1, 2}) {
		t.Errorf("order: %v", ids)
	}
	for _, m := range f.Modules {
		if len(m.Near) != 0 {
			t.Errorf("module %d has near references: %v", m.Name, m.Near)
		}
	}
}

func TestDifferenceLinksOperands(t *testing.T) {
	f := newTestFile()

	f.module(0, 2)
	table := f.module(1, 4)
	f.module(2, 2)
	f.module(3, 2)

	// The table refers to 3 - 2; the table itself isn't linked.
	table.SetReloc(0, object.Relocation{Width: 2, Symbol: 3, Subtrahend: 2})

	Link(f.File, nil)

	if len(table.Near) != 0 {
		t.Errorf("table near list: %v", table.Near)
	}
	if near := f.Modules[2].Near; len(near) != 1 || near[0] != 3 {
		t.Errorf("near list of 2: %v", near)
	}
	if near := f.Modules[3].Near; len(near) != 1 || near[0] != 2 {
		t.Errorf("near list of 3: %v", near)
	}

	table.SetReloc(2, object.Relocation{Width: 2, Symbol: 3, Subtrahend: 99})
	Link(f.File, nil)

	if near := f.Modules[3].Near; len(near) != 1 {
		t.Errorf("unresolved subtrahend linked: %v", near)
	}
}

func TestCycle(t *testing.T) {
	f := newTestFile()

	a := f.module(3, 2)
	b := f.module(4, 2)
	f.module(0, 2)
	a.SetReloc(0, ref(2, 4))
	b.SetReloc(0, ref(2, 3))

	Sort(f.File, nil)

	if ids := names(f); !equal(ids, []object.StringID{0, 3, 4}) {
		t.Errorf("order: %v", ids)
	}
}

func TestBreadthFirst(t *testing.T) {
	f := newTestFile()

	root := f.module(0, 8)
	child1 := f.module(5, 2)
	f.module(6, 2)
	f.module(4, 2)
	f.module(1, 2)

	root.SetReloc(0, ref(2, 6))
	root.SetReloc(2, ref(2, 5))
	child1.SetReloc(0, ref(2, 4))

	Sort(f.File, nil)

	// Root's neighbors are placed before the grandchild; the unrelated
	// module comes last.
	if ids := names(f); !equal(ids, []object.StringID{0, 6, 5, 4, 1}) {
		t.Errorf("order: %v", ids)
	}
}

func TestPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for round := 0; round < 50; round++ {
		f := newTestFile()

		n := 1 + rng.Intn(20)
		for i := 0; i < n; i++ {
			// Duplicate names are allowed.
			f.module(object.StringID(rng.Intn(n)), 8)
		}
		for _, m := range f.Modules {
			for offset := uint32(0); offset < 8; offset += 2 {
				if rng.Intn(2) == 0 {
					m.SetReloc(offset, ref(2+2*rng.Intn(2), object.StringID(rng.Intn(n))))
				}
			}
		}

		orig := make(map[*object.Module]bool)
		for _, m := range f.Modules {
			orig[m] = true
		}

		Sort(f.File, nil)

		if len(f.Modules) != n {
			t.Fatalf("round %d: %d modules instead of %d", round, len(f.Modules), n)
		}
		seen := make(map[*object.Module]bool)
		for _, m := range f.Modules {
			if !orig[m] || seen[m] {
				t.Fatalf("round %d: not a permutation", round)
			}
			seen[m] = true

			for _, j := range m.Near {
				if j < 0 || j >= n {
					t.Fatalf("round %d: near index %d out of range", round, j)
				}
			}
		}
	}
}
