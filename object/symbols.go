// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

// Locals is the set of names which are not externally visible.  Membership is
// never revoked.
type Locals map[StringID]struct{}

func (s Locals) Add(id StringID) {
	s[id] = struct{}{}
}

func (s Locals) Contains(id StringID) bool {
	_, found := s[id]
	return found
}

// SectionMap maps a module name to the name which identifies its output
// section.  Several modules share an output section when a computed reference
// ties them together.
type SectionMap map[StringID]StringID

// Declare a module name as its own section identity.
func (m SectionMap) Declare(name StringID) {
	m[name] = name
}

// Inherit the section identity of another name, if it has one.  The result
// indicates whether the identity of the module changed.
func (m SectionMap) Inherit(module, from StringID) bool {
	section, found := m[from]
	if !found {
		return false
	}
	m[module] = section
	return true
}

// Section identity of a module name.  Undeclared names identify themselves.
func (m SectionMap) Section(name StringID) StringID {
	if section, found := m[name]; found {
		return section
	}
	return name
}
