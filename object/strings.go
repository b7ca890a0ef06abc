// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package object

import (
	"fmt"
)

// StringID is a key of the object file's string dictionary.  Module names,
// segment names and symbol names are all string references.
type StringID int32

// NoSymbol is used as the absent subtrahend of a relocation.
const NoSymbol StringID = -1

// Strings maps string ids to names.  The table is populated by dictionary
// records.
type Strings map[StringID]string

// Register a name.  A redefinition replaces the previous name.
func (t Strings) Register(id StringID, name string) {
	t[id] = name
}

func (t Strings) Lookup(id StringID) (name string, found bool) {
	name, found = t[id]
	return
}

// Name of a registered string.  Looking up an unregistered id is a
// programming error: File.Check rejects objects which would cause it.
func (t Strings) Name(id StringID) string {
	name, found := t[id]
	if !found {
		panic(fmt.Sprintf("string id %d is not registered", id))
	}
	return name
}
