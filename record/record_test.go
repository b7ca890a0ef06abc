// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package record

import (
	"testing"
)

func TestTypeString(t *testing.T) {
	if s := TypeComputedRef.String(); s != "computed reference" {
		t.Error(s)
	}
	if s := Type(42).String(); s != "<unknown record type 42>" {
		t.Error(s)
	}
}

func TestFlags(t *testing.T) {
	if !(Module{Flags: FlagExtern | FlagData}).Extern() || !(Module{Flags: FlagData}).Data() {
		t.Error("module flags")
	}
	if (EntryPoint{Flags: FlagData}).Extern() {
		t.Error("entry point flags")
	}

	for flags, width := range map[uint8]int{
		0x00: 4,
		0x01: 4,
		0x10: 2,
		0x11: 2,
	} {
		if w := (Reference{Flags: flags}).Width(); w != width {
			t.Errorf("flags 0x%02x: width %d", flags, w)
		}
	}

	if FlagsUnknownRef&(FlagA5Relative|Flag16BitPatch|FlagFromData) != 0 {
		t.Error("unknown reference flags overlap known flags")
	}
}
