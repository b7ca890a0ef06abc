// Copyright (c) 2015 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"bytes"
	"testing"

	"gate.computer/convertobj/errors"
	"gate.computer/convertobj/internal/pan"
	"golang.org/x/xerrors"
)

func TestLoader(t *testing.T) {
	load := New(bytes.NewReader([]byte{7, 0x01, 0x02, 0, 0, 0x10, 0, 'a', 'b', 'c', 9}))

	if x := load.Byte(); x != 7 {
		t.Errorf("Byte: %d", x)
	}
	if x := load.Uint16(); x != 0x0102 {
		t.Errorf("Uint16: 0x%x", x)
	}
	if x := load.Uint32(); x != 0x1000 {
		t.Errorf("Uint32: 0x%x", x)
	}
	if s := load.Bytes(2); string(s) != "ab" {
		t.Errorf("Bytes: %q", s)
	}
	load.Skip(1)
	if load.Tell() != 10 {
		t.Errorf("Tell: %d", load.Tell())
	}
	if x := load.Byte(); x != 9 {
		t.Errorf("Byte: %d", x)
	}
}

func TestLoaderTruncated(t *testing.T) {
	for _, f := range []func(*L){
		func(load *L) { load.Byte() },
		func(load *L) { load.Uint16() },
		func(load *L) { load.Uint32() },
		func(load *L) { load.Bytes(4) },
		func(load *L) { load.Skip(4) },
	} {
		err := func() (err error) {
			defer func() { err = pan.Error(recover()) }()
			f(New(bytes.NewReader([]byte{1})))
			f(New(bytes.NewReader(nil)))
			return
		}()

		if !xerrors.Is(err, errors.ErrTruncated) {
			t.Errorf("unexpected error: %v", err)
		}
	}
}
