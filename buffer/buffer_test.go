// Copyright (c) 2018 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"testing"

	"gate.computer/convertobj/internal/pan"
	"golang.org/x/xerrors"
)

func TestDynamicResizeZeroes(t *testing.T) {
	d := NewDynamic(nil)

	b := d.ResizeBytes(4)
	copy(b, []byte{1, 2, 3, 4})

	d.ResizeBytes(1)
	b = d.ResizeBytes(4)

	if b[0] != 1 || b[1] != 0 || b[2] != 0 || b[3] != 0 {
		t.Errorf("stale bytes after shrink and grow: %v", b)
	}
	if d.Len() != 4 {
		t.Errorf("length %d", d.Len())
	}
}

func TestLimited(t *testing.T) {
	l := NewLimited(nil, 8)

	if b := l.Reserve(6); len(b) != 6 {
		t.Errorf("reserve: %d", len(b))
	}
	if b := l.Reserve(2); len(b) != 6 {
		t.Errorf("reserve must not shrink: %d", len(b))
	}

	err := func() (err error) {
		defer func() { err = pan.Error(recover()) }()
		l.ResizeBytes(9)
		return
	}()
	if !xerrors.Is(err, ErrSizeLimit) {
		t.Errorf("unexpected error: %v", err)
	}
	if l.Len() != 6 {
		t.Errorf("length after failed resize: %d", l.Len())
	}
}

func TestSizeError(t *testing.T) {
	var _ interface {
		Malformed() bool
		BufferSizeLimit() string
	} = ErrSizeLimit
}
