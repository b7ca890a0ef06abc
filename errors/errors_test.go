// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"io"
	"testing"

	internal "gate.computer/convertobj/internal/errors"
	"golang.org/x/xerrors"
)

func TestFormatError(t *testing.T) {
	for _, err := range []error{
		internal.FormatError("x"),
		internal.FormatErrorf("x %d", 1),
		internal.WrapFormatError(io.EOF, "x"),
		ErrTruncated,
		xerrors.Errorf("wrapped: %w", internal.FormatError("x")),
	} {
		if !IsMalformed(err) {
			t.Errorf("not a format error: %v", err)
		}
		if IsUnsupported(err) {
			t.Errorf("unsupported error: %v", err)
		}
	}

	if IsMalformed(io.EOF) {
		t.Error("io.EOF is a format error")
	}
}

func TestTruncated(t *testing.T) {
	if !xerrors.Is(ErrTruncated, io.ErrUnexpectedEOF) {
		t.Error(ErrTruncated)
	}
}

func TestUnsupportedError(t *testing.T) {
	err := xerrors.Errorf("wrapped: %w", &UnsupportedError{Record: "reference", Flags: 0x80, Reason: "base-relative"})

	if !IsUnsupported(err) {
		t.Error(err)
	}
	if IsMalformed(err) {
		t.Error(err)
	}

	var e *UnsupportedError
	if !xerrors.As(err, &e) || e.Flags != 0x80 {
		t.Error(err)
	}
}

func TestUnsupportedUnwrap(t *testing.T) {
	var err error = &UnsupportedError{Record: "reference", Flags: 0x02}

	if xerrors.Unwrap(err) != nil {
		t.Error("unsupported error has a cause")
	}
	if xerrors.Is(err, io.ErrUnexpectedEOF) {
		t.Error(err)
	}
}
