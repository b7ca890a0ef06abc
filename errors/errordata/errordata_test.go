// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errordata

import (
	"encoding/json"
	"testing"

	"gate.computer/convertobj/buffer"
	"gate.computer/convertobj/errors"
	internal "gate.computer/convertobj/internal/errors"
	"golang.org/x/xerrors"
)

func roundTrip(t *testing.T, err error) error {
	t.Helper()

	data, e := json.Marshal(Deconstruct(err))
	if e != nil {
		t.Fatal(e)
	}

	x := new(Internal)
	if e := json.Unmarshal(data, x); e != nil {
		t.Fatal(e)
	}
	return x.Reconstruct()
}

func TestTruncated(t *testing.T) {
	err := roundTrip(t, xerrors.Errorf("object file offset 0x10: %w", errors.ErrTruncated))

	if !errors.IsMalformed(err) {
		t.Error("not malformed")
	}
	if !xerrors.Is(err, errors.ErrTruncated) {
		t.Error("not truncated")
	}
	if err.Error() != "object file offset 0x10: truncated input" {
		t.Error(err)
	}
}

func TestSizeLimit(t *testing.T) {
	err := roundTrip(t, buffer.ErrSizeLimit)

	if !errors.IsMalformed(err) {
		t.Error("not malformed")
	}
	if !xerrors.Is(err, buffer.ErrSizeLimit) {
		t.Error("size limit lost")
	}
}

func TestUnsupported(t *testing.T) {
	orig := &errors.UnsupportedError{Record: "reference", Flags: 0x80, Reason: "A5-relative"}
	err := roundTrip(t, orig)

	var e *errors.UnsupportedError
	if !xerrors.As(err, &e) {
		t.Fatal("not unsupported")
	}
	if *e != *orig {
		t.Errorf("%#v", e)
	}
}

func TestFormat(t *testing.T) {
	x := Deconstruct(internal.FormatError("bad record"))
	if x.Public == nil || x.Public.Malformed == nil {
		t.Fatalf("%#v", x)
	}
	if x.Error != "" {
		t.Errorf("internal error duplicated: %q", x.Error)
	}
	if x.Public.Malformed.Truncated || x.Public.Malformed.SizeLimit {
		t.Errorf("%#v", x.Public.Malformed)
	}
}

func TestInternal(t *testing.T) {
	x := Deconstruct(xerrors.New("disk on fire"))
	if x.Public != nil {
		t.Fatal("public details")
	}
	if s := x.GetPublic().Error; s != "internal error" {
		t.Error(s)
	}
}
