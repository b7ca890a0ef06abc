// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors exports common error types without unnecessary dependencies.
package errors

import (
	internal "gate.computer/convertobj/internal/errors"
	"golang.org/x/xerrors"
)

// PublicError has a description which doesn't reveal internal details.
type PublicError interface {
	error
	PublicError() string
}

// UnsupportedError is returned for references which cannot be translated
// faithfully (base-relative addressing or unknown flags).
type UnsupportedError = internal.UnsupportedError

// ErrTruncated indicates that the object stream ended in the middle of a
// record.  It wraps io.ErrUnexpectedEOF.
var ErrTruncated = internal.ErrTruncated

// IsMalformed reports whether err (or an error it wraps) was caused by a
// malformed object file.
func IsMalformed(err error) bool {
	var e interface{ Malformed() bool }
	return xerrors.As(err, &e) && e.Malformed()
}

// IsUnsupported reports whether err (or an error it wraps) was caused by an
// object file feature without a translation.
func IsUnsupported(err error) bool {
	var e *UnsupportedError
	return xerrors.As(err, &e)
}
