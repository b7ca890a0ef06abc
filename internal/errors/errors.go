// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"io"
)

type formatError struct {
	text  string
	cause error
}

// FormatError indicates malformed object file content.  The error has a
// Malformed() bool method.
func FormatError(text string) error {
	return &formatError{text, nil}
}

func FormatErrorf(format string, args ...interface{}) error {
	return &formatError{fmt.Sprintf(format, args...), nil}
}

func WrapFormatError(cause error, text string) error {
	return &formatError{text, cause}
}

func (e *formatError) Error() string       { return e.text }
func (e *formatError) PublicError() string { return e.text }
func (e *formatError) Malformed() bool     { return true }
func (e *formatError) Unwrap() error       { return e.cause }

// UnsupportedError is a well-formed object file feature which has no
// translation.
type UnsupportedError struct {
	Record string
	Flags  uint8
	Reason string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s flags: 0x%x: %s", e.Record, e.Flags, e.Reason)
}

func (e *UnsupportedError) PublicError() string { return e.Error() }
func (e *UnsupportedError) Unsupported() bool   { return true }
func (e *UnsupportedError) Unwrap() error       { return nil }

type truncated struct{}

func (truncated) Error() string       { return "truncated input" }
func (truncated) PublicError() string { return "truncated input" }
func (truncated) Malformed() bool     { return true }
func (truncated) Unwrap() error       { return io.ErrUnexpectedEOF }

// ErrTruncated is a format error which wraps io.ErrUnexpectedEOF.
var ErrTruncated error = truncated{}
