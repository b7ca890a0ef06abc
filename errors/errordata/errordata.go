// Copyright (c) 2022 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errordata helps with error serialization.
package errordata

import (
	"gate.computer/convertobj/buffer"
	"gate.computer/convertobj/errors"
	"golang.org/x/xerrors"
)

// Internal details of an error.
type Internal struct {
	Error  string  `json:"error,omitempty"` // Omitted if same as public error.
	Public *Public `json:"public,omitempty"`
}

// Deconstruct an error on best-effort basis.
func Deconstruct(err error) *Internal {
	if pub := deconstructUnsupported(err); pub != nil {
		return newInternalWithPublic(err, pub)
	}
	if pub := deconstructMalformed(err); pub != nil {
		return newInternalWithPublic(err, pub)
	}
	if pub := deconstructPublic(err); pub != nil { // Must be last.
		return newInternalWithPublic(err, pub)
	}

	return &Internal{
		Error: err.Error(),
	}
}

func newInternalWithPublic(err error, pub *Public) *Internal {
	x := &Internal{
		Public: pub,
	}
	if s := err.Error(); s != pub.Error {
		x.Error = s
	}
	return x
}

// GetPublic representation which is well-formed even if there are no public
// details.
func (x *Internal) GetPublic() *Public {
	if x.Public != nil {
		return x.Public
	}

	return &Public{
		Error: "internal error",
	}
}

// Reconstruct an error.
func (x *Internal) Reconstruct() error {
	if x.Public == nil {
		return xerrors.New(x.Error)
	}

	s := x.Public.Error
	if x.Error != "" {
		s = x.Error
	}
	return reconstructError(s, x.Public)
}

// Public details of an error.
type Public struct {
	Error       string       `json:"error"`
	Malformed   *Malformed   `json:"malformed,omitempty"`
	Unsupported *Unsupported `json:"unsupported,omitempty"`
}

func deconstructPublic(err error) *Public {
	var e errors.PublicError
	if !xerrors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
	}
}

// Reconstruct an error without internal details.
func (x *Public) Reconstruct() error {
	return reconstructError(x.Error, x)
}

// Malformed object file details.
type Malformed struct {
	Truncated bool `json:"truncated,omitempty"`
	SizeLimit bool `json:"size_limit,omitempty"`
}

func deconstructMalformed(err error) *Public {
	if !errors.IsMalformed(err) {
		return nil
	}

	var e errors.PublicError
	if !xerrors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
		Malformed: &Malformed{
			Truncated: xerrors.Is(err, errors.ErrTruncated),
			SizeLimit: xerrors.Is(err, buffer.ErrSizeLimit),
		},
	}
}

// Unsupported reference details.
type Unsupported struct {
	Record string `json:"record"`
	Flags  uint8  `json:"flags"`
	Reason string `json:"reason,omitempty"`
}

func deconstructUnsupported(err error) *Public {
	var e *errors.UnsupportedError
	if !xerrors.As(err, &e) {
		return nil
	}

	return &Public{
		Error: e.PublicError(),
		Unsupported: &Unsupported{
			Record: e.Record,
			Flags:  e.Flags,
			Reason: e.Reason,
		},
	}
}

func reconstructError(s string, x *Public) error {
	if x.Unsupported != nil {
		return newUnsupportedError(s, x)
	}
	if x.Malformed != nil {
		return newMalformedError(s, x)
	}
	return newPublicError(s, x)
}

type publicError struct {
	s       string
	public  string
	wrapped error
}

var _ errors.PublicError = (*publicError)(nil)

func (e *publicError) Error() string       { return e.s }
func (e *publicError) PublicError() string { return e.public }
func (e *publicError) Unwrap() error       { return e.wrapped }

func newPublicError(s string, x *Public) error {
	return &publicError{
		s:      s,
		public: x.Error,
	}
}

type malformedError struct {
	publicError
}

func (*malformedError) Malformed() bool { return true }

func newMalformedError(s string, x *Public) error {
	e := &malformedError{publicError{
		s:      s,
		public: x.Error,
	}}
	switch {
	case x.Malformed.Truncated:
		e.wrapped = errors.ErrTruncated
	case x.Malformed.SizeLimit:
		e.wrapped = buffer.ErrSizeLimit
	}
	return e
}

func newUnsupportedError(s string, x *Public) error {
	e := &errors.UnsupportedError{
		Record: x.Unsupported.Record,
		Flags:  x.Unsupported.Flags,
		Reason: x.Unsupported.Reason,
	}
	if e.Error() == s {
		return e
	}
	return &publicError{
		s:       s,
		public:  x.Error,
		wrapped: e,
	}
}
