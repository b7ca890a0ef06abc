// Copyright (c) 2021 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package binary implements object file integer decoding.
//
// All multi-byte integers of the object format are big-endian.
package binary

import (
	"encoding/binary"
	"io"
)

// Reader is appropriate for decoding object files.
type Reader interface {
	io.Reader
	io.ByteScanner
}

// Uint8 reads a byte.  The number of bytes read is also returned (0 or 1).
func Uint8(r Reader) (uint8, int, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, 0, err
	}
	return b, 1, nil
}

// Uint16 reads a big-endian value.  The number of bytes read is also returned
// (2 if successful).
func Uint16(r Reader) (uint16, int, error) {
	var b [2]byte

	n, err := io.ReadFull(r, b[:])
	if err != nil {
		return 0, n, err
	}

	return binary.BigEndian.Uint16(b[:]), n, nil
}

// Uint32 reads a big-endian value.  The number of bytes read is also returned
// (4 if successful).
func Uint32(r Reader) (uint32, int, error) {
	var b [4]byte

	n, err := io.ReadFull(r, b[:])
	if err != nil {
		return 0, n, err
	}

	return binary.BigEndian.Uint32(b[:]), n, nil
}

// Int16 interprets the first two bytes of b as a signed big-endian value.
func Int16(b []byte) int16 {
	return int16(binary.BigEndian.Uint16(b))
}

// Int32 interprets the first four bytes of b as a signed big-endian value.
func Int32(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}
