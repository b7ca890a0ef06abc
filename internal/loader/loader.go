// Copyright (c) 2015 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package loader

import (
	"io"

	"gate.computer/convertobj/binary"
	"gate.computer/convertobj/internal/pan"
	"gate.computer/convertobj/internal/reader"
)

// L provides panicking reading and integer decoding methods.  Read errors are
// raised via the pan package.
type L struct {
	r reader.Counter
}

func New(r binary.Reader) *L {
	return &L{reader.Counter{R: r}}
}

// Tell the number of bytes consumed so far.
func (load *L) Tell() int64 {
	return load.r.Tell()
}

func (load *L) Into(buf []byte) {
	_, err := io.ReadFull(&load.r, buf)
	pan.Check(err)
}

func (load *L) Bytes(n int) (data []byte) {
	data = make([]byte, n)
	load.Into(data)
	return
}

// Skip n bytes.
func (load *L) Skip(n int) {
	_, err := io.CopyN(io.Discard, &load.r, int64(n))
	pan.Check(err)
}

func (load *L) Byte() byte {
	return pan.Must(load.r.ReadByte())
}

func (load *L) Uint16() uint16 {
	x, _, err := binary.Uint16(&load.r)
	pan.Check(err)
	return x
}

func (load *L) Uint32() uint32 {
	x, _, err := binary.Uint32(&load.r)
	pan.Check(err)
	return x
}
