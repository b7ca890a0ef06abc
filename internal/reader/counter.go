// Copyright (c) 2019 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reader tracks the read position of object streams.
package reader

import (
	"gate.computer/convertobj/binary"
)

// Counter counts the bytes consumed from R.  Unread bytes are subtracted.
type Counter struct {
	R binary.Reader
	N int64
}

func (c *Counter) Read(b []byte) (n int, err error) {
	n, err = c.R.Read(b)
	c.N += int64(n)
	return
}

func (c *Counter) ReadByte() (b byte, err error) {
	b, err = c.R.ReadByte()
	if err == nil {
		c.N++
	}
	return
}

func (c *Counter) UnreadByte() (err error) {
	err = c.R.UnreadByte()
	if err == nil {
		c.N--
	}
	return
}

// Tell the current stream position.
func (c *Counter) Tell() int64 {
	return c.N
}
