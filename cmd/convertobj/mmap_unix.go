// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build unix

package main

import (
	"os"

	"golang.org/x/sys/unix"
)

// mapFile maps a file read-only.  Empty files are not mapped.
func mapFile(filename string) (data []byte, unmap func(), err error) {
	f, err := os.Open(filename)
	if err != nil {
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return
	}

	size := info.Size()
	if size == 0 || !info.Mode().IsRegular() {
		data, err = os.ReadFile(filename)
		unmap = func() {}
		return
	}

	data, err = unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return
	}

	unmap = func() { unix.Munmap(data) }
	return
}
