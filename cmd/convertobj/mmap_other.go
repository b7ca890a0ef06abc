// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !unix

package main

import (
	"os"
)

func mapFile(filename string) (data []byte, unmap func(), err error) {
	data, err = os.ReadFile(filename)
	unmap = func() {}
	return
}
