// Copyright (c) 2016 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build gofuzz

package convertobj

import (
	"bytes"
	"io"

	"gate.computer/convertobj/errors"
)

// Fuzz is a go-fuzz entry point.
func Fuzz(data []byte) int {
	config := DefaultConfig()
	config.MaxModuleSize = 65536

	err := Convert(&config, io.Discard, bytes.NewReader(data))
	switch {
	case err == nil:
		return 1

	case errors.IsMalformed(err), errors.IsUnsupported(err):
		return 0

	default:
		panic(err)
	}
}
