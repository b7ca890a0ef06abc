// Copyright (c) 2025 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pan

import (
	"io"

	"gate.computer/convertobj/internal/errors"
	"import.name/pan"
)

var z = new(pan.Zone)

var Check = z.Check
var Panic = z.Panic
var Wrap = z.Wrap

// Error converts a recovered value to an error.  End-of-file conditions are
// reported as errors.ErrTruncated.
func Error(x any) error {
	err := z.Error(x)
	if err == nil {
		return nil
	}

	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.ErrTruncated
	}

	return err
}

func Must[T any](x T, err error) T {
	Check(err)
	return x
}
