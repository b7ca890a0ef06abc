// Copyright (c) 2026 Timo Savola. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package convertobj converts MPW object files to GNU assembler source.

An object file is a stream of records which declare a string dictionary and a
sequence of modules.  A module is a named chunk of code or data with labels
(entry points) and relocations.  The conversion decodes the stream into an
object.File, optionally reorders its modules so that modules connected by
16-bit references end up next to each other, and writes each module as
assembler directives.

# Errors

Errors caused by malformed object files can be recognized with
errors.IsMalformed.  Files which use features without a faithful translation
(A5-relative references and unknown reference flags) produce an
errors.UnsupportedError.  Unexpected end of input is errors.ErrTruncated,
which wraps io.ErrUnexpectedEOF.  Other errors are read or write errors.

The object file is decoded completely before anything is written, so decoding
errors produce no output.  Output is written module by module; if writing
fails, the modules written before the failure remain in the output.
*/
package convertobj
