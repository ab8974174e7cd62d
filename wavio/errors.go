// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavio

import (
	"errors"
	"fmt"
)

// ErrUnsupportedBitDepth is wrapped by the error Decode returns when a
// WAVE's fmt-chunk sample size isn't one of the four canonical bit
// depths (8/16/24/32). Callers such as the CLI front end detect it with
// errors.Is rather than matching on formatErr's message text.
var ErrUnsupportedBitDepth = errors.New("unsupported source bit depth")

// ioErr reports a failure of the underlying stream (open/read/write/seek),
// distinct from a malformed-container FormatError.
type ioErr struct {
	op   string
	path string
	err  error
}

func (e *ioErr) Error() string {
	if e.path != "" {
		return fmt.Sprintf("wavio: %s %s: %v", e.op, e.path, e.err)
	}
	return fmt.Sprintf("wavio: %s: %v", e.op, e.err)
}

func (e *ioErr) Unwrap() error { return e.err }

// formatErr reports a malformed RIFF/WAVE container: unknown format tag,
// missing fmt/data chunk, or an unsupported sample size.
type formatErr struct {
	message string
	cause   error
}

func (e *formatErr) Error() string { return "wavio: " + e.message }
func (e *formatErr) Unwrap() error { return e.cause }

func badFormat(format string, args ...any) error {
	return &formatErr{message: fmt.Sprintf(format, args...)}
}

func unsupportedBitDepth(bits int) error {
	return &formatErr{
		message: fmt.Sprintf("unsupported source bit depth %d", bits),
		cause:   ErrUnsupportedBitDepth,
	}
}
