// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "fmt"

// Kind classifies the failure modes the core resampling and bit-depth
// conversion engines can raise. It mirrors the error taxonomy used
// throughout the pipeline: the core never retries, it reports a (kind,
// message) pair and leaves the caller's output buffer untouched.
type Kind int

const (
	// InvalidArgument covers unsupported bit depths, sub-minimum rates,
	// nil input buffers, and zero channel counts.
	InvalidArgument Kind = iota
	// AllocationFailure means the caller-supplied Allocator returned an
	// error; the partially built output buffer is discarded before
	// returning.
	AllocationFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidArgument:
		return "invalid argument"
	case AllocationFailure:
		return "allocation failure"
	default:
		return "unknown error"
	}
}

// Error is the (kind, message) pair every fallible core operation
// returns. It wraps an optional underlying cause so errors.Is/As still
// work against that cause.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func invalidArgf(format string, args ...any) error {
	return &Error{Kind: InvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func allocFail(site string, cause error) error {
	return &Error{Kind: AllocationFailure, Message: "allocator failed in " + site, Cause: cause}
}
