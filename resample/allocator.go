// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// Allocator is the capability the engine uses to obtain the byte buffer
// backing an output Signal. It is modeled as a capability parameter
// rather than global state so callers running concurrent conversions
// never share mutable allocator state (see the concurrency note on a
// single shared kernel LUT, which this package avoids the same way: by
// never keeping one package-level table).
type Allocator func(size int) ([]byte, error)

// DefaultAllocator allocates from the Go heap and never fails. It is
// used whenever a caller passes a nil Allocator.
func DefaultAllocator(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func allocOrFail(alloc Allocator, size int, site string) ([]byte, error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	buf, err := alloc(size)
	if err != nil {
		return nil, allocFail(site, err)
	}
	if len(buf) < size {
		return nil, allocFail(site, invalidArgf("allocator returned %d bytes, need %d", len(buf), size))
	}
	return buf[:size], nil
}
