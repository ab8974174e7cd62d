// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "testing"

func TestDefaultAllocator(t *testing.T) {
	buf, err := DefaultAllocator(128)
	if err != nil {
		t.Fatalf("DefaultAllocator: %v", err)
	}
	if len(buf) != 128 {
		t.Fatalf("len(buf) = %d, want 128", len(buf))
	}
}

func TestAllocOrFailNilDefaults(t *testing.T) {
	buf, err := allocOrFail(nil, 64, "test")
	if err != nil {
		t.Fatalf("allocOrFail: %v", err)
	}
	if len(buf) != 64 {
		t.Fatalf("len(buf) = %d, want 64", len(buf))
	}
}

func TestAllocOrFailPropagatesError(t *testing.T) {
	stub := func(size int) ([]byte, error) {
		return nil, invalidArgf("refused")
	}
	if _, err := allocOrFail(stub, 64, "test"); err == nil {
		t.Fatal("expected error from failing allocator")
	}
}

func TestAllocOrFailRejectsShortBuffer(t *testing.T) {
	stub := func(size int) ([]byte, error) {
		return make([]byte, size-1), nil
	}
	if _, err := allocOrFail(stub, 64, "test"); err == nil {
		t.Fatal("expected error for undersized allocator result")
	}
}
