// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import (
	"bytes"
	"testing"
)

func TestResampleIdentityFastPath(t *testing.T) {
	data := make([]byte, 1000*2*2)
	in := Signal{Data: data, Channels: 2, Rate: 44100, Depth: Bits16}
	out, err := Resample(in, 44100, nil)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if !bytes.Equal(out.Data, in.Data) {
		t.Fatal("identity resample did not return a byte-identical copy")
	}
	if &out.Data[0] == &in.Data[0] {
		t.Fatal("identity resample must return a freshly allocated copy, not alias the input")
	}
}

func TestResampleZeroFrames(t *testing.T) {
	in := Signal{Data: nil, Channels: 1, Rate: 44100, Depth: Bits16}
	out, err := Resample(in, 22050, nil)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if out.NumFrames() != 0 {
		t.Fatalf("NumFrames() = %d, want 0", out.NumFrames())
	}
}

func TestResampleRejectsInvalidRate(t *testing.T) {
	in := Signal{Data: []byte{0, 0}, Channels: 1, Rate: 44100, Depth: Bits16}
	if _, err := Resample(in, 0, nil); err == nil {
		t.Fatal("expected error for non-positive output rate")
	}
}

func TestResampleAllocatorFailure(t *testing.T) {
	in := Signal{Data: make([]byte, 4000*2), Channels: 1, Rate: 48000, Depth: Bits16}
	failing := func(size int) ([]byte, error) {
		return nil, invalidArgf("stub allocator refuses allocations of size %d", size)
	}
	out, err := Resample(in, 24000, failing)
	if err == nil {
		t.Fatal("expected allocator failure")
	}
	if out.Data != nil {
		t.Fatal("expected no partial output on allocator failure")
	}
}
