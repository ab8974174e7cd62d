// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "testing"

func TestSignalValidate(t *testing.T) {
	cases := []struct {
		name    string
		sig     Signal
		wantErr bool
	}{
		{"valid 16-bit stereo", Signal{Data: make([]byte, 16), Channels: 2, Rate: 44100, Depth: Bits16}, false},
		{"zero channels", Signal{Data: make([]byte, 16), Channels: 0, Rate: 44100, Depth: Bits16}, true},
		{"zero rate", Signal{Data: make([]byte, 16), Channels: 2, Rate: 0, Depth: Bits16}, true},
		{"bad depth", Signal{Data: make([]byte, 16), Channels: 2, Rate: 44100, Depth: 12}, true},
		{"misaligned buffer", Signal{Data: make([]byte, 15), Channels: 2, Rate: 44100, Depth: Bits16}, true},
	}
	for _, c := range cases {
		err := c.sig.Validate()
		if (err != nil) != c.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", c.name, err, c.wantErr)
		}
	}
}

func TestSignalNumFrames(t *testing.T) {
	sig := Signal{Data: make([]byte, 40), Channels: 2, Rate: 44100, Depth: Bits16}
	if got := sig.NumFrames(); got != 10 {
		t.Fatalf("NumFrames() = %d, want 10", got)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	values := []float32{-1, -0.5, 0, 0.5, 1}
	sig := floatSignalFromValues(values, 1, 48000, Bits32)
	got := sig.ExportFloat32()
	for i, v := range values {
		if got[i] != v {
			t.Errorf("ExportFloat32()[%d] = %v, want %v", i, got[i], v)
		}
	}
}
