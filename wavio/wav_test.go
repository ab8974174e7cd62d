// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavio

import (
	"bytes"
	"testing"

	"github.com/emer/sweeps/resample"
)

func TestEncodeDecodeRoundTrip16Bit(t *testing.T) {
	sig := resample.Signal{
		Data:     []byte{0, 0, 255, 127, 0, 128, 1, 0},
		Channels: 2,
		Rate:     44100,
		Depth:    resample.Bits16,
	}

	w := NewMemWriter()
	if err := Encode(w, sig); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if got.Rate != sig.Rate || got.Channels != sig.Channels || got.Depth != sig.Depth {
		t.Fatalf("metadata mismatch: got %+v, want rate=%d channels=%d depth=%d", got, sig.Rate, sig.Channels, sig.Depth)
	}
	if !bytes.Equal(got.Data, sig.Data) {
		t.Fatalf("round-tripped 16-bit PCM bytes differ: got %v, want %v", got.Data, sig.Data)
	}
}

func TestEncodeDecodeRoundTrip24Bit(t *testing.T) {
	// one period of a 100 Hz sawtooth ramp at 48 kHz
	values := make([]float32, 480)
	for i := range values {
		values[i] = float32(i)/240 - 1
	}
	sig := floatSignal(values, 1, 48000, resample.Bits24)

	w := NewMemWriter()
	if err := Encode(w, sig); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(bytes.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Depth != resample.Bits24 {
		t.Fatalf("Depth = %v, want Bits24", got.Depth)
	}

	gotValues := got.ExportFloat32()
	for i, want := range values {
		diff := gotValues[i] - want
		if diff < 0 {
			diff = -diff
		}
		if diff > 1.0/(1<<23) {
			t.Errorf("sample %d: got %v, want %v within 2^-23", i, gotValues[i], want)
		}
	}
}

func TestDecodeRejectsInvalidFile(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a wave file")))
	if err == nil {
		t.Fatal("expected error decoding a non-WAVE byte stream")
	}
}

func floatSignal(values []float32, channels, rate int, depth resample.BitDepth) resample.Signal {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		putFloat32LE(buf[i*4:i*4+4], v)
	}
	return resample.Signal{Data: buf, Channels: channels, Rate: rate, Depth: depth}
}
