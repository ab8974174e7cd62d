// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "math"

// BitDepth tags the canonical numeric representation a Signal's buffer
// is held in. 8-bit is unsigned-offset, 16-bit is signed two's-
// complement, 24 and 32 bit are both held in memory as normalized
// single-precision floats in [-1, 1].
type BitDepth int

const (
	Bits8  BitDepth = 8
	Bits16 BitDepth = 16
	Bits24 BitDepth = 24
	Bits32 BitDepth = 32
)

func (b BitDepth) valid() bool {
	switch b {
	case Bits8, Bits16, Bits24, Bits32:
		return true
	default:
		return false
	}
}

// Valid reports whether b is one of the four supported canonical bit
// depths, for callers (such as a CLI front end) outside this package.
func (b BitDepth) Valid() bool {
	return b.valid()
}

// sampleBytes returns the per-channel byte width of the canonical
// in-memory representation: 1 byte for 8-bit, 2 for 16-bit, and 4 for
// both 24- and 32-bit (both are held as float32 per channel in memory).
func (b BitDepth) sampleBytes() int {
	switch b {
	case Bits8:
		return 1
	case Bits16:
		return 2
	case Bits24, Bits32:
		return 4
	default:
		return 0
	}
}

// Signal is a decoded, interleaved PCM buffer together with the
// metadata needed to interpret it: channel count, sample rate, and
// canonical bit-depth tag. The byte buffer length must be an exact
// multiple of the per-frame byte size (Channels * BitDepth.sampleBytes());
// NumFrames divides it out.
type Signal struct {
	Data     []byte
	Channels int
	Rate     int
	Depth    BitDepth
}

// FrameBytes returns the byte size of one interleaved frame (all
// channels) at this signal's bit depth.
func (s Signal) FrameBytes() int {
	return s.Channels * s.Depth.sampleBytes()
}

// NumFrames returns the number of frames held in Data. It assumes Data's
// length is an exact multiple of FrameBytes (Validate checks this).
func (s Signal) NumFrames() int {
	fb := s.FrameBytes()
	if fb == 0 {
		return 0
	}
	return len(s.Data) / fb
}

// Validate checks the Signal invariants: a positive
// channel count, a positive sample rate, a recognized bit depth, and a
// buffer length that is an exact multiple of the per-frame byte size.
func (s Signal) Validate() error {
	if s.Channels <= 0 {
		return invalidArgf("channel count must be positive, got %d", s.Channels)
	}
	if s.Rate <= 0 {
		return invalidArgf("sample rate must be positive, got %d", s.Rate)
	}
	if !s.Depth.valid() {
		return invalidArgf("unsupported bit depth %d", s.Depth)
	}
	fb := s.FrameBytes()
	if fb == 0 || len(s.Data)%fb != 0 {
		return invalidArgf("buffer length %d is not a multiple of frame size %d", len(s.Data), fb)
	}
	return nil
}

// ExportFloat32 decodes a 24- or 32-bit canonical Signal's buffer into a
// []float32 of interleaved samples, for callers (such as a WAVE encoder)
// that need the raw per-channel values rather than the packed bytes.
func (s Signal) ExportFloat32() []float32 {
	return s.asFloat32()
}

// asFloat32 decodes a 24- or 32-bit canonical buffer into a []float32
// (both depths are stored as 4-byte little-endian floats per channel).
func (s Signal) asFloat32() []float32 {
	n := len(s.Data) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = float32FromLE(s.Data[i*4 : i*4+4])
	}
	return out
}

func float32FromLE(b []byte) float32 {
	bits := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
	return math.Float32frombits(bits)
}

func putFloat32LE(b []byte, v float32) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}

// floatSignalFromValues packs a []float32 of interleaved samples into a
// Signal's canonical 4-byte-per-channel float buffer at the given rate,
// channel count, and depth (Bits24 or Bits32).
func floatSignalFromValues(values []float32, channels, rate int, depth BitDepth) Signal {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		putFloat32LE(buf[i*4:i*4+4], v)
	}
	return Signal{Data: buf, Channels: channels, Rate: rate, Depth: depth}
}
