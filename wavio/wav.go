// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wavio

import (
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/emer/sweeps/resample"
)

// formatTagPCM and formatTagFloat are the two WAVE fmt-chunk tags this
// package accepts for 32-bit samples: tag 1 is scaled as signed integer
// PCM, tag 3 is reinterpreted as an IEEE float bit pattern.
const (
	formatTagPCM   = 1
	formatTagFloat = 3
)

// Load reads a complete WAVE file from path into a canonical Signal,
// reading through the Stream abstraction rather than an *os.File directly
// so the same decoding path serves OS files, in-memory blocks, and the
// named-blob VFS backend alike.
func Load(path string) (resample.Signal, error) {
	s, err := OpenFile(path)
	if err != nil {
		return resample.Signal{}, err
	}
	defer closeStream(s)
	return Decode(s)
}

// Decode reads a complete WAVE container from r into a canonical Signal.
func Decode(r io.ReadSeeker) (resample.Signal, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return resample.Signal{}, badFormat("not a valid RIFF/WAVE file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return resample.Signal{}, &ioErr{op: "read", err: err}
	}
	if buf.Format == nil {
		return resample.Signal{}, badFormat("missing fmt chunk")
	}

	channels := buf.Format.NumChannels
	rate := buf.Format.SampleRate
	bits := buf.SourceBitDepth
	tag := int(dec.WavAudioFormat)

	switch bits {
	case 8:
		data := make([]byte, len(buf.Data))
		for i, v := range buf.Data {
			data[i] = byte(v)
		}
		return resample.Signal{Data: data, Channels: channels, Rate: rate, Depth: resample.Bits8}, nil

	case 16:
		data := make([]byte, len(buf.Data)*2)
		for i, v := range buf.Data {
			s := int16(v)
			data[i*2] = byte(uint16(s))
			data[i*2+1] = byte(uint16(s) >> 8)
		}
		return resample.Signal{Data: data, Channels: channels, Rate: rate, Depth: resample.Bits16}, nil

	case 24:
		// a 24-bit sample is the top 24 bits of a scaled signed 32-bit
		// integer, so the 24-bit magnitude go-audio hands us is
		// normalized by 2^23 (same number as the full value over 2^31)
		data := make([]byte, len(buf.Data)*4)
		for i, v := range buf.Data {
			f := float32(v) / float32(1<<23)
			putFloat32LE(data[i*4:i*4+4], f)
		}
		return resample.Signal{Data: data, Channels: channels, Rate: rate, Depth: resample.Bits24}, nil

	case 32:
		data := make([]byte, len(buf.Data)*4)
		for i, v := range buf.Data {
			var f float32
			if tag == formatTagFloat {
				f = math.Float32frombits(uint32(int32(v)))
			} else {
				f = float32(v) / float32(1<<31)
			}
			putFloat32LE(data[i*4:i*4+4], f)
		}
		return resample.Signal{Data: data, Channels: channels, Rate: rate, Depth: resample.Bits32}, nil

	default:
		return resample.Signal{}, unsupportedBitDepth(bits)
	}
}

// Save writes sig to path as a RIFF/WAVE file. 24-bit signals are
// packed as the top 24 bits of a 32-bit scaled integer, little-endian;
// 32-bit signals are always written as tag-1 signed integer PCM.
func Save(path string, sig resample.Signal) error {
	s, err := CreateFile(path)
	if err != nil {
		return err
	}
	defer closeStream(s)
	if err := Encode(s, sig); err != nil {
		return err
	}
	return nil
}

// closeStream closes s if its concrete backend needs it. memStream and
// *MemWriter hold no OS resource and don't implement io.Closer; fileStream
// and the VFS write stream do.
func closeStream(s Stream) {
	if c, ok := s.(io.Closer); ok {
		c.Close()
	}
}

// Encode writes sig to w as a RIFF/WAVE container.
func Encode(w io.WriteSeeker, sig resample.Signal) error {
	if err := sig.Validate(); err != nil {
		return err
	}

	bits := int(sig.Depth)
	enc := wav.NewEncoder(w, sig.Rate, bits, sig.Channels, formatTagPCM)

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: sig.Channels, SampleRate: sig.Rate},
		SourceBitDepth: bits,
	}

	n := sig.NumFrames() * sig.Channels
	buf.Data = make([]int, n)

	switch sig.Depth {
	case resample.Bits8:
		for i := 0; i < n; i++ {
			buf.Data[i] = int(sig.Data[i])
		}

	case resample.Bits16:
		for i := 0; i < n; i++ {
			lo := sig.Data[i*2]
			hi := sig.Data[i*2+1]
			buf.Data[i] = int(int16(uint16(lo) | uint16(hi)<<8))
		}

	case resample.Bits24:
		values := sig.ExportFloat32()
		for i, f := range values {
			v := roundToInt64(float64(f) * (1 << 31))
			v = clampInt64(v, -(1 << 31), (1<<31)-1)
			buf.Data[i] = int(v >> 8)
		}

	case resample.Bits32:
		values := sig.ExportFloat32()
		for i, f := range values {
			v := roundToInt64(float64(f) * (1 << 31))
			v = clampInt64(v, -(1 << 31), (1<<31)-1)
			buf.Data[i] = int(v)
		}
	}

	if err := enc.Write(buf); err != nil {
		return &ioErr{op: "write", err: err}
	}
	if err := enc.Close(); err != nil {
		return &ioErr{op: "close", err: err}
	}
	return nil
}

func roundToInt64(f float64) int64 {
	if f >= 0 {
		return int64(f + 0.5)
	}
	return int64(f - 0.5)
}

func clampInt64(v, lo, hi int64) int64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func putFloat32LE(b []byte, v float32) {
	bits := math.Float32bits(v)
	b[0] = byte(bits)
	b[1] = byte(bits >> 8)
	b[2] = byte(bits >> 16)
	b[3] = byte(bits >> 24)
}
