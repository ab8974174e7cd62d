// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// Convert maps a Signal from its current canonical bit depth to to.
// Conversions through the float domain are performed in single
// precision. Converting a Signal to its own depth returns an identical
// copy.
func Convert(in Signal, to BitDepth, alloc Allocator) (Signal, error) {
	if err := in.Validate(); err != nil {
		return Signal{}, err
	}
	if !to.valid() {
		return Signal{}, invalidArgf("unsupported target bit depth %d", to)
	}

	switch in.Depth {
	case Bits8:
		return convertFrom8(in, to, alloc)
	case Bits16:
		return convertFrom16(in, to, alloc)
	case Bits24, Bits32:
		return convertFromFloat(in, to, alloc)
	default:
		return Signal{}, invalidArgf("unsupported input bit depth %d", in.Depth)
	}
}

func convertFrom8(in Signal, to BitDepth, alloc Allocator) (Signal, error) {
	frames := in.NumFrames()
	n := frames * in.Channels

	switch to {
	case Bits8:
		buf, err := allocOrFail(alloc, len(in.Data), "convertFrom8")
		if err != nil {
			return Signal{}, err
		}
		copy(buf, in.Data)
		return Signal{Data: buf, Channels: in.Channels, Rate: in.Rate, Depth: Bits8}, nil

	case Bits16:
		buf, err := allocOrFail(alloc, n*2, "convertFrom8")
		if err != nil {
			return Signal{}, err
		}
		for i := 0; i < n; i++ {
			v := int16((int(in.Data[i]) - 128) * 256)
			buf[i*2] = byte(uint16(v))
			buf[i*2+1] = byte(uint16(v) >> 8)
		}
		return Signal{Data: buf, Channels: in.Channels, Rate: in.Rate, Depth: Bits16}, nil

	default: // Bits24, Bits32
		buf, err := allocOrFail(alloc, n*4, "convertFrom8")
		if err != nil {
			return Signal{}, err
		}
		for i := 0; i < n; i++ {
			f := float32(in.Data[i])/127 - 1
			putFloat32LE(buf[i*4:i*4+4], f)
		}
		return Signal{Data: buf, Channels: in.Channels, Rate: in.Rate, Depth: to}, nil
	}
}

func convertFrom16(in Signal, to BitDepth, alloc Allocator) (Signal, error) {
	frames := in.NumFrames()
	n := frames * in.Channels

	switch to {
	case Bits8:
		buf, err := allocOrFail(alloc, n, "convertFrom16")
		if err != nil {
			return Signal{}, err
		}
		for i := 0; i < n; i++ {
			s := int16(uint16(in.Data[i*2]) | uint16(in.Data[i*2+1])<<8)
			// rounding convention: half away from zero, so 16->8->16
			// is stable around the 128 midpoint
			v := roundHalfAwayFromZero(float64(s)/256.0 + 128.0)
			v = clampFloat64(v, 0, 255)
			buf[i] = byte(v)
		}
		return Signal{Data: buf, Channels: in.Channels, Rate: in.Rate, Depth: Bits8}, nil

	case Bits16:
		buf, err := allocOrFail(alloc, len(in.Data), "convertFrom16")
		if err != nil {
			return Signal{}, err
		}
		copy(buf, in.Data)
		return Signal{Data: buf, Channels: in.Channels, Rate: in.Rate, Depth: Bits16}, nil

	default: // Bits24, Bits32
		values := make([]float32, n)
		for i := 0; i < n; i++ {
			s := int16(uint16(in.Data[i*2]) | uint16(in.Data[i*2+1])<<8)
			values[i] = float32(s) / 32768
		}
		sig := floatSignalFromValues(values, in.Channels, in.Rate, to)
		return reallocSignal(sig, alloc, "convertFrom16")
	}
}

func convertFromFloat(in Signal, to BitDepth, alloc Allocator) (Signal, error) {
	values := in.asFloat32()
	n := len(values)

	switch to {
	case Bits8:
		buf, err := allocOrFail(alloc, n, "convertFromFloat")
		if err != nil {
			return Signal{}, err
		}
		for i, f := range values {
			v := roundHalfAwayFromZero(float64(f+1) * 127.5)
			v = clampFloat64(v, 0, 255)
			buf[i] = byte(v)
		}
		return Signal{Data: buf, Channels: in.Channels, Rate: in.Rate, Depth: Bits8}, nil

	case Bits16:
		buf, err := allocOrFail(alloc, n*2, "convertFromFloat")
		if err != nil {
			return Signal{}, err
		}
		for i, f := range values {
			v := roundHalfAwayFromZero(float64(f) * 32767)
			v = clampFloat64(v, -32768, 32767)
			s := int16(v)
			buf[i*2] = byte(uint16(s))
			buf[i*2+1] = byte(uint16(s) >> 8)
		}
		return Signal{Data: buf, Channels: in.Channels, Rate: in.Rate, Depth: Bits16}, nil

	default: // Bits24, Bits32: copy, but re-tag the depth
		buf, err := allocOrFail(alloc, len(in.Data), "convertFromFloat")
		if err != nil {
			return Signal{}, err
		}
		copy(buf, in.Data)
		return Signal{Data: buf, Channels: in.Channels, Rate: in.Rate, Depth: to}, nil
	}
}

// reallocSignal copies a Signal built with the default allocator's
// backing slice into one obtained from alloc, so every Convert path
// observes the same allocator-failure semantics.
func reallocSignal(sig Signal, alloc Allocator, site string) (Signal, error) {
	buf, err := allocOrFail(alloc, len(sig.Data), site)
	if err != nil {
		return Signal{}, err
	}
	copy(buf, sig.Data)
	sig.Data = buf
	return sig, nil
}
