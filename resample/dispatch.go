// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// Resample converts sig to outRate, picking the engine that matches its
// bit depth: resampleInt8 for Bits8, resampleInt16 for Bits16, and the
// shared float engine for Bits24/Bits32 (both already carry the
// normalized float32 canonical representation). When outRate equals the
// input rate the signal is returned unchanged aside from a fresh
// allocator-obtained copy of its bytes.
func Resample(sig Signal, outRate int, alloc Allocator) (Signal, error) {
	if err := sig.Validate(); err != nil {
		return Signal{}, err
	}
	if outRate <= 0 {
		return Signal{}, invalidArgf("invalid output rate %d", outRate)
	}

	if outRate == sig.Rate {
		buf, err := allocOrFail(alloc, len(sig.Data), "Resample")
		if err != nil {
			return Signal{}, err
		}
		copy(buf, sig.Data)
		return Signal{Data: buf, Channels: sig.Channels, Rate: sig.Rate, Depth: sig.Depth}, nil
	}

	if sig.NumFrames() == 0 {
		return Signal{Data: nil, Channels: sig.Channels, Rate: outRate, Depth: sig.Depth}, nil
	}

	switch sig.Depth {
	case Bits8:
		return resampleInt8(sig, outRate, alloc)
	case Bits16:
		return resampleInt16(sig, outRate, alloc)
	case Bits24, Bits32:
		return resampleFloat(sig, outRate, alloc)
	default:
		return Signal{}, invalidArgf("unsupported input bit depth %d", sig.Depth)
	}
}
