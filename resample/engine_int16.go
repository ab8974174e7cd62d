// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// resampleInt16 resamples a signed 16-bit two's-complement signal to
// outRate. Output is rounded with error-diffusion dither and clipped to
// [-32768, 32767].
func resampleInt16(in Signal, outRate int, alloc Allocator) (Signal, error) {
	channels := in.Channels
	inFrames := int64(in.NumFrames())

	ratio := reduceRatio(int64(in.Rate), int64(outRate))
	params := solveFilterParams(int64(in.Rate), int64(outRate))
	kernel := buildLUT(float64(in.Rate), params.CutoffHz, params.Taps, params.Beta)

	outFrames := ratio.outFrames(inFrames)
	outBytes := int(outFrames) * channels * 2
	buf, err := allocOrFail(alloc, outBytes, "resampleInt16")
	if err != nil {
		return Signal{}, err
	}

	fetch := func(idx int64, dst []float64) {
		if idx < 0 || idx >= inFrames {
			for c := range dst {
				dst[c] = 0
			}
			return
		}
		base := int(idx) * channels * 2
		for c := 0; c < channels; c++ {
			lo := in.Data[base+c*2]
			hi := in.Data[base+c*2+1]
			dst[c] = float64(int16(uint16(lo) | uint16(hi)<<8))
		}
	}

	dither := newDitherState(channels)
	emit := func(frame int64, vals []float64) {
		base := int(frame) * channels * 2
		for c, v := range vals {
			r := dither.quantize(c, v)
			r = clampFloat64(r, -32768, 32767)
			s := int16(r)
			buf[base+c*2] = byte(uint16(s))
			buf[base+c*2+1] = byte(uint16(s) >> 8)
		}
	}

	runPolyphase(inFrames, channels, kernel, ratio, fetch, emit)

	return Signal{Data: buf, Channels: channels, Rate: outRate, Depth: Bits16}, nil
}
