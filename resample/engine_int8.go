// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// resampleInt8 resamples an unsigned 8-bit offset-binary signal
// (silence = 128) to outRate. Input is converted at read time by
// subtracting 128; output is rounded with error-diffusion dither,
// clipped to [-128, 127], and stored back as r+128.
func resampleInt8(in Signal, outRate int, alloc Allocator) (Signal, error) {
	channels := in.Channels
	inFrames := int64(in.NumFrames())

	ratio := reduceRatio(int64(in.Rate), int64(outRate))
	params := solveFilterParams(int64(in.Rate), int64(outRate))
	kernel := buildLUT(float64(in.Rate), params.CutoffHz, params.Taps, params.Beta)

	outFrames := ratio.outFrames(inFrames)
	outBytes := int(outFrames) * channels
	buf, err := allocOrFail(alloc, outBytes, "resampleInt8")
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
		base := int(idx) * channels
		for c := 0; c < channels; c++ {
			dst[c] = float64(in.Data[base+c]) - 128
		}
	}

	dither := newDitherState(channels)
	emit := func(frame int64, vals []float64) {
		base := int(frame) * channels
		for c, v := range vals {
			r := dither.quantize(c, v)
			r = clampFloat64(r, -128, 127)
			buf[base+c] = byte(int(r) + 128)
		}
	}

	runPolyphase(inFrames, channels, kernel, ratio, fetch, emit)

	return Signal{Data: buf, Channels: channels, Rate: outRate, Depth: Bits8}, nil
}
