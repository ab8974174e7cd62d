// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// resampleFloat resamples a normalized float32 signal (the shared
// in-memory representation for both 24- and 32-bit depths) to outRate.
// Output is clipped to [-1, 1]; no dither is applied (dither exists only
// to whiten quantization noise on fixed-point outputs).
func resampleFloat(in Signal, outRate int, alloc Allocator) (Signal, error) {
	channels := in.Channels
	inFrames := int64(in.NumFrames())
	values := in.asFloat32()

	ratio := reduceRatio(int64(in.Rate), int64(outRate))
	params := solveFilterParams(int64(in.Rate), int64(outRate))
	kernel := buildLUT(float64(in.Rate), params.CutoffHz, params.Taps, params.Beta)

	outFrames := ratio.outFrames(inFrames)
	outBytes := int(outFrames) * channels * 4
	buf, err := allocOrFail(alloc, outBytes, "resampleFloat")
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
			dst[c] = float64(values[base+c])
		}
	}

	emit := func(frame int64, vals []float64) {
		base := int(frame) * channels * 4
		for c, v := range vals {
			v = clampFloat64(v, -1, 1)
			putFloat32LE(buf[base+c*4:base+c*4+4], float32(v))
		}
	}

	runPolyphase(inFrames, channels, kernel, ratio, fetch, emit)

	return Signal{Data: buf, Channels: channels, Rate: outRate, Depth: in.Depth}, nil
}
