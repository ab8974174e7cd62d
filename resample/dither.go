// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// ditherState holds the running quantization error for first-order
// error-diffusion dither on each channel of an integer output engine.
// It is created zeroed, mutated once per output frame, and discarded at
// the end of the call; it never outlives a single Resample invocation.
type ditherState struct {
	err []float64 // one running error accumulator per channel
}

func newDitherState(channels int) ditherState {
	return ditherState{err: make([]float64, channels)}
}

// quantize rounds out+carried error to the nearest integer, feeds the
// residual back into the channel's running error, and returns the
// rounded value unclipped (callers clip to the output range).
func (d ditherState) quantize(channel int, out float64) float64 {
	r := roundHalfAwayFromZero(out + d.err[channel])
	d.err[channel] += out - r
	return r
}

func roundHalfAwayFromZero(x float64) float64 {
	if x >= 0 {
		return float64(int64(x + 0.5))
	}
	return float64(int64(x - 0.5))
}

func clampFloat64(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
