// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "math"

// Fixed design constants baked into the filter-parameter solver. A
// narrower transition band on the downsample side keeps aliasing out of
// the (smaller) output passband at the cost of a longer window.
const (
	sidelobeAttenDB  = 96.0
	upsampleDeltaF   = 1.0 / 32.0
	downsampleDeltaF = 1.0 / 128.0
	maxWindowTaps    = 2048
)

// filterParams are the derived quantities the kernel builder needs:
// cutoff frequency (Hz, same units as the input rate), window length in
// taps, and the Kaiser shape parameter beta.
type filterParams struct {
	CutoffHz float64
	Taps     int
	Beta     float64
}

// solveFilterParams picks (cutoff, taps, beta) for converting from
// inRate to outRate, per the Kaiser window design rule of thumb: a
// transition band deltaF (as a fraction of inRate) and A dB of sidelobe
// attenuation need roughly W = (A-8)/(2.285*2*pi*deltaF) + 1 taps.
func solveFilterParams(inRate, outRate int64) filterParams {
	deltaF := downsampleDeltaF
	if outRate > inRate {
		deltaF = upsampleDeltaF
	}

	a := sidelobeAttenDB
	taps := int(math.Ceil((a-8)/(2.285*2*math.Pi*deltaF))) + 1
	if taps < 1 {
		taps = 1
	}
	if taps > maxWindowTaps {
		taps = maxWindowTaps
	}

	beta := kaiserBetaForAtten(a)

	cutoff := float64(outRate) - 0.5*deltaF*float64(inRate)
	if cutoff > float64(inRate) {
		cutoff = float64(inRate)
	}
	if cutoff < 0 {
		cutoff = 0
	}

	return filterParams{CutoffHz: cutoff, Taps: taps, Beta: beta}
}

// kaiserBetaForAtten computes the Kaiser shape parameter for a target
// stopband attenuation A (dB), per Kaiser's piecewise approximation.
func kaiserBetaForAtten(a float64) float64 {
	switch {
	case a > 50:
		return 0.1102 * (a - 8.7)
	case a >= 21:
		return 0.5842*math.Pow(a-21, 0.4) + 0.07886*(a-21)
	default:
		return 0
	}
}
