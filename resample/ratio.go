// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// gcd returns the greatest common divisor of a and b by the Euclidean
// algorithm. Both inputs must be positive.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// rateRatio is the reduced (L, M) pair used to drive the polyphase phase
// accumulator: the accumulator advances by M per output frame and wraps
// at L, consuming one input frame per wrap. Reducing by the
// greatest common divisor of the two rates keeps both small integers
// even for oddball rate pairs like 44100/48000.
type rateRatio struct {
	L, M int64 // out/g, in/g
}

// reduceRatio divides inRate and outRate by their GCD.
func reduceRatio(inRate, outRate int64) rateRatio {
	g := gcd(inRate, outRate)
	return rateRatio{L: outRate / g, M: inRate / g}
}

// outFrames computes the number of output frames produced for inFrames
// input frames at this ratio, in 64-bit integer arithmetic (testable
// property 3: out_frames = in_frames * (out/g) / (in/g)).
func (r rateRatio) outFrames(inFrames int64) int64 {
	return inFrames * r.L / r.M
}
