// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "math"

// Phases is the number of polyphase rows in every kernel table. The
// engine linearly interpolates between adjacent rows, so 128 rows keep
// the interpolation error well below the filter's own stopband floor.
const Phases = 128

// izeroEpsilon is the series-truncation threshold for the modified
// Bessel function of the first kind, order 0.
const izeroEpsilon = 1e-21

// tap holds one kernel cell: the filter coefficient for this (phase,
// position), and the forward delta to the same position in the next
// phase row, used for the engine's cheap linear interpolation between
// adjacent phases.
type tap struct {
	Value float64
	Delta float64
}

// lut is a two-dimensional table of Phases rows by Taps columns. It is
// valid only for the (inRate, cutoffHz, taps, beta) tuple that built it,
// and is always built fresh within a single call rather than shared as a
// mutable package-level table, so concurrent calls never race on it.
type lut struct {
	Taps int
	rows [][]tap // Phases rows, each Taps long
}

func (l *lut) row(phase int) []tap { return l.rows[phase] }

// besselI0 evaluates the modified Bessel function of the first kind,
// order 0, by the series I0(y) = sum_k (y^2/4)^k / (k!)^2, truncated once
// a term becomes negligible relative to the running sum.
func besselI0(y float64) float64 {
	sum := 1.0
	term := 1.0
	halfY := y / 2.0
	for n := 1; ; n++ {
		term *= halfY / float64(n)
		sq := term * term
		sum += sq
		if sq < izeroEpsilon*sum {
			break
		}
	}
	return sum
}

// kaiserWindow evaluates the Kaiser window at tap position j of a
// W-tap window with shape parameter beta.
func kaiserWindow(j, w int, beta float64) float64 {
	if w <= 1 {
		return 1
	}
	m := 2*float64(j)/float64(w-1) - 1
	arg := 1 - m*m
	if arg < 0 {
		arg = 0
	}
	return besselI0(beta*math.Sqrt(arg)) / besselI0(beta)
}

// sinc evaluates sin(pi*x)/(pi*x), defined as 1 at x == 0.
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// buildLUT constructs a Phases x taps kernel table for the given input
// rate, cutoff (Hz, same units as inRate), window length, and Kaiser
// beta. Each phase's windowed taps are summed and the row is divided by
// that sum, so every phase has unit DC gain. Forward deltas are filled
// in once every phase is built.
func buildLUT(inRate float64, cutoffHz float64, taps int, beta float64) *lut {
	if taps > maxWindowTaps {
		taps = maxWindowTaps
	}
	if taps < 1 {
		taps = 1
	}

	l := &lut{Taps: taps, rows: make([][]tap, Phases)}
	passband := cutoffHz / inRate

	window := make([]float64, taps)
	for j := 0; j < taps; j++ {
		window[j] = kaiserWindow(j, taps, beta)
	}

	for p := 0; p < Phases; p++ {
		row := make([]tap, taps)
		delta := float64(p)/float64(Phases-1) - float64(taps)/2.0

		var sum float64
		for j := 0; j < taps; j++ {
			x := (float64(j) + delta) * passband
			v := sinc(x) * window[j]
			row[j] = tap{Value: v}
			sum += v
		}
		if sum == 0 {
			sum = 1
		}
		for j := 0; j < taps; j++ {
			row[j].Value /= sum
		}
		l.rows[p] = row
	}

	for p := 0; p < Phases-1; p++ {
		for j := 0; j < taps; j++ {
			l.rows[p][j].Delta = l.rows[p+1][j].Value - l.rows[p][j].Value
		}
	}
	// last phase's deltas stay zero (zero-valued by construction above).

	return l
}
