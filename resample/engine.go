// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

// inputFetcher fills dst (one sample per channel) with the canonical
// float64 value of input frame idx, or with silence when idx falls
// outside [0, inFrames), which gives the delay line its right zero
// padding once the input is exhausted. The left padding is the slots
// newDelayLine leaves zero-valued; fetch is never asked for idx < 0.
type inputFetcher func(idx int64, dst []float64)

// outputEmitter receives the W-tap-filtered float64 values for one
// output frame (one per channel) and is responsible for quantizing,
// clipping, and writing them into the engine's output buffer. Each of
// the three engines (8-bit, 16-bit, float) supplies its own emitter;
// everything else about the phase walk is shared.
type outputEmitter func(frame int64, vals []float64)

// delayLine is the circular buffer of the last Taps input frames an
// engine convolves against a kernel row. It is created, filled, and
// dropped within a single Resample call, never shared across calls.
type delayLine struct {
	taps     int
	channels int
	buf      []float64 // taps*channels, frame-major
	next     int       // ring head: buf[next*channels:] is tap position 0
}

func newDelayLine(taps, channels int, fetch inputFetcher) *delayLine {
	d := &delayLine{taps: taps, channels: channels, buf: make([]float64, taps*channels)}

	leftPad := taps/2 - 1
	if leftPad < 0 {
		leftPad = 0
	}

	// positions [0, leftPad) stay zero-valued: the left padding
	scratch := make([]float64, channels)
	inIdx := int64(0)
	for pos := leftPad; pos < taps; pos++ {
		fetch(inIdx, scratch)
		copy(d.buf[pos*channels:pos*channels+channels], scratch)
		inIdx++
	}
	d.next = 0
	return d
}

// push writes one new input frame at the ring head and advances it.
func (d *delayLine) push(vals []float64) {
	copy(d.buf[d.next*d.channels:d.next*d.channels+d.channels], vals)
	d.next = (d.next + 1) % d.taps
}

// convolve applies kernel row phase (linearly interpolated toward the
// next row by frac) to the current ring contents, writing one filtered
// sample per channel into out.
func (d *delayLine) convolve(row []tap, frac float64, out []float64) {
	for c := range out {
		out[c] = 0
	}
	for j := 0; j < d.taps; j++ {
		idx := (d.next + j) % d.taps
		t := row[j]
		coeff := t.Value + t.Delta*frac
		base := idx * d.channels
		for c := 0; c < d.channels; c++ {
			out[c] += d.buf[base+c] * coeff
		}
	}
}

// runPolyphase walks the phase accumulator at step M modulo L, driving
// fetch to keep the delay line filled and emit to turn each filtered
// frame into output bytes. It is shared by all three
// bit-depth-specialized engines.
func runPolyphase(inFrames int64, channels int, kernel *lut, ratio rateRatio, fetch inputFetcher, emit outputEmitter) {
	outFrames := ratio.outFrames(inFrames)
	if outFrames <= 0 {
		return
	}

	dl := newDelayLine(kernel.Taps, channels, fetch)
	leftPad := kernel.Taps/2 - 1
	if leftPad < 0 {
		leftPad = 0
	}
	nextInIdx := int64(kernel.Taps - leftPad)

	outPeriod := 1.0 / float64(ratio.L)
	subpos := int64(0)
	out := make([]float64, channels)
	scratch := make([]float64, channels)

	for f := int64(0); f < outFrames; f++ {
		offset := 1.0 - float64(subpos)*outPeriod
		interp := offset * float64(Phases-1)
		phase := int(interp)
		if phase < 0 {
			phase = 0
		}
		if phase > Phases-1 {
			phase = Phases - 1
		}
		frac := interp - float64(phase)

		dl.convolve(kernel.row(phase), frac, out)
		emit(f, out)

		subpos += ratio.M
		for subpos >= ratio.L {
			subpos -= ratio.L
			fetch(nextInIdx, scratch)
			dl.push(scratch)
			nextInIdx++
		}
	}
}
