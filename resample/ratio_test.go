// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package resample

import "testing"

func TestGCD(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{48000, 44100, 300},
		{44100, 48000, 300},
		{1, 1000000, 1},
		{7, 7, 7},
	}
	for _, c := range cases {
		if got := gcd(c.a, c.b); got != c.want {
			t.Errorf("gcd(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestReduceRatio(t *testing.T) {
	r := reduceRatio(44100, 48000)
	if r.L != 160 || r.M != 147 {
		t.Fatalf("reduceRatio(44100, 48000) = {%d, %d}, want {160, 147}", r.L, r.M)
	}
}

func TestOutFramesArithmetic(t *testing.T) {
	r := reduceRatio(44100, 48000)
	got := r.outFrames(4000)
	if got != 4353 {
		t.Fatalf("outFrames(4000) = %d, want 4353", got)
	}
}

func TestOutFramesIdentity(t *testing.T) {
	r := reduceRatio(48000, 48000)
	if r.L != 1 || r.M != 1 {
		t.Fatalf("reduceRatio(48000, 48000) = {%d, %d}, want {1, 1}", r.L, r.M)
	}
	if got := r.outFrames(2000); got != 2000 {
		t.Fatalf("outFrames(2000) = %d, want 2000", got)
	}
}
