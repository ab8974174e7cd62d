// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sweeps resamples and optionally converts the bit depth of a
// WAVE file:
//
//	sweeps <in.wav> <out.wav> <new_freq> [<new_bits>]
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/spf13/pflag"

	"github.com/emer/sweeps/resample"
	"github.com/emer/sweeps/wavio"
)

const minFrequency = 8000

func main() {
	quiet := pflag.BoolP("quiet", "q", false, "suppress the success summary")
	pflag.Parse()

	args := pflag.Args()
	if len(args) < 3 || len(args) > 4 {
		fmt.Fprintln(os.Stderr, "usage: sweeps <in.wav> <out.wav> <new_freq> [<new_bits>]")
		os.Exit(2)
	}

	if err := run(args, *quiet); err != nil {
		fmt.Printf("error %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, quiet bool) error {
	inPath, outPath := args[0], args[1]

	newFreq, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid frequency")
	}
	if newFreq < minFrequency {
		return fmt.Errorf("invalid frequency")
	}

	start := time.Now()

	sig, err := wavio.Load(inPath)
	if err != nil {
		if errors.Is(err, wavio.ErrUnsupportedBitDepth) {
			return fmt.Errorf("invalid input bitdepth")
		}
		return err
	}

	targetBits := sig.Depth
	if len(args) == 4 {
		b, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("invalid bitdepth")
		}
		targetBits = resample.BitDepth(b)
		if !targetBits.Valid() {
			return fmt.Errorf("invalid bitdepth")
		}
	}

	inFrames := sig.NumFrames()
	inSeconds := float64(inFrames) / float64(sig.Rate)

	if !quiet {
		fmt.Printf("converting %d samples (%.2f seconds).\n", inFrames*sig.Channels, inSeconds)
	}

	resampled, err := resample.Resample(sig, newFreq, nil)
	if err != nil {
		return err
	}

	converted, err := resample.Convert(resampled, targetBits, nil)
	if err != nil {
		return err
	}

	if err := wavio.Save(outPath, converted); err != nil {
		return err
	}

	elapsed := time.Since(start)

	if !quiet {
		realtime := 0.0
		if elapsed.Seconds() > 0 {
			realtime = inSeconds / elapsed.Seconds()
		}
		log.Printf("samples processed: %d", inFrames*sig.Channels)
		fmt.Printf("seconds of audio:   %.3f\n", inSeconds)
		fmt.Printf("conversion time:    %v\n", elapsed)
		fmt.Printf("realtime ratio:     %.2fx\n", realtime)
	}

	return nil
}
