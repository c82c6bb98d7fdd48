// {{{ Copyright (c) iqpipe contributors, 2024
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE. }}}

// Package stream holds SampleSource transformers that reshape a sample
// stream rather than merely read or mix it -- presently just the decimating
// low-pass filter.
package stream

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/floats"
	"hz.tools/rf"
)

// SampleSource is the minimal pull-based, random-access contract a
// predecessor must satisfy. It is declared locally (rather than imported
// from the root package) so this package has no import cycle with it; any
// iqpipe.SampleSource already satisfies this interface structurally.
type SampleSource interface {
	Length() int
	SampleRate() uint
	ReadAt(offset int, buf []complex64) (int, error)
}

// StageError mirrors the root package's error-context wrapper so this
// package doesn't need to import it.
type StageError struct {
	Stage  string
	Offset int
	Err    error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("iqpipe: %s: offset %d: %s", e.Stage, e.Offset, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// LowPass is a SampleSource that band-limits its predecessor to a cutoff
// frequency with a windowed-sinc FIR kernel, then keeps every decimate'th
// filtered sample.
//
// The kernel is built once at construction (NewLowPass); ReadAt allocates
// only a scratch input buffer per call.
type LowPass struct {
	src      SampleSource
	kernel   []float32
	size     int
	decimate uint
	length   int
}

// NewLowPass constructs a LowPass stage reading from src.
//
// size is the FIR kernel length (larger gives a sharper transition band at
// the cost of more compute and a longer edge loss); cutoff is the desired
// passband edge, which must be positive and below src's Nyquist frequency.
// decimate must be positive; a decimate of 1 low-pass filters without
// reducing the sample rate.
func NewLowPass(src SampleSource, cutoff rf.Hz, size int, decimate uint) (*LowPass, error) {
	if size < 2 {
		return nil, fmt.Errorf("iqpipe/stream: NewLowPass: kernel size must be at least 2")
	}
	if decimate == 0 {
		return nil, fmt.Errorf("iqpipe/stream: NewLowPass: decimate must be positive")
	}
	sampleRate := src.SampleRate()
	nyquist := rf.Hz(sampleRate) / 2
	if cutoff <= 0 || cutoff >= nyquist {
		return nil, fmt.Errorf("iqpipe/stream: NewLowPass: cutoff %s must be in (0, %s)", cutoff, nyquist)
	}

	c := float64(cutoff) / float64(sampleRate)
	kernel := lowPassKernel(c, size)

	predLen := src.Length()
	length := 0
	if predLen >= size {
		length = 1 + (predLen-size)/int(decimate)
	}

	log.Debug("constructed low-pass filter", "size", size, "cutoff", cutoff, "decimate", decimate, "length", length)

	return &LowPass{
		src:      src,
		kernel:   kernel,
		size:     size,
		decimate: decimate,
		length:   length,
	}, nil
}

// lowPassKernel builds a normalized, Blackman-windowed sinc kernel of the
// given length for a cutoff normalized to the sample rate (c = cutoff/fs).
func lowPassKernel(c float64, size int) []float32 {
	taps := make([]float64, size)
	for i := 0; i < size; i++ {
		x := 2 * c * (float64(i) - float64(size-1)/2)
		taps[i] = sinc(x)
	}

	for i := 0; i < size; i++ {
		w := 0.42 -
			0.5*math.Cos(2*math.Pi*float64(i)/float64(size-1)) +
			0.08*math.Cos(4*math.Pi*float64(i)/float64(size-1))
		taps[i] *= w
	}

	sum := floats.Sum(taps)
	kernel := make([]float32, size)
	for i, t := range taps {
		kernel[i] = float32(t / sum)
	}
	return kernel
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}

// Length implements SampleSource.
func (lp *LowPass) Length() int {
	return lp.length
}

// SampleRate implements SampleSource.
func (lp *LowPass) SampleRate() uint {
	return lp.src.SampleRate() / uint(lp.decimate)
}

// ReadAt implements SampleSource.
//
// The kernel is convolved against the predecessor without zero-padding: for
// an input window of `valid` samples starting at off*decimate, output
// sample k (for k in [0, valid-size]) is the kernel-weighted sum of input
// samples [k, k+size). This is the "valid" convolution mode -- it needs no
// edge special-casing because every output sample is backed by a fully
// populated kernel window, and its length (valid-size+1) falls directly out
// of that definition rather than the parity-sensitive formula of the design
// this stage was distilled from.
func (lp *LowPass) ReadAt(offset int, buf []complex64) (int, error) {
	bufLen := len(buf)
	need := bufLen*int(lp.decimate) + lp.size

	raw := make([]complex64, need)
	valid, err := lp.src.ReadAt(offset*int(lp.decimate), raw)
	if err != nil {
		return 0, &StageError{Stage: "lowpass", Offset: offset, Err: err}
	}
	if valid < lp.size {
		return 0, nil
	}

	count := (valid-lp.size)/int(lp.decimate) + 1
	if count > bufLen {
		count = bufLen
	}

	for i := 0; i < count; i++ {
		k := i * int(lp.decimate)
		var sum complex64
		for j := 0; j < lp.size; j++ {
			sum += raw[k+j] * complex(lp.kernel[j], 0)
		}
		buf[i] = sum
	}

	return count, nil
}

// vim: foldmethod=marker
