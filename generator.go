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

package iqpipe

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
)

// tau is a full turn in radians, used throughout this package instead of
// 2*math.Pi.
const tau = 2 * math.Pi

// Generator is a leaf SampleSource that synthesizes a sum of complex
// exponentials (a sum of cosines, in the sense that each of the requested
// frequencies contributes one cisoid to every output sample) -- useful for
// generating test signals without any hardware or capture file.
//
// Generator carries no cross-sample state: the sample at global index p is
// computed directly from p, so ReadAt(o, buf) is trivially deterministic and
// offset-coherent.
type Generator struct {
	sampleRate uint
	length     int
	freqs      []float64
}

// NewGenerator constructs a Generator producing seconds*sampleRate samples
// at the given sampleRate, each the sum of one complex exponential per
// entry in freqs (in Hz, which may be negative).
//
// sampleRate must be positive, seconds must be positive, and freqs must be
// non-empty; any violation is a construction-time failure.
func NewGenerator(sampleRate uint, seconds float64, freqs []int64) (*Generator, error) {
	if sampleRate == 0 {
		return nil, fmt.Errorf("iqpipe: NewGenerator: sample rate must be positive")
	}
	if seconds <= 0 {
		return nil, fmt.Errorf("iqpipe: NewGenerator: seconds must be positive")
	}
	if len(freqs) == 0 {
		return nil, fmt.Errorf("iqpipe: NewGenerator: at least one frequency is required")
	}

	fs := make([]float64, len(freqs))
	for i, f := range freqs {
		fs[i] = float64(f)
	}

	length := int(math.Floor(seconds * float64(sampleRate)))
	log.Debug("constructed generator", "sampleRate", sampleRate, "length", length, "frequencies", fs)

	return &Generator{
		sampleRate: sampleRate,
		length:     length,
		freqs:      fs,
	}, nil
}

// Length implements SampleSource.
func (g *Generator) Length() int {
	return g.length
}

// SampleRate implements SampleSource.
func (g *Generator) SampleRate() uint {
	return g.sampleRate
}

// ReadAt implements SampleSource.
func (g *Generator) ReadAt(offset int, buf []complex64) (int, error) {
	if offset < 0 || offset >= g.length {
		return 0, fmt.Errorf("iqpipe: Generator.ReadAt: offset %d out of range [0, %d)", offset, g.length)
	}

	n := len(buf)
	if offset+n > g.length {
		n = g.length - offset
	}

	for k := 0; k < n; k++ {
		p := float64(offset + k)
		var sum complex128
		for _, f := range g.freqs {
			theta := tau * f * p / float64(g.sampleRate)
			sum += complex(math.Cos(theta), math.Sin(theta))
		}
		buf[k] = complex64(sum)
	}

	return n, nil
}

// vim: foldmethod=marker
