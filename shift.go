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

	"hz.tools/rf"
)

// Shift is a SampleSource that mixes its predecessor with a complex
// exponential at a fixed frequency, adding frequency to every component of
// the signal: a carrier at -frequency moves to DC, and a carrier at DC moves
// to +frequency.
//
// Unlike a hardware NCO, Shift carries no running phase accumulator between
// calls: the rotation applied to the sample at global index n is computed
// directly from n, so that ReadAt(o, buf) is deterministic and
// offset-coherent regardless of call order or buffer size.
type Shift struct {
	src   SampleSource
	ratio float64
}

// NewShift wraps src, multiplying every sample at global index n by
// exp(j*2*pi*frequency*n/sampleRate).
//
// frequency must satisfy |frequency| < sampleRate/2 (the Nyquist limit);
// violating this is a construction-time failure.
func NewShift(src SampleSource, frequency rf.Hz) (*Shift, error) {
	sampleRate := src.SampleRate()
	nyquist := rf.Hz(sampleRate) / 2
	if frequency >= nyquist || frequency <= -nyquist {
		return nil, fmt.Errorf("iqpipe: NewShift: frequency %s exceeds the Nyquist limit of %s", frequency, nyquist)
	}

	log.Debug("constructed shift", "frequency", frequency, "sampleRate", sampleRate)

	return &Shift{
		src:   src,
		ratio: tau * float64(frequency) / float64(sampleRate),
	}, nil
}

// Length implements SampleSource; Shift does not change the sample count.
func (s *Shift) Length() int {
	return s.src.Length()
}

// SampleRate implements SampleSource; Shift does not change the rate.
func (s *Shift) SampleRate() uint {
	return s.src.SampleRate()
}

// ReadAt implements SampleSource.
func (s *Shift) ReadAt(offset int, buf []complex64) (int, error) {
	n, err := s.src.ReadAt(offset, buf)
	if err != nil {
		return n, &StageError{Stage: "shift", Offset: offset, Err: err}
	}

	for i := 0; i < n; i++ {
		place := float64(offset+i) * s.ratio
		mul := complex64(complex(math.Cos(place), math.Sin(place)))
		buf[i] *= mul
	}

	return n, nil
}

// vim: foldmethod=marker
