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

package fft

import (
	"fmt"
	"math/cmplx"
	"strings"

	"gonum.org/v1/gonum/floats"
)

var (
	// ErrUnsupportedLevels is returned when Bucket is asked for a level
	// count other than 2 -- the only granularity the current design
	// supports. See SPEC_FULL.md §10 Q5.
	ErrUnsupportedLevels error = fmt.Errorf("fft: only 2-level bucketing is supported")

	// ErrSourceTooShort is returned by Bucket and Sparkline when src has
	// fewer samples than a single window needs.
	ErrSourceTooShort error = fmt.Errorf("fft: source is shorter than one window")
)

// Bits is the emitted bit sequence from Bucket.
type Bits []bool

// String renders Bits as a string of '0'/'1' characters.
func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Bucket slides an unwindowed, fftWidth-wide FFT across src in steps of
// stride, and for each window emits one bit: 0 if the summed magnitude of
// the lower half of the (un-rotated) spectrum is less than the upper half's,
// else 1. levels must be 2.
func Bucket(src SampleSource, fftWidth, stride, levels int) (Bits, error) {
	if levels != 2 {
		return nil, ErrUnsupportedLevels
	}
	if !isPowerOfTwo(fftWidth) {
		return nil, ErrNotPowerOfTwo
	}
	if stride <= 0 {
		return nil, fmt.Errorf("fft: Bucket: stride must be positive")
	}

	if src.Length() < fftWidth {
		return nil, ErrSourceTooShort
	}

	buf := make([]complex64, fftWidth)
	half := fftWidth / 2
	lower := make([]float64, half)
	upper := make([]float64, half)

	windows := (src.Length() - fftWidth) / stride
	bits := make(Bits, 0, windows)

	for i := 0; i < windows; i++ {
		offset := i * stride

		n, err := src.ReadAt(offset, buf)
		if err != nil {
			return nil, fmt.Errorf("fft: Bucket: offset %d: %w", offset, err)
		}
		if n != fftWidth {
			break
		}

		spectrum, err := Transform(buf)
		if err != nil {
			return nil, err
		}

		for j := 0; j < half; j++ {
			lower[j] = cmplx.Abs(complex128(spectrum[j]))
			upper[j] = cmplx.Abs(complex128(spectrum[j+half]))
		}

		bits = append(bits, floats.Sum(lower) >= floats.Sum(upper))
	}

	return bits, nil
}

// vim: foldmethod=marker
