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
)

// SampleSource is the minimal pull-based, random-access contract a source
// of this package's analyses must satisfy. Declared locally to avoid an
// import cycle with the root package; any iqpipe.SampleSource already
// satisfies this interface structurally.
type SampleSource interface {
	Length() int
	SampleRate() uint
	ReadAt(offset int, buf []complex64) (int, error)
}

// Config names an FFT width and the window applied to each row before
// transforming.
type Config struct {
	Width     int
	Windowing Windowing
}

// Matrix is a flat-packed set of FFT magnitude rows produced by TakeFFT:
// Rows rows of Width magnitudes each, DC-centered.
type Matrix struct {
	Rows  int
	Width int
	Data  []float32
}

// Row returns the magnitudes for row i.
func (m Matrix) Row(i int) []float32 {
	return m.Data[i*m.Width : (i+1)*m.Width]
}

// Max returns the largest magnitude in the matrix.
func (m Matrix) Max() float32 {
	max := float32(0)
	for _, v := range m.Data {
		if v > max {
			max = v
		}
	}
	return max
}

// Min returns the smallest magnitude in the matrix.
func (m Matrix) Min() float32 {
	if len(m.Data) == 0 {
		return 0
	}
	min := m.Data[0]
	for _, v := range m.Data {
		if v < min {
			min = v
		}
	}
	return min
}

// TakeFFT drives a short-time FFT over src between [start, end), producing
// outputLen rows. Row i is read from start + round(i*(end-start)/outputLen),
// windowed per cfg.Windowing, transformed, DC-rotated, and reduced to
// magnitudes.
//
// end must exceed start, end must be strictly less than src.Length(), and
// (end-start) must exceed outputLen; any violation is returned as an error
// before any sample is read (these are caller-supplied slice bounds, not data-dependent, so a
// failure here always indicates a programming error at the call site).
func TakeFFT(src SampleSource, start, end int, cfg Config, outputLen int) (Matrix, error) {
	if !isPowerOfTwo(cfg.Width) {
		return Matrix{}, ErrNotPowerOfTwo
	}
	if end <= start {
		return Matrix{}, fmt.Errorf("fft: TakeFFT: end (%d) must exceed start (%d)", end, start)
	}
	if end >= src.Length() {
		return Matrix{}, fmt.Errorf("fft: TakeFFT: end (%d) must be less than source length (%d)", end, src.Length())
	}
	visible := end - start
	if visible <= outputLen {
		return Matrix{}, fmt.Errorf("fft: TakeFFT: visible samples (%d) must exceed output length (%d)", visible, outputLen)
	}

	data := make([]float32, outputLen*cfg.Width)
	buf := make([]complex64, cfg.Width)
	step := float64(visible) / float64(outputLen)

	for i := 0; i < outputLen; i++ {
		offset := start + int(float64(i)*step+0.5)

		n, err := src.ReadAt(offset, buf)
		if err != nil {
			return Matrix{}, fmt.Errorf("fft: TakeFFT: row %d: %w", i, err)
		}
		if n != cfg.Width {
			return Matrix{}, fmt.Errorf("fft: TakeFFT: row %d: short read (%d of %d)", i, n, cfg.Width)
		}

		applyWindow(buf, cfg.Windowing)

		spectrum, err := Transform(buf)
		if err != nil {
			return Matrix{}, err
		}
		rotate(spectrum)

		row := data[i*cfg.Width : (i+1)*cfg.Width]
		for j, z := range spectrum {
			row[j] = float32(cmplx.Abs(complex128(z)))
		}
	}

	return Matrix{Rows: outputLen, Width: cfg.Width, Data: data}, nil
}

// vim: foldmethod=marker
