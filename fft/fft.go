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

// Package fft contains a hand-rolled radix-4 forward FFT, the window
// functions applied before it, a short-time FFT driver, and two analysis
// sinks (a terminal sparkline and a coarse frequency-bucket bit slicer).
package fft

import (
	"fmt"
	"math"
)

var (
	// ErrNotPowerOfTwo is returned when an FFT width is not a power of two.
	ErrNotPowerOfTwo error = fmt.Errorf("fft: width must be a power of two")
)

// Windowing selects the taper applied to a time-domain buffer before it is
// transformed.
type Windowing int

const (
	// Rectangular applies no taper.
	Rectangular Windowing = iota

	// BlackmanHarris applies a four-term Blackman-Harris taper, which
	// trades a wider main lobe for much lower sidelobes than a plain
	// Blackman window -- the right choice when hunting for a weak signal
	// near a strong one.
	BlackmanHarris
)

// isPowerOfTwo reports whether n is a positive power of two.
func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// window returns the per-sample taper coefficients for the given Windowing
// and width n, or nil for Rectangular (identity; no multiplication needed).
func window(w Windowing, n int) []float32 {
	switch w {
	case Rectangular:
		return nil
	case BlackmanHarris:
		coef := make([]float32, n)
		for i := 0; i < n; i++ {
			x := 2 * math.Pi * float64(i) / float64(n-1)
			v := 0.35875 -
				0.48829*math.Cos(x) +
				0.14128*math.Cos(2*x) -
				0.01168*math.Cos(3*x)
			coef[i] = float32(v)
		}
		return coef
	default:
		return nil
	}
}

// applyWindow multiplies buf in place by the named Windowing's coefficients.
func applyWindow(buf []complex64, w Windowing) {
	coef := window(w, len(buf))
	if coef == nil {
		return
	}
	for i, c := range coef {
		buf[i] *= complex(c, 0)
	}
}

// Transform computes the forward discrete Fourier transform of buf using a
// radix-4 Cooley-Tukey decomposition, recursing down to a radix-2 butterfly
// when len(buf) is a power of two that isn't also a power of four. buf's
// length must be a power of two.
func Transform(buf []complex64) ([]complex64, error) {
	if !isPowerOfTwo(len(buf)) {
		return nil, ErrNotPowerOfTwo
	}
	return radix4(buf), nil
}

func radix4(x []complex64) []complex64 {
	n := len(x)
	switch n {
	case 1:
		return []complex64{x[0]}
	case 2:
		return []complex64{x[0] + x[1], x[0] - x[1]}
	}

	quarter := n / 4
	x0 := make([]complex64, quarter)
	x1 := make([]complex64, quarter)
	x2 := make([]complex64, quarter)
	x3 := make([]complex64, quarter)
	for k := 0; k < quarter; k++ {
		x0[k] = x[4*k]
		x1[k] = x[4*k+1]
		x2[k] = x[4*k+2]
		x3[k] = x[4*k+3]
	}

	X0 := radix4(x0)
	X1 := radix4(x1)
	X2 := radix4(x2)
	X3 := radix4(x3)

	out := make([]complex64, n)
	for k := 0; k < quarter; k++ {
		a := X0[k]
		b := X1[k] * twiddle(1, k, n)
		c := X2[k] * twiddle(2, k, n)
		d := X3[k] * twiddle(3, k, n)

		out[k] = a + b + c + d
		out[k+quarter] = a + mulNegJ(b) - c + mulJ(d)
		out[k+2*quarter] = a - b + c - d
		out[k+3*quarter] = a + mulJ(b) - c + mulNegJ(d)
	}
	return out
}

// twiddle returns exp(-j*2*pi*m*k/n), the radix-4 twiddle factor for stage
// multiplier m.
func twiddle(m, k, n int) complex64 {
	theta := -2 * math.Pi * float64(m*k) / float64(n)
	return complex64(complex(math.Cos(theta), math.Sin(theta)))
}

func mulJ(z complex64) complex64 {
	return complex(-imag(z), real(z))
}

func mulNegJ(z complex64) complex64 {
	return complex(imag(z), -real(z))
}

// rotate performs the DC-centering half-swap: bin 0 (DC) moves from index 0
// to index len(buf)/2, and the negative-frequency bins (the back half of
// the un-rotated buffer) move to the front.
func rotate(buf []complex64) {
	half := len(buf) / 2
	for i := 0; i < half; i++ {
		buf[i], buf[i+half] = buf[i+half], buf[i]
	}
}

// vim: foldmethod=marker
