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

// Package bitscan recovers a best-effort symbol stream from a boolean
// run-length signal -- the last stage of the pipeline, downstream of a
// caller-supplied slicer such as fft.Bucket.
package bitscan

import "math"

// Scan converts data, a run-length-encoded boolean signal, into a best-effort
// sequence of symbol bits given scale input samples per symbol.
//
// Each run of the current polarity is measured (tolerating brief flips, see
// runOf) and converted to round(run-length/scale) copies of that polarity;
// the accumulated absolute rounding error is returned alongside the bits, so
// callers can sweep scale and pick the value that minimizes it.
func Scan(data []bool, scale float64) (bits []bool, errSum float64) {
	half := int(math.Round(scale / 2))
	polarity := false

	for i := 0; i < len(data); {
		found := runOf(data[i:], half, polarity)
		i += found

		if found <= half {
			continue
		}

		symbols := float64(found) / scale
		rounded := math.Round(symbols)
		errSum += math.Abs(symbols - rounded)

		for n := 0; n < int(rounded); n++ {
			bits = append(bits, polarity)
		}

		polarity = !polarity
	}

	return bits, errSum
}

// runOf returns the index one past the last sample of data whose polarity
// matches val before more than tolerance consecutive mismatches are seen
// (single-sample flips inside a run do not end it), or len(data) if the
// entire slice matches within tolerance.
func runOf(data []bool, tolerance int, val bool) int {
	bad := 0
	for i, bit := range data {
		if bit != val {
			bad++
		} else {
			bad = 0
		}

		if bad > tolerance {
			return i + 1 - bad
		}
	}
	return len(data)
}

// vim: foldmethod=marker
