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

package fft_test

import "math"

// cosineSource is a minimal fft.SampleSource generating a single cosine
// tone, used across this package's external tests.
type cosineSource struct {
	freq       float64
	sampleRate uint
	length     int
}

func (c cosineSource) Length() int      { return c.length }
func (c cosineSource) SampleRate() uint { return c.sampleRate }

func (c cosineSource) ReadAt(offset int, buf []complex64) (int, error) {
	n := len(buf)
	if offset+n > c.length {
		n = c.length - offset
	}
	for i := 0; i < n; i++ {
		p := float64(offset + i)
		theta := 2 * math.Pi * c.freq * p / float64(c.sampleRate)
		buf[i] = complex64(complex(math.Cos(theta), math.Sin(theta)))
	}
	return n, nil
}

// vim: foldmethod=marker
