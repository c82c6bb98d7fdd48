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

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hz.tools/rf"

	"hz.tools/iqpipe/fft"
)

func TestBinByFreqRoundTrip(t *testing.T) {
	const width = 64
	const sampleRate = 48000

	for bin := 0; bin < width; bin++ {
		freq, err := fft.FreqByBin(width, sampleRate, bin)
		assert.NoError(t, err)

		got, err := fft.BinByFreq(width, sampleRate, freq)
		assert.NoError(t, err)
		assert.Equal(t, bin, got)
	}
}

func TestBinByFreqOutOfRange(t *testing.T) {
	_, err := fft.BinByFreq(64, 48000, rf.Hz(24000))
	assert.Error(t, err)

	_, err = fft.BinByFreq(64, 48000, rf.Hz(-24001))
	assert.Error(t, err)
}

func TestNyquist(t *testing.T) {
	assert.Equal(t, rf.Hz(24000), fft.Nyquist(48000))
}

// vim: foldmethod=marker
