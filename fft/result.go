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

	"hz.tools/rf"
)

var (
	// ErrFrequencyOutOfRange is returned when a requested frequency falls
	// outside [-Nyquist, Nyquist).
	ErrFrequencyOutOfRange error = fmt.Errorf("fft: frequency is out of sampling range")
)

// Nyquist is half the sample rate -- the highest unambiguously representable
// frequency for a real sampling process at sampleRate.
func Nyquist(sampleRate uint) rf.Hz {
	return rf.Hz(sampleRate) / 2
}

// BinBandwidth is the frequency span represented by a single bin of a
// width-wide FFT taken at sampleRate.
func BinBandwidth(width int, sampleRate uint) rf.Hz {
	return rf.Hz(float32(sampleRate) / float32(width))
}

// BinByFreq returns the index, in a DC-centered (rotated) buffer of the
// given width, of the bin for freq: freq/BinBandwidth truncated toward zero,
// offset by width/2. The result is not rounded to the nearest bin centre.
// freq must lie in [-Nyquist, Nyquist).
func BinByFreq(width int, sampleRate uint, freq rf.Hz) (int, error) {
	nyquist := Nyquist(sampleRate)
	if freq < -nyquist || freq >= nyquist {
		return 0, ErrFrequencyOutOfRange
	}
	bin := int(freq / BinBandwidth(width, sampleRate))
	return width/2 + bin, nil
}

// FreqByBin returns the center frequency of bin in a DC-centered (rotated)
// buffer of the given width.
func FreqByBin(width int, sampleRate uint, bin int) (rf.Hz, error) {
	if bin < 0 || bin >= width {
		return 0, ErrFrequencyOutOfRange
	}
	return BinBandwidth(width, sampleRate) * rf.Hz(bin-width/2), nil
}

// vim: foldmethod=marker
