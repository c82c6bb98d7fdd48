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
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileFormatPairBytes(t *testing.T) {
	cases := []struct {
		format FileFormat
		want   int
	}{
		{ComplexFloat32, 8},
		{ComplexInt8, 2},
		{ComplexUint8, 2},
		{ComplexInt16, 4},
		{FileFormat(100), 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.format.PairBytes(), c.format.String())
	}
}

func TestComplexFloat32Decoding(t *testing.T) {
	buf := make([]byte, ComplexFloat32.PairBytes())
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(0.25))
	binary.LittleEndian.PutUint32(buf[4:8], math.Float32bits(-0.75))

	got, err := ComplexFloat32.decode(buf)
	assert.NoError(t, err)
	assert.Equal(t, complex64(complex(0.25, -0.75)), got)
}

func TestComplexUint8Decoding(t *testing.T) {
	// Per SPEC_FULL.md §10 Q1: (byte-127.5)/127.5, not the original's
	// divide-by-255-subtract-127.5 formula.
	got, err := ComplexUint8.decode([]byte{0, 255})
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, real(got), 1e-6)
	assert.InDelta(t, 1.0, imag(got), 1e-6)

	got, err = ComplexUint8.decode([]byte{127, 128})
	assert.NoError(t, err)
	assert.InDelta(t, -0.5/127.5, real(got), 1e-6)
	assert.InDelta(t, 0.5/127.5, imag(got), 1e-6)
}

func TestComplexInt16Decoding(t *testing.T) {
	// Per SPEC_FULL.md §10 Q2: divide by 32767 with no offset.
	buf := make([]byte, ComplexInt16.PairBytes())
	binary.LittleEndian.PutUint16(buf[0:2], uint16(int16(32767)))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(int16(-32767)))

	got, err := ComplexInt16.decode(buf)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, real(got), 1e-4)
	assert.InDelta(t, -1.0, imag(got), 1e-4)
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	_, err := ComplexFloat32.decode([]byte{0, 1, 2})
	assert.Error(t, err)
}

// vim: foldmethod=marker
