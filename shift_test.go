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

package iqpipe_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"hz.tools/rf"

	"hz.tools/iqpipe"
)

// TestShiftRoundTrip covers spec invariant 3: Shift(+f) then Shift(-f)
// returns samples within a small tolerance of the original.
func TestShiftRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		freq := rf.Hz(rapid.Float64Range(-10000, 10000).Draw(rt, "freq"))

		gen, err := iqpipe.NewGenerator(48000, 0.01, []int64{2000})
		require.NoError(rt, err)

		up, err := iqpipe.NewShift(gen, freq)
		require.NoError(rt, err)
		down, err := iqpipe.NewShift(up, -freq)
		require.NoError(rt, err)

		want := make([]complex64, 16)
		got := make([]complex64, 16)
		require.NoError(rt, iqpipe.ReadExactAt(gen, 10, want))
		require.NoError(rt, iqpipe.ReadExactAt(down, 10, got))

		for i := range want {
			assert.InDelta(rt, 0, cmplx.Abs(complex128(want[i]-got[i])), 1e-3)
		}
	})
}

func TestShiftRejectsNyquistViolation(t *testing.T) {
	gen, err := iqpipe.NewGenerator(48000, 0.01, []int64{1000})
	require.NoError(t, err)

	_, err = iqpipe.NewShift(gen, rf.Hz(24000))
	assert.Error(t, err)

	_, err = iqpipe.NewShift(gen, rf.Hz(-24000))
	assert.Error(t, err)
}

func TestShiftToBaseband(t *testing.T) {
	// gen -cos 1000 -len 1 48k shift -1000: every sample should land near
	// DC (a constant, non-rotating phasor).
	gen, err := iqpipe.NewGenerator(48000, 0.01, []int64{1000})
	require.NoError(t, err)

	s, err := iqpipe.NewShift(gen, -1000)
	require.NoError(t, err)

	buf := make([]complex64, 4)
	require.NoError(t, iqpipe.ReadExactAt(s, 0, buf))

	for _, c := range buf {
		assert.InDelta(t, 1.0, cmplx.Abs(complex128(c)), 1e-3)
	}
}

// vim: foldmethod=marker
