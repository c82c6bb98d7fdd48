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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hz.tools/iqpipe"
)

func TestRunEmptyPipelineReturnsNilHead(t *testing.T) {
	head, err := iqpipe.Run(nil)
	require.NoError(t, err)
	assert.Nil(t, head)
}

func TestRunInputConsumingOperationWithNoHeadFails(t *testing.T) {
	_, err := iqpipe.Run([]iqpipe.Operation{
		{Kind: iqpipe.OpShift, Frequency: 1000},
	})
	assert.ErrorIs(t, err, iqpipe.ErrNoHead)

	_, err = iqpipe.Run([]iqpipe.Operation{
		{Kind: iqpipe.OpWrite, Prefix: filepath.Join(t.TempDir(), "out")},
	})
	assert.ErrorIs(t, err, iqpipe.ErrNoHead)
}

// TestRunGenShiftWrite composes Gen, Shift, and Write into a single
// pipeline and checks the final head is still readable and the file
// landed on disk with the expected name and size.
func TestRunGenShiftWrite(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "capture")

	head, err := iqpipe.Run([]iqpipe.Operation{
		{Kind: iqpipe.OpGen, SampleRate: 48000, Seconds: 0.01, Frequencies: []int64{1000}},
		{Kind: iqpipe.OpShift, Frequency: -1000},
		{Kind: iqpipe.OpWrite, Prefix: prefix},
	})
	require.NoError(t, err)
	require.NotNil(t, head)

	assert.Equal(t, 480, head.Length())

	info, err := os.Stat(prefix + ".sr48000.cf32")
	require.NoError(t, err)
	assert.Equal(t, int64(480*8), info.Size())
}

func TestRunUnrecognisedKind(t *testing.T) {
	_, err := iqpipe.Run([]iqpipe.Operation{{Kind: iqpipe.OperationKind(999)}})
	assert.Error(t, err)
}

// vim: foldmethod=marker
