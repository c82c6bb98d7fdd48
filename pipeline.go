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
	"fmt"

	"hz.tools/rf"

	"hz.tools/iqpipe/fft"
	"hz.tools/iqpipe/stream"
)

// Operation is one stage of a pipeline, as produced by a CLI or other
// collaborator (out of scope for this package; see spec.md §6). Run folds
// a slice of Operation values from an optional head SampleSource to an
// optional head SampleSource, exactly as spec.md's design notes describe.
//
// Only the group of fields labelled with an Operation's Kind below is
// meaningful for it (Gen also reads SampleRate from the From group); see
// the Kind constants.
type Operation struct {
	Kind OperationKind

	// From
	Filename   string
	Format     FileFormat
	SampleRate uint

	// Gen
	Seconds     float64
	Frequencies []int64

	// Shift
	Frequency rf.Hz

	// LowPass
	FilterSize int
	Decimate   uint
	CutoffHz   rf.Hz

	// SparkFFT
	FFTWidth int
	Stride   int
	Min      float32
	Max      float32

	// Bucket
	Levels int

	// Write
	Prefix    string
	Overwrite bool
}

// OperationKind identifies which pipeline stage an Operation describes.
type OperationKind int

const (
	// OpFrom loads a FileSource, replacing the current head.
	OpFrom OperationKind = iota + 1

	// OpGen constructs a Generator, replacing the current head.
	OpGen

	// OpShift wraps the head in a Shift.
	OpShift

	// OpLowPass wraps the head in a stream.LowPass.
	OpLowPass

	// OpSparkFFT runs fft.Sparkline against the head, consuming it (the
	// head is returned unchanged so later stages may keep reading).
	OpSparkFFT

	// OpBucket runs fft.Bucket against the head, likewise non-destructive.
	OpBucket

	// OpWrite drains the head to a file, likewise non-destructive.
	OpWrite
)

// Run interprets a sequence of Operations, returning the final head
// SampleSource (nil if the pipeline never produced one, e.g. an empty
// Operation list). An input-consuming Operation (everything but From and
// Gen) run with no head returns ErrNoHead.
func Run(ops []Operation) (SampleSource, error) {
	var head SampleSource

	for i, op := range ops {
		var err error
		head, err = step(head, op)
		if err != nil {
			return nil, fmt.Errorf("iqpipe: Run: operation %d: %w", i, err)
		}
	}

	return head, nil
}

func step(head SampleSource, op Operation) (SampleSource, error) {
	switch op.Kind {
	case OpFrom:
		return NewFileSource(op.Filename, op.Format, op.SampleRate)

	case OpGen:
		return NewGenerator(op.SampleRate, op.Seconds, op.Frequencies)

	case OpShift:
		if head == nil {
			return nil, ErrNoHead
		}
		return NewShift(head, op.Frequency)

	case OpLowPass:
		if head == nil {
			return nil, ErrNoHead
		}
		return stream.NewLowPass(head, op.CutoffHz, op.FilterSize, op.Decimate)

	case OpSparkFFT:
		if head == nil {
			return nil, ErrNoHead
		}
		min, max := op.Min, op.Max
		if min == 0 && max == 0 {
			min, max = 0.08, 1.0
		}
		if err := fft.Sparkline(head, op.FFTWidth, op.Stride, min, max); err != nil {
			return nil, err
		}
		return head, nil

	case OpBucket:
		if head == nil {
			return nil, ErrNoHead
		}
		bits, err := fft.Bucket(head, op.FFTWidth, op.Stride, op.Levels)
		if err != nil {
			return nil, err
		}
		fmt.Println(bits.String())
		return head, nil

	case OpWrite:
		if head == nil {
			return nil, ErrNoHead
		}
		if _, err := Write(head, op.Prefix, op.Overwrite); err != nil {
			return nil, err
		}
		return head, nil

	default:
		return nil, fmt.Errorf("iqpipe: Run: unrecognised operation kind %d", op.Kind)
	}
}

// vim: foldmethod=marker
