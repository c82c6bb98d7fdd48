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
)

var (
	// ErrShortBuffer is returned when ReadExactAt was given a buffer larger
	// than the number of samples a source had left to give.
	ErrShortBuffer error = fmt.Errorf("iqpipe: short read")

	// ErrNoHead is returned when an Operation that consumes a source (Shift,
	// LowPass, SparkFFT, Bucket, Write) runs with no prior source on the
	// stack.
	ErrNoHead error = fmt.Errorf("iqpipe: operation requires an input source")
)

// SampleSource is the spine of this package: every stage of a pipeline both
// *is* a SampleSource (it exposes Length, SampleRate and ReadAt) and *holds*
// one (its predecessor), with the exception of leaf sources such as
// FileSource and Generator.
//
// Composition is a simple stack of wrapping types, not an inheritance
// hierarchy: polymorphism is by interface.
//
// Implementations MUST be deterministic: two ReadAt calls at the same
// offset, against the same source, must return byte-identical samples. No
// ReadAt call may mutate state that would change the result of a subsequent
// call at an earlier or equal offset. Offsets passed to ReadAt are always in
// the coordinate system of the receiver -- a source that decimates or
// shifts must translate to its predecessor's coordinates internally.
//
// A short read (returning fewer samples than the buffer can hold) is only
// ever permitted when fewer than len(buf) samples remain before Length; a
// short read anywhere else indicates a bug in the source and callers are
// entitled to treat it as a contract violation.
type SampleSource interface {
	// Length returns the total number of complex samples this source can
	// produce, known in advance.
	Length() int

	// SampleRate returns the number of complex samples per second this
	// source produces. It is constant for the lifetime of the source.
	SampleRate() uint

	// ReadAt fills buf starting at offset, returning the number of samples
	// actually written. 0 <= offset < Length() is required; the returned
	// count is < len(buf) only when fewer than len(buf) samples remain.
	ReadAt(offset int, buf []complex64) (int, error)
}

// ReadExactAt reads exactly len(buf) samples from src at offset, returning
// ErrShortBuffer if fewer were available. This is the derived helper
// mentioned in the sample-source contract: most callers outside of a
// source's own implementation want this, not the raw ReadAt.
func ReadExactAt(src SampleSource, offset int, buf []complex64) error {
	n, err := src.ReadAt(offset, buf)
	if err != nil {
		return err
	}
	if n != len(buf) {
		return ErrShortBuffer
	}
	return nil
}

// StageError wraps an error returned by a predecessor with the name of the
// stage and the offset the read was attempted at, so that a chain of
// transformers can be read back as a single-line cause chain by the
// caller's error-printing convention (out of scope for this package; see
// spec.md's CLI collaborator).
type StageError struct {
	// Stage is the name of the transformer that observed the error, e.g.
	// "lowpass" or "shift".
	Stage string

	// Offset is the offset, in the failing stage's own coordinate system,
	// that the read was attempted at.
	Offset int

	// Err is the underlying error, usually returned by the predecessor.
	Err error
}

// Error implements the error interface.
func (e *StageError) Error() string {
	return fmt.Sprintf("iqpipe: %s: offset %d: %s", e.Stage, e.Offset, e.Err)
}

// Unwrap allows errors.Is / errors.As to see through a StageError to its
// underlying cause.
func (e *StageError) Unwrap() error {
	return e.Err
}

// vim: foldmethod=marker
