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
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

var (
	// ErrWriteExists is returned by Write when overwrite is false and the
	// target file already exists.
	ErrWriteExists error = fmt.Errorf("iqpipe: refusing to overwrite existing file")

	// ErrStdoutWriterUnsupported is returned when the reserved prefix "-"
	// is used. See SPEC_FULL.md §10 Q4 -- this is deliberately left
	// unimplemented, not generalized.
	ErrStdoutWriterUnsupported error = fmt.Errorf("iqpipe: writing to stdout is not implemented")
)

// writeBlockSamples is the number of samples streamed per write() call.
const writeBlockSamples = 4096

// Write drains src end-to-end and serializes it to "<prefix>.sr<rate>.cf32"
// as little-endian ComplexFloat32 pairs, in fixed-size blocks, per
// spec.md §4.9. src is read but not consumed in the sense that it remains
// usable by the caller afterwards -- Write only calls ReadAt, it never
// mutates or closes src.
//
// If overwrite is false (the default), Write fails if the target file
// already exists. The prefix "-" (reserved for stdout) is rejected with
// ErrStdoutWriterUnsupported.
func Write(src SampleSource, prefix string, overwrite bool) (string, error) {
	if prefix == "-" {
		return "", ErrStdoutWriterUnsupported
	}

	path := fmt.Sprintf("%s.sr%d.cf32", prefix, src.SampleRate())

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if !overwrite && os.IsExist(err) {
			return "", ErrWriteExists
		}
		return "", fmt.Errorf("iqpipe: Write: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)

	buf := make([]complex64, writeBlockSamples)
	raw := make([]byte, writeBlockSamples*8)

	length := src.Length()
	for off := 0; off < length; {
		n, rerr := src.ReadAt(off, buf)
		if rerr != nil {
			return "", &StageError{Stage: "write", Offset: off, Err: rerr}
		}
		if n == 0 {
			panic(fmt.Sprintf("iqpipe: Write: short read at offset %d of %d", off, length))
		}

		for i := 0; i < n; i++ {
			binary.LittleEndian.PutUint32(raw[i*8:i*8+4], math.Float32bits(real(buf[i])))
			binary.LittleEndian.PutUint32(raw[i*8+4:i*8+8], math.Float32bits(imag(buf[i])))
		}

		if _, werr := bw.Write(raw[:n*8]); werr != nil {
			return "", fmt.Errorf("iqpipe: Write: %w", werr)
		}

		off += n
	}

	if err := bw.Flush(); err != nil {
		return "", fmt.Errorf("iqpipe: Write: %w", err)
	}

	return path, nil
}

// vim: foldmethod=marker
