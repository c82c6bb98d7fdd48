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
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// FileSource is a SampleSource backed by a raw, header-less I/Q capture
// file in one of the formats named by FileFormat.
//
// FileSource uses (*os.File).ReadAt rather than Seek+Read, so a single
// *os.File may safely be shared by a FileSource read from multiple
// goroutines concurrently -- there is no hidden file-offset cursor. This is
// the "positional read" mechanism spec.md's concurrency model calls for
// when a GUI collaborator wants to read a shared source from a worker
// thread.
type FileSource struct {
	file       *os.File
	format     FileFormat
	sampleRate uint
	length     int
}

// NewFileSource opens path and constructs a FileSource over it. The file's
// length is determined once at construction (from the file's size), and
// does not change afterwards even if the underlying file grows or shrinks.
//
// sampleRate must be a positive integer, and format must be one of the
// FileFormat constants; both are construction-time failures if violated,
// as is a missing or unreadable file.
func NewFileSource(path string, format FileFormat, sampleRate uint) (*FileSource, error) {
	if sampleRate == 0 {
		return nil, fmt.Errorf("iqpipe: NewFileSource: sample rate must be positive")
	}
	if format.PairBytes() == 0 {
		return nil, ErrUnknownFileFormat
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("iqpipe: NewFileSource: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("iqpipe: NewFileSource: %w", err)
	}

	length := int(info.Size()) / format.PairBytes()
	log.Debug("constructed file source", "path", path, "format", format, "sampleRate", sampleRate, "length", length)

	return &FileSource{
		file:       f,
		format:     format,
		sampleRate: sampleRate,
		length:     length,
	}, nil
}

// Close releases the underlying file descriptor.
func (fs *FileSource) Close() error {
	return fs.file.Close()
}

// Length implements SampleSource.
func (fs *FileSource) Length() int {
	return fs.length
}

// SampleRate implements SampleSource.
func (fs *FileSource) SampleRate() uint {
	return fs.sampleRate
}

// Format returns the on-disk FileFormat this source decodes.
func (fs *FileSource) Format() FileFormat {
	return fs.format
}

// ReadAt implements SampleSource. A mid-stream I/O error is a fatal
// assertion per spec.md §7 -- a raw capture file has no recovery story --
// and is surfaced as a panic rather than an error return, since it
// indicates the underlying storage is no longer trustworthy.
func (fs *FileSource) ReadAt(offset int, buf []complex64) (int, error) {
	if offset < 0 || offset >= fs.length {
		return 0, fmt.Errorf("iqpipe: FileSource.ReadAt: offset %d out of range [0, %d)", offset, fs.length)
	}

	pairBytes := fs.format.PairBytes()
	want := len(buf) * pairBytes
	raw := make([]byte, want)

	n, err := fs.file.ReadAt(raw, int64(offset)*int64(pairBytes))
	if err != nil && (n == 0 || !errors.Is(err, io.EOF)) {
		panic(fmt.Sprintf("iqpipe: FileSource.ReadAt: I/O error at offset %d: %s", offset, err))
	}

	// Truncate to an integral number of sample pairs; a partial trailing
	// pair at EOF is discarded, per spec.md §6's file binary layout note.
	n -= n % pairBytes
	count := n / pairBytes

	for i := 0; i < count; i++ {
		sample, derr := fs.format.decode(raw[i*pairBytes : (i+1)*pairBytes])
		if derr != nil {
			panic(fmt.Sprintf("iqpipe: FileSource.ReadAt: corrupt sample at offset %d: %s", offset+i, derr))
		}
		buf[i] = sample
	}

	return count, nil
}

// vim: foldmethod=marker
