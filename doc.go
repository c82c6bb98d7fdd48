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

// Package iqpipe contains a pull-based, random-access streaming pipeline
// over complex-valued (I/Q) sample data of the kind produced by software
// defined radio hardware (RTL-SDR, HackRF, GNU Radio, gqrx).
//
// The central abstraction is SampleSource: a finite, randomly addressable
// sequence of complex64 samples. A pipeline is built by stacking sources on
// top of one another -- a leaf source (a file or a synthesized signal) is
// wrapped by zero or more transforming sources (a frequency shift, a
// decimating low-pass filter from the stream subpackage), and finally
// consumed by a sink (Write, or one of the analysers in the fft and
// bitscan subpackages).
//
// Every stage exclusively owns its predecessor and answers ReadAt calls by
// translating the requested offset into its predecessor's coordinate
// system, reading what it needs, computing, and returning. There is no
// hidden state that changes what a later read at the same offset returns:
// two ReadAt calls at the same offset must produce identical samples.
//
// This package does not parse command lines, guess file extensions, or
// drive a GUI; it is a library meant to be driven by such a collaborator,
// which composes a sequence of Operation values and interprets them with
// Run.
package iqpipe

// vim: foldmethod=marker
