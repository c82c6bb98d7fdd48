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
	"math/cmplx"
	"os"
	"strings"
)

// sparkRamp is the 9-glyph intensity ladder used by Sparkline: a blank for
// below min, seven intermediate block heights, and a full block for at or
// above max.
var sparkRamp = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline slides a fftWidth-wide, Blackman-Harris windowed FFT across src
// in steps of stride, printing one sparkline row per window to standard
// output. Magnitudes below min clamp to the blank glyph, at or above max
// clamp to the full block, and values in between map linearly onto the
// seven intermediate ramp glyphs. Each row is DC-centered and framed with
// │ … │.
func Sparkline(src SampleSource, fftWidth, stride int, min, max float32) error {
	if !isPowerOfTwo(fftWidth) {
		return ErrNotPowerOfTwo
	}
	if stride <= 0 {
		return fmt.Errorf("fft: Sparkline: stride must be positive")
	}

	if src.Length() < fftWidth {
		return ErrSourceTooShort
	}

	buf := make([]complex64, fftWidth)
	span := max - min
	ramp := len(sparkRamp) - 2 // interior glyphs, excluding the two clamps

	windows := (src.Length() - fftWidth) / stride
	for i := 0; i < windows; i++ {
		offset := i * stride

		n, err := src.ReadAt(offset, buf)
		if err != nil {
			return fmt.Errorf("fft: Sparkline: offset %d: %w", offset, err)
		}
		if n != fftWidth {
			break
		}

		applyWindow(buf, BlackmanHarris)
		spectrum, err := Transform(buf)
		if err != nil {
			return err
		}
		rotate(spectrum)

		var row strings.Builder
		row.Grow(fftWidth + 2)
		row.WriteRune('│')
		for _, z := range spectrum {
			mag := float32(cmplx.Abs(complex128(z)))
			switch {
			case mag < min:
				row.WriteRune(sparkRamp[0])
			case mag >= max:
				row.WriteRune(sparkRamp[len(sparkRamp)-1])
			default:
				idx := 1 + int((mag-min)/span*float32(ramp))
				if idx > len(sparkRamp)-2 {
					idx = len(sparkRamp) - 2
				}
				row.WriteRune(sparkRamp[idx])
			}
		}
		row.WriteRune('│')

		fmt.Fprintln(os.Stdout, row.String())
	}

	return nil
}

// vim: foldmethod=marker
