/*
 * decimal - String conversion.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

package decimal

import "strings"

// isAllDigits reports whether every byte of s is an ASCII decimal digit.
// An empty string is vacuously true, since an absent integer or
// fractional part is valid (".5" and "5." both parse).
func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// parseDigitGroup converts up to chunkDigits ASCII decimal digits, most
// significant first, into their packed value. A full 8-digit group goes
// through the SWAR pipeline; a shorter (only ever the outermost) group
// is accumulated digit by digit.
func parseDigitGroup(s string) uint64 {
	if len(s) == chunkDigits {
		var d swarDigits
		for i := 0; i < chunkDigits; i++ {
			d[i] = s[i] - '0'
		}
		return parseChunkSWAR(d)
	}
	var v uint64
	for i := 0; i < len(s); i++ {
		v = v*10 + uint64(s[i]-'0')
	}
	return v
}

// Parse converts a decimal string of the form [+-]?digits?(.digits?)? to
// a Number. At least one digit must appear on one side of the point.
// ErrParse is returned for anything else: empty input, a bare sign, a
// second decimal point, or a non-digit character.
func Parse(s string) (Number, error) {
	if s == "" {
		return Number{}, ErrParse
	}

	sign := Plus
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		sign = Minus
		s = s[1:]
	}

	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}
	if intPart == "" && fracPart == "" {
		return Number{}, ErrParse
	}
	if !isAllDigits(intPart) || !isAllDigits(fracPart) {
		return Number{}, ErrParse
	}

	for len(intPart) > 1 && intPart[0] == '0' {
		intPart = intPart[1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	numIntChunks := ceilDiv(len(intPart), chunkDigits)
	if numIntChunks == 0 {
		numIntChunks = 1
	}
	intVals := make([]uint64, numIntChunks)
	pos := len(intPart)
	for i := 0; i < numIntChunks; i++ {
		start := pos - chunkDigits
		if start < 0 {
			start = 0
		}
		intVals[i] = parseDigitGroup(intPart[start:pos])
		pos = start
	}

	scale := len(fracPart)
	fracChunks := ceilDiv(scale, chunkDigits)
	fracVals := make([]uint64, fracChunks)
	if fracChunks > 0 {
		offset := 0
		for idx := fracChunks - 1; idx >= 1; idx-- {
			fracVals[idx] = parseDigitGroup(fracPart[offset : offset+chunkDigits])
			offset += chunkDigits
		}
		// The deepest chunk (index 0, furthest from the point) may be a
		// protruded partial group: its digits occupy the upper positions.
		tail := fracPart[offset:]
		fracVals[0] = parseDigitGroup(tail) * pow10[chunkDigits-len(tail)]
	}

	chunks := make([]uint64, 0, fracChunks+numIntChunks)
	chunks = append(chunks, fracVals...)
	chunks = append(chunks, intVals...)

	return normalize(Number{
		sign:       sign,
		chunks:     chunks,
		intChunks:  numIntChunks,
		fracChunks: fracChunks,
		scale:      scale,
	}), nil
}

// trimmedScale returns the smallest scale that still keeps every
// significant fractional digit of n: the position of its last nonzero
// fractional digit, or 0 if the fractional part is entirely zero.
func (n Number) trimmedScale() int {
	for d := n.scale; d >= 1; d-- {
		if digitAt(n, d) != 0 {
			return d
		}
	}
	return 0
}

// appendFracDigits appends the first `want` fractional digits of n to
// buf (want must be <= n.scale). Chunks fully inside the requested
// range are emitted whole; the boundary chunk closest to the point may
// be a protruded partial group, handled the same way Parse builds one.
func appendFracDigits(buf []byte, n Number, want int) []byte {
	if want <= 0 {
		return buf
	}
	keep := ceilDiv(want, chunkDigits)
	r := want - (keep-1)*chunkDigits

	for idx := n.fracChunks - 1; idx > n.fracChunks-keep; idx-- {
		buf = appendChunkDigits(buf, n.chunks[idx], chunkDigits)
	}
	boundary := n.chunks[n.fracChunks-keep]
	if r == chunkDigits {
		return appendChunkDigits(buf, boundary, chunkDigits)
	}
	return appendChunkDigits(buf, extractUpperDigits(boundary, r), r)
}

// String returns n formatted with exactly Scale() fractional digits
// (trailing zeros included), equivalent to Text(false).
func (n Number) String() string {
	return n.Text(false)
}

// Text formats n as a decimal string. If trim is true, trailing
// fractional zeros (and the point itself, if nothing remains after it)
// are dropped; otherwise the string carries exactly Scale() fractional
// digits.
func (n Number) Text(trim bool) string {
	scale := n.scale
	if trim {
		scale = n.trimmedScale()
	}

	buf := make([]byte, 0, n.intDigits+scale+2)
	if n.sign == Minus {
		buf = append(buf, '-')
	}

	top := n.chunks[len(n.chunks)-1]
	buf = appendChunkDigits(buf, top, digitCount(top))
	for i := len(n.chunks) - 2; i >= n.fracChunks; i-- {
		buf = appendChunkDigits(buf, n.chunks[i], chunkDigits)
	}

	if scale > 0 {
		buf = append(buf, '.')
		buf = appendFracDigits(buf, n, scale)
	}
	return string(buf)
}
