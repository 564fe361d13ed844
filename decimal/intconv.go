/*
 * decimal - Machine integer conversions.
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

import "math"

// absMinInt64 is the magnitude of math.MinInt64, the one int64 value
// whose absolute value doesn't fit back in an int64.
const absMinInt64 = uint64(1) << 63

// maxInt64IntDigits is the longest possible decimal integer-digit count
// of an int64 magnitude (math.MaxInt64 has 19 digits).
const maxInt64IntDigits = 19

// FromInt converts a machine integer to a Number with scale 0.
func FromInt(i int64) Number {
	sign := Plus
	mag := uint64(i)
	if i < 0 {
		sign = Minus
		// i+1 never overflows, unlike -i when i == math.MinInt64; negate
		// that and carry the 1 back in as an unsigned add.
		mag = uint64(-(i + 1)) + 1
	}

	chunks := []uint64{mag % chunkBase, (mag / chunkBase) % chunkBase, mag / chunkBase / chunkBase}
	for len(chunks) > 1 && chunks[len(chunks)-1] == 0 {
		chunks = chunks[:len(chunks)-1]
	}

	return normalize(Number{
		sign:      sign,
		chunks:    chunks,
		intChunks: len(chunks),
	})
}

// Int64 returns n's integer part as a machine integer, discarding any
// fractional digits. ok is false if the integer part doesn't fit in an
// int64, in which case v is 0.
func (n Number) Int64() (v int64, ok bool) {
	if n.intDigits > maxInt64IntDigits {
		return 0, false
	}

	var mag uint64
	for i := n.intChunks - 1; i >= 0; i-- {
		mag = mag*chunkBase + n.intChunk(i)
	}

	if n.sign == Minus {
		if mag > absMinInt64 {
			return 0, false
		}
		if mag == absMinInt64 {
			return math.MinInt64, true
		}
		return -int64(mag), true
	}
	if mag > uint64(math.MaxInt64) {
		return 0, false
	}
	return int64(mag), true
}
