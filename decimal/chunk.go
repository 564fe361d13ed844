/*
 * decimal - Packed decimal chunk primitives.
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

// Package decimal implements exact, arbitrary-precision base-10 arithmetic
// over packed decimal chunks: groups of chunkDigits decimal digits held
// inside a uint64 word. A Number is stored little-endian by chunk: index 0
// holds the lowest-order fractional chunk, higher indices hold more
// significant chunks.
package decimal

import "encoding/binary"

// chunkDigits is the number of decimal digits packed into one chunk word.
// Chosen once at build time; 8 digits per chunk on 64-bit platforms lets a
// chunk-chunk product (up to 10^16) still fit in a uint64 accumulator with
// room for deferred carries.
const (
	chunkDigits = 8
	chunkBase   = 100000000 // 10^chunkDigits
)

// pow10 holds 10^0 .. 10^chunkDigits for the protruded-chunk helpers below.
var pow10 = [chunkDigits + 1]uint64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
}

// digitCount returns the number of decimal digits in v, treating 0 as
// having a single digit (the canonical-zero top chunk).
func digitCount(v uint64) int {
	if v == 0 {
		return 1
	}
	n := 0
	for v > 0 {
		n++
		v /= 10
	}
	return n
}

// extractUpperDigits returns the value held in the upper k decimal digit
// positions of a chunk, e.g. extractUpperDigits(12345678, 3) == 123.
func extractUpperDigits(chunk uint64, k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k >= chunkDigits {
		return chunk
	}
	return chunk / pow10[chunkDigits-k]
}

// replaceLowerWithZeros zeroes the low chunkDigits-k decimal digit
// positions of chunk, leaving the upper k digits in place (not shifted).
// This is the single place that knows how to enforce the "protruded
// chunk" invariant: the lowest fractional chunk of a Number whose scale
// is not a multiple of chunkDigits carries its data in the high digits,
// with the low digits required to be zero.
func replaceLowerWithZeros(chunk uint64, k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k >= chunkDigits {
		return chunk
	}
	d := pow10[chunkDigits-k]
	return (chunk / d) * d
}

// extractLowerDigits returns the value held in the low k decimal digit
// positions of a chunk.
func extractLowerDigits(chunk uint64, k int) uint64 {
	if k <= 0 {
		return 0
	}
	if k >= chunkDigits {
		return chunk
	}
	return chunk % pow10[k]
}

// swarDigits holds 8 decimal digit values (0-9), one per byte, in the
// order they appear when reading the source string left to right:
// digits[0] is the most significant of the 8, digits[7] the least.
type swarDigits [chunkDigits]byte

// parseChunkSWAR converts 8 ASCII decimal digits into a single packed
// chunk value using the mask-mul-shift pipeline: three pair-merge passes
// combine adjacent digits into base-100, then base-10000, then
// base-10^8 lanes. This is the scalar reference implementation of the
// SWAR pipeline; any SIMD acceleration must reproduce the identical
// chunk word for every input.
func parseChunkSWAR(digits swarDigits) uint64 {
	w := binary.LittleEndian.Uint64(digits[:])

	// Pair-merge: combine digit pairs into four base-100 lanes.
	w = ((w & 0x0f000f000f000f00) >> 8) + (w&0x000f000f000f000f)*10
	// Pair-merge: combine base-100 pairs into two base-10000 lanes.
	w = ((w & 0x00ff000000ff0000) >> 16) + (w&0x000000ff000000ff)*100
	// Pair-merge: combine base-10000 pair into one base-10^8 lane.
	w = ((w & 0x0000ffff00000000) >> 32) + (w&0x000000000000ffff)*10000

	return w
}

// twoDigitLUT maps a value in [0, 100) to its two ASCII decimal digits,
// used to emit a chunk two digits at a time.
var twoDigitLUT = func() [100][2]byte {
	var t [100][2]byte
	for i := 0; i < 100; i++ {
		t[i][0] = byte('0' + i/10)
		t[i][1] = byte('0' + i%10)
	}
	return t
}()

// appendChunkDigits appends the decimal digits of chunk to buf, emitting
// exactly `digits` characters (1..chunkDigits), most significant first,
// zero-padded on the left. Pairs are emitted via the two-digit LUT,
// matching the teacher's single-digit hex LUT idiom generalized to pairs.
func appendChunkDigits(buf []byte, chunk uint64, digits int) []byte {
	var tmp [chunkDigits]byte
	pos := chunkDigits
	for chunk > 0 {
		pos -= 2
		pair := twoDigitLUT[chunk%100]
		tmp[pos], tmp[pos+1] = pair[0], pair[1]
		chunk /= 100
	}
	for pos > 0 {
		pos--
		tmp[pos] = '0'
	}
	return append(buf, tmp[chunkDigits-digits:]...)
}
