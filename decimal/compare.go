/*
 * decimal - Magnitude and signed comparison.
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

// Compare returns -1, 0, or 1 for a < b, a == b, a > b, considering only
// the first `scale` fractional digits of each operand. If useSign is
// false the comparison ignores sign and compares magnitudes only.
//
// The comparison runs in three stages, mirroring bcmath's
// _bc_abs_do_compare: integer length first (a cheap short-circuit),
// then a most-significant-to-least-significant chunk walk over the
// region both operands share, then a scan of whichever operand has
// extra fractional chunks beyond the shorter one's scale.
func Compare(a, b Number, scale int, useSign bool) int {
	if scale < 0 {
		scale = 0
	}

	if useSign && a.sign != b.sign {
		if a.IsZero(scale) && b.IsZero(scale) {
			return 0
		}
		if a.sign == Minus {
			return -1
		}
		return 1
	}

	mag := compareMagnitude(a, b, scale)
	if useSign && a.sign == Minus {
		return -mag
	}
	return mag
}

// intChunkAtDistance returns the integer chunk e positions to the left
// of the decimal point (e == 1 is the units chunk), or 0 if n has fewer
// than e integer chunks.
func intChunkAtDistance(n Number, e int) uint64 {
	if e > n.intChunks {
		return 0
	}
	return n.chunks[n.fracChunks+e-1]
}

// fracChunkAtDistance returns the fractional chunk d positions to the
// right of the decimal point (d == 1 is the chunk adjacent to it), or 0
// if n has fewer than d fractional chunks.
func fracChunkAtDistance(n Number, d int) uint64 {
	if d > n.fracChunks {
		return 0
	}
	return n.chunks[n.fracChunks-d]
}

// compareMagnitude compares |a| and |b| truncated at scale fractional
// digits, ignoring sign entirely. Comparison walks by distance from the
// decimal point rather than raw chunk index, since a and b may carry a
// different number of fractional chunks even when equal-length in
// integer digits.
func compareMagnitude(a, b Number, scale int) int {
	if a.intDigits != b.intDigits {
		if a.intDigits < b.intDigits {
			return -1
		}
		return 1
	}

	// intDigits equal implies intChunks equal; walk integer chunks from
	// the most significant down.
	for e := a.intChunks; e >= 1; e-- {
		av, bv := intChunkAtDistance(a, e), intChunkAtDistance(b, e)
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}

	if scale < 0 {
		scale = 0
	}
	effA, effB := scale, scale
	if effA > a.scale {
		effA = a.scale
	}
	if effB > b.scale {
		effB = b.scale
	}
	common := effA
	if effB < common {
		common = effB
	}

	keep := ceilDiv(common, chunkDigits)
	r := common % chunkDigits

	for d := 1; d <= keep; d++ {
		av := fracChunkAtDistance(a, d)
		bv := fracChunkAtDistance(b, d)
		if d == keep && r != 0 {
			av = extractUpperDigits(av, r)
			bv = extractUpperDigits(bv, r)
		}
		if av != bv {
			if av < bv {
				return -1
			}
			return 1
		}
	}

	// Equal through the shared cutoff; whichever operand still has
	// fractional digits beyond it decides the comparison.
	for offset := common + 1; offset <= effA; offset++ {
		if digitAt(a, offset) != 0 {
			return 1
		}
	}
	for offset := common + 1; offset <= effB; offset++ {
		if digitAt(b, offset) != 0 {
			return -1
		}
	}
	return 0
}
