/*
 * decimal - Number representation and invariants.
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

// Sign distinguishes the two signs a Number may carry. Zero is always Plus.
type Sign bool

const (
	Plus  Sign = false
	Minus Sign = true
)

func (s Sign) flip() Sign { return !s }

func (s Sign) String() string {
	if s == Minus {
		return "-"
	}
	return "+"
}

// Number is an immutable arbitrary-precision signed decimal value
//
//	(-1)^sign * (integer_digits.fractional_digits)
//
// chunks is little-endian by chunk: chunks[0] is the lowest-order
// fractional chunk, and the highest index is the most significant
// integer chunk. len(chunks) == intChunks+fracChunks always holds.
// A Number returned by any exported function satisfies:
//
//  1. The top integer chunk is non-zero unless intChunks == 1.
//  2. Unused low digits in the lowest fractional chunk are zero.
//  3. sign == Plus whenever every chunk is zero.
//  4. intDigits equals the true decimal length of the integer part.
type Number struct {
	sign       Sign
	chunks     []uint64
	intChunks  int
	fracChunks int
	intDigits  int
	scale      int
}

// Scale returns the declared number of fractional decimal digits.
func (n Number) Scale() int { return n.scale }

// IntDigits returns the declared number of integer decimal digits.
func (n Number) IntDigits() int { return n.intDigits }

// Sign reports the sign of n. Zero is always Plus.
func (n Number) Sign() Sign { return n.sign }

// Chunks returns a copy of n's raw little-endian chunk words, deepest
// fractional chunk first. Intended for diagnostic dumps, not arithmetic.
func (n Number) Chunks() []uint64 { return n.cloneChunks() }

// Zero is the canonical additive identity: all chunks zero, one integer
// chunk, Plus sign. Zero is shared and must never be mutated.
var Zero = Number{
	sign:       Plus,
	chunks:     []uint64{0},
	intChunks:  1,
	fracChunks: 0,
	intDigits:  1,
	scale:      0,
}

// One is the canonical multiplicative identity. One is shared and must
// never be mutated.
var One = Number{
	sign:       Plus,
	chunks:     []uint64{1},
	intChunks:  1,
	fracChunks: 0,
	intDigits:  1,
	scale:      0,
}

// intTop returns the index of the most significant integer chunk.
func (n Number) intTop() int { return len(n.chunks) - 1 }

// intChunk returns the i-th integer chunk, 0 = least significant.
func (n Number) intChunk(i int) uint64 { return n.chunks[n.fracChunks+i] }

// fracChunk returns the i-th fractional chunk, 0 = least significant
// (furthest from the decimal point).
func (n Number) fracChunk(i int) uint64 { return n.chunks[i] }

// isZeroChunks reports whether every chunk is zero.
func (n Number) isZeroChunks() bool {
	for _, c := range n.chunks {
		if c != 0 {
			return false
		}
	}
	return true
}

// cloneChunks returns an owned copy of n's chunk buffer; callers that
// mutate scratch space must never write into a shared Number's chunks.
func (n Number) cloneChunks() []uint64 {
	out := make([]uint64, len(n.chunks))
	copy(out, n.chunks)
	return out
}

// normalize enforces the global invariants on n and returns the
// canonical form: it trims leading zero integer chunks (keeping at
// least one), recomputes intDigits from the resulting top chunk,
// re-zeroes the unused low digits of the lowest fractional chunk per
// the declared scale, and forces the sign to Plus when every chunk is
// zero. Every kernel calls this on its way out.
func normalize(n Number) Number {
	for n.intChunks > 1 && n.chunks[len(n.chunks)-1] == 0 {
		n.chunks = n.chunks[:len(n.chunks)-1]
		n.intChunks--
	}

	top := n.chunks[len(n.chunks)-1]
	n.intDigits = (n.intChunks-1)*chunkDigits + digitCount(top)

	if n.fracChunks > 0 {
		if r := n.scale % chunkDigits; r != 0 {
			n.chunks[0] = replaceLowerWithZeros(n.chunks[0], r)
		}
	}

	if n.isZeroChunks() {
		n.sign = Plus
	}

	return n
}

// truncationBoundary returns the index of the chunk holding the digit at
// position `scale` (the last kept chunk when truncating n to `scale`
// fractional digits) and how many of that chunk's upper digits are kept.
func (n Number) truncationBoundary(scale int) (lowIdx, keepDigits int) {
	if scale < 0 {
		scale = 0
	}
	if scale > n.scale {
		scale = n.scale
	}
	keepFrac := ceilDiv(scale, chunkDigits)
	lowIdx = n.fracChunks - keepFrac
	keepDigits = scale % chunkDigits
	if keepDigits == 0 {
		keepDigits = chunkDigits
	}
	return lowIdx, keepDigits
}

// IsZero reports whether n truncated at scale digits after the decimal
// point is zero.
func (n Number) IsZero(scale int) bool {
	lowIdx, keepDigits := n.truncationBoundary(scale)
	for i := len(n.chunks) - 1; i > lowIdx; i-- {
		if n.chunks[i] != 0 {
			return false
		}
	}
	return extractUpperDigits(n.chunks[lowIdx], keepDigits) == 0
}

// IsNearZero reports whether n, truncated at scale fractional digits,
// differs from zero by at most one unit in the last place at that
// scale. It is used by iterative callers (e.g. a division-based solver)
// to test convergence without allocating a fully rounded Number just to
// throw it away; see bcmath's nearzero.c.
func IsNearZero(n Number, scale int) bool {
	if scale > n.scale {
		// n has no digit at that scale's last place, so one unit there
		// is only reachable by n being zero.
		return n.IsZero(n.scale)
	}
	lowIdx, keepDigits := n.truncationBoundary(scale)
	for i := len(n.chunks) - 1; i > lowIdx; i-- {
		if n.chunks[i] != 0 {
			return false
		}
	}
	return extractUpperDigits(n.chunks[lowIdx], keepDigits) <= 1
}

// ceilDiv returns ceil(a/b) for non-negative a and positive b.
func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// withScale re-expresses n at exactly `scale` fractional digits: padding
// with zero chunks when scale grows, or dropping low-order chunks and
// masking the new protruded boundary when it shrinks. It never rounds;
// callers that need rounding go through Round instead.
func withScale(n Number, scale int) Number {
	if scale == n.scale {
		return n
	}

	newFrac := ceilDiv(scale, chunkDigits)
	if scale > n.scale {
		grown := make([]uint64, newFrac-n.fracChunks, newFrac-n.fracChunks+len(n.chunks))
		grown = append(grown, n.chunks...)
		n.chunks = grown
		n.fracChunks = newFrac
		n.scale = scale
		return normalize(n)
	}

	drop := n.fracChunks - newFrac
	kept := make([]uint64, len(n.chunks)-drop)
	copy(kept, n.chunks[drop:])
	n.chunks = kept
	n.fracChunks = newFrac
	n.scale = scale
	if r := scale % chunkDigits; len(n.chunks) > 0 {
		if r == 0 {
			r = chunkDigits
		}
		n.chunks[0] = replaceLowerWithZeros(n.chunks[0], r)
	}
	return normalize(n)
}
