/*
 * decimal - Multiplication.
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

import "math/bits"

// flushEvery bounds how many chunk-products may accumulate into one
// uint64 slot before it risks overflow: each product is at most
// (chunkBase-1)^2, so floor((2^64-1) / (chunkBase-1)^2) additions are
// always safe.
var flushEvery = int(^uint64(0) / (chunkBase - 1) / (chunkBase - 1))

// Mul returns a*b. The result's scale is a.scale+b.scale unless that
// exceeds scaleCap, in which case the larger of scaleCap and the two
// operands' own scales wins — Mul never loses precision a caller didn't
// ask to cap. Mul never errors: there is no scale cap value that makes
// the operation invalid.
func Mul(a, b Number, scaleCap int) Number {
	var product Number
	if len(a.chunks) == 1 && len(b.chunks) == 1 {
		product = mulSingleChunk(a, b)
	} else {
		product = mulSchoolbook(a, b)
	}

	product.sign = Plus
	if a.sign != b.sign {
		product.sign = Minus
	}
	if product.isZeroChunks() {
		product.sign = Plus
	}

	keep := scaleCap
	if a.scale > keep {
		keep = a.scale
	}
	if b.scale > keep {
		keep = b.scale
	}
	if product.scale > keep {
		product = withScale(product, keep)
	}
	return product
}

// mulSingleChunk multiplies two one-chunk operands via a double-width
// product split across (at most) two output chunks.
func mulSingleChunk(a, b Number) Number {
	hi, lo := bits.Mul64(a.chunks[0], b.chunks[0])
	_ = hi // always 0: both factors are < chunkBase, so the product < chunkBase^2 fits in lo

	chunks := []uint64{lo % chunkBase, lo / chunkBase}
	return normalize(Number{
		sign:       Plus,
		chunks:     chunks,
		intChunks:  2,
		fracChunks: a.fracChunks + b.fracChunks,
		scale:      a.scale + b.scale,
	})
}

// mulSchoolbook multiplies two multi-chunk operands: out[i+j] accumulates
// a[i]*b[j] for every pair, with a carry-propagation pass flushed every
// flushEvery outer iterations (and once more after the loop) so no
// accumulator slot overflows its uint64 before being reduced mod
// chunkBase.
func mulSchoolbook(a, b Number) Number {
	out := make([]uint64, len(a.chunks)+len(b.chunks))

	sinceFlush := 0
	for i := range a.chunks {
		for j := range b.chunks {
			_, lo := bits.Mul64(a.chunks[i], b.chunks[j])
			out[i+j] += lo
		}
		sinceFlush++
		if sinceFlush == flushEvery {
			flushCarries(out)
			sinceFlush = 0
		}
	}
	flushCarries(out)

	return normalize(Number{
		sign:       Plus,
		chunks:     out,
		intChunks:  a.intChunks + b.intChunks,
		fracChunks: a.fracChunks + b.fracChunks,
		scale:      a.scale + b.scale,
	})
}

// flushCarries reduces every slot of out modulo chunkBase, propagating
// the overflow into the next (more significant) slot.
func flushCarries(out []uint64) {
	var carry uint64
	for i := range out {
		v := out[i] + carry
		out[i] = v % chunkBase
		carry = v / chunkBase
	}
}
