/*
 * decimal - Addition and subtraction.
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

// addMagnitudes adds |a| and |b|, ignoring sign, aligning at the
// decimal point. The non-overlapping low fractional chunks of whichever
// operand has more of them are copied in untouched before the
// carry-propagating overlap walk begins.
func addMagnitudes(a, b Number) Number {
	maxFrac := a.fracChunks
	if b.fracChunks > maxFrac {
		maxFrac = b.fracChunks
	}
	maxInt := a.intChunks
	if b.intChunks > maxInt {
		maxInt = b.intChunks
	}

	out := make([]uint64, maxFrac+maxInt+1)
	var carry uint64

	for d := maxFrac; d >= 1; d-- {
		sum := fracChunkAtDistance(a, d) + fracChunkAtDistance(b, d) + carry
		if sum >= chunkBase {
			sum -= chunkBase
			carry = 1
		} else {
			carry = 0
		}
		out[maxFrac-d] = sum
	}
	for e := 1; e <= maxInt; e++ {
		sum := intChunkAtDistance(a, e) + intChunkAtDistance(b, e) + carry
		if sum >= chunkBase {
			sum -= chunkBase
			carry = 1
		} else {
			carry = 0
		}
		out[maxFrac+e-1] = sum
	}
	out[maxFrac+maxInt] = carry

	rawScale := a.scale
	if b.scale > rawScale {
		rawScale = b.scale
	}

	return normalize(Number{
		sign:       Plus,
		chunks:     out,
		intChunks:  maxInt + 1,
		fracChunks: maxFrac,
		scale:      rawScale,
	})
}

// subMagnitudes computes |larger| - |smaller|. The caller guarantees
// |larger| >= |smaller|; violating that yields a garbage borrow chain,
// not a panic.
func subMagnitudes(larger, smaller Number) Number {
	maxFrac := larger.fracChunks
	if smaller.fracChunks > maxFrac {
		maxFrac = smaller.fracChunks
	}
	maxInt := larger.intChunks

	out := make([]uint64, maxFrac+maxInt)
	var borrow uint64

	for d := maxFrac; d >= 1; d-- {
		lv, sv := fracChunkAtDistance(larger, d), fracChunkAtDistance(smaller, d)
		v := sv + borrow
		if v > lv {
			out[maxFrac-d] = chunkBase + lv - v
			borrow = 1
		} else {
			out[maxFrac-d] = lv - v
			borrow = 0
		}
	}
	for e := 1; e <= maxInt; e++ {
		lv, sv := intChunkAtDistance(larger, e), intChunkAtDistance(smaller, e)
		v := sv + borrow
		if v > lv {
			out[maxFrac+e-1] = chunkBase + lv - v
			borrow = 1
		} else {
			out[maxFrac+e-1] = lv - v
			borrow = 0
		}
	}

	rawScale := larger.scale
	if smaller.scale > rawScale {
		rawScale = smaller.scale
	}

	return normalize(Number{
		sign:       Plus,
		chunks:     out,
		intChunks:  maxInt,
		fracChunks: maxFrac,
		scale:      rawScale,
	})
}

// Add returns a+b re-expressed at exactly `scale` fractional digits.
// Equal signs add magnitudes and keep the sign; opposite signs subtract
// the smaller magnitude from the larger and keep the larger's sign
// (zero always comes out Plus). If scale is smaller than the sum's
// natural scale the excess fractional digits are truncated, not rounded;
// callers wanting a rounded result should call Round afterward.
func Add(a, b Number, scale int) (Number, error) {
	if scale < 0 {
		return Number{}, ErrArgumentOutOfRange
	}

	var sum Number
	if a.sign == b.sign {
		sum = addMagnitudes(a, b)
		sum.sign = a.sign
	} else {
		switch compareMagnitude(a, b, maxScaleOf(a, b)) {
		case 0:
			sum = Zero
		case 1:
			sum = subMagnitudes(a, b)
			sum.sign = a.sign
		default:
			sum = subMagnitudes(b, a)
			sum.sign = b.sign
		}
	}
	if sum.isZeroChunks() {
		sum.sign = Plus
	}
	return withScale(sum, scale), nil
}

// Sub returns a-b re-expressed at exactly `scale` fractional digits,
// truncating rather than rounding when scale is smaller than the
// difference's natural scale; see Add.
func Sub(a, b Number, scale int) (Number, error) {
	flipped := b
	flipped.sign = b.sign.flip()
	return Add(a, flipped, scale)
}

func maxScaleOf(a, b Number) int {
	if a.scale > b.scale {
		return a.scale
	}
	return b.scale
}
