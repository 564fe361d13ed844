/*
 * decimal - Division.
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

// Div returns a/b truncated to `scale` fractional digits.
//
// A Number's chunk array, read without regard to where its decimal
// point falls, already holds the exact integer a.chunks == a *
// 10^(chunkDigits*a.fracChunks). Shifting the dividend left by
// chunkDigits*(b.fracChunks+ceil(scale/chunkDigits)-a.fracChunks)
// decimal digits (or, if that is negative, shifting the divisor instead)
// reduces the whole problem to one exact big-integer division whose
// quotient chunks, laid out with ceil(scale/chunkDigits) fractional
// chunks, are the answer; normalize then zeroes the digits beyond scale.
func Div(a, b Number, scale int) (Number, error) {
	if b.isZeroChunks() {
		return Number{}, ErrDivisionByZero
	}
	if scale < 0 {
		return Number{}, ErrArgumentOutOfRange
	}
	if a.isZeroChunks() {
		return withScale(Zero, scale), nil
	}

	sign := Plus
	if a.sign != b.sign {
		sign = Minus
	}

	if compareMagnitude(b, One, b.scale) == 0 {
		q := withScale(a, scale)
		q.sign = sign
		if q.isZeroChunks() {
			q.sign = Plus
		}
		return q, nil
	}

	shift := (b.fracChunks + ceilDiv(scale, chunkDigits) - a.fracChunks) * chunkDigits
	var num, den []uint64
	if shift >= 0 {
		num = shiftLeftDigits(a.chunks, shift)
		den = append([]uint64(nil), b.chunks...)
	} else {
		num = append([]uint64(nil), a.chunks...)
		den = shiftLeftDigits(b.chunks, -shift)
	}
	num = trimLeadingZeroChunks(num)
	den = trimLeadingZeroChunks(den)

	quotLen := len(num) - len(den) + 1
	var quot []uint64
	if quotLen <= 0 {
		q := withScale(Zero, scale)
		return q, nil
	}
	if len(den) == 1 {
		quot = divSingleChunk(num, den[0])
	} else {
		quot = divMultiChunk(num, den)
	}

	fracChunks := ceilDiv(scale, chunkDigits)
	for len(quot) < fracChunks {
		quot = append(quot, 0)
	}
	intChunks := len(quot) - fracChunks
	if intChunks < 1 {
		quot = append(quot, make([]uint64, 1-intChunks)...)
		intChunks = 1
	}

	result := normalize(Number{
		sign:       sign,
		chunks:     quot,
		intChunks:  intChunks,
		fracChunks: fracChunks,
		scale:      scale,
	})
	if result.isZeroChunks() {
		result.sign = Plus
	}
	return result, nil
}

// shiftLeftDigits returns chunks representing the same integer as
// chunks, multiplied by 10^k (k >= 0).
func shiftLeftDigits(chunks []uint64, k int) []uint64 {
	out := append([]uint64(nil), chunks...)
	if k <= 0 {
		return out
	}

	whole, rem := k/chunkDigits, k%chunkDigits
	if rem != 0 {
		mul := pow10[rem]
		var carry uint64
		for i := range out {
			v := out[i]*mul + carry
			out[i] = v % chunkBase
			carry = v / chunkBase
		}
		if carry != 0 {
			out = append(out, carry)
		}
	}
	if whole > 0 {
		out = append(make([]uint64, whole), out...)
	}
	return out
}

// trimLeadingZeroChunks drops zero-valued chunks from the top of chunks,
// keeping at least one.
func trimLeadingZeroChunks(chunks []uint64) []uint64 {
	for len(chunks) > 1 && chunks[len(chunks)-1] == 0 {
		chunks = chunks[:len(chunks)-1]
	}
	return chunks
}

// divSingleChunk divides the (little-endian) integer n by the one-chunk
// divisor d, returning the quotient chunks.
func divSingleChunk(n []uint64, d uint64) []uint64 {
	quot := make([]uint64, len(n))
	var rem uint64
	for i := len(n) - 1; i >= 0; i-- {
		cur := rem*chunkBase + n[i]
		quot[i] = cur / d
		rem = cur % d
	}
	return quot
}

// divMultiChunk performs restoring long division of n by d (both
// little-endian, len(d) >= 2) using a two-chunk (K+1 decimal digit)
// quotient-digit guess. n is consumed as scratch space.
func divMultiChunk(n, d []uint64) []uint64 {
	numTop := len(n) - 1
	denTop := len(d) - 1
	quotLen := len(n) - len(d) + 1
	quot := make([]uint64, quotLen)
	quotTop := quotLen - 1

	dTop := d[denTop]
	var dNext uint64
	if denTop >= 1 {
		dNext = d[denTop-1]
	}
	// Take the divisor's top K+1 significant digits: the whole top chunk
	// scaled up, plus enough upper digits of the next chunk to fill it.
	guessDigits := chunkDigits + 1 - digitCount(dTop)
	dHi := dTop*pow10[guessDigits] + extractUpperDigits(dNext, guessDigits)

	var divCarry uint64
	for i := 0; i < quotLen; i++ {
		curIdx := numTop - i
		nHighPart := n[curIdx] + divCarry*chunkBase

		if nHighPart < dTop {
			quot[quotTop-i] = 0
			divCarry = n[curIdx]
			n[curIdx] = 0
			continue
		}

		var nextVal uint64
		if curIdx-1 >= 0 {
			nextVal = n[curIdx-1]
		}
		nHi := nHighPart*pow10[guessDigits] + extractUpperDigits(nextVal, guessDigits)

		qGuess := nHi / dHi
		n[curIdx] += divCarry * chunkBase

		if qGuess == 0 {
			quot[quotTop-i] = 0
			divCarry = n[curIdx]
			n[curIdx] = 0
			continue
		}

		bottom := curIdx - len(d) + 1
		var borrow uint64
		for j := 0; j < len(d)-1; j++ {
			sub := d[j]*qGuess + borrow
			subLow := sub % chunkBase
			borrow = sub / chunkBase
			idx := bottom + j
			if n[idx] >= subLow {
				n[idx] -= subLow
			} else {
				n[idx] += chunkBase - subLow
				borrow++
			}
		}
		sub := d[len(d)-1]*qGuess + borrow
		topVal := int64(n[curIdx]) - int64(sub)

		// The guess can only overestimate; restore (add d back) until
		// the top slot is no longer negative. At most one pass is
		// expected with a two-chunk guess.
		for topVal < 0 {
			qGuess--
			var carry uint64
			for j := 0; j < len(d)-1; j++ {
				idx := bottom + j
				v := n[idx] + d[j] + carry
				n[idx] = v % chunkBase
				carry = v / chunkBase
			}
			topVal += int64(d[len(d)-1]) + int64(carry)
		}
		n[curIdx] = uint64(topVal)

		quot[quotTop-i] = qGuess
		divCarry = n[curIdx]
		n[curIdx] = 0
	}
	return quot
}
