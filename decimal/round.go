/*
 * decimal - Rounding.
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

// RoundingMode selects the tie-breaking and directional behavior of Round.
type RoundingMode int

const (
	RoundHalfUp RoundingMode = iota
	RoundHalfDown
	RoundHalfEven
	RoundHalfOdd
	RoundCeiling
	RoundFloor
	RoundTowardZero
	RoundAwayFromZero
)

var roundingModeNames = [...]string{
	"HalfUp", "HalfDown", "HalfEven", "HalfOdd",
	"Ceiling", "Floor", "TowardZero", "AwayFromZero",
}

func (m RoundingMode) String() string {
	if m < 0 || int(m) >= len(roundingModeNames) {
		return "Unknown"
	}
	return roundingModeNames[m]
}

// ParseRoundingMode maps a mode name (case-sensitive, matching String) to
// its RoundingMode, for config and CLI directives.
func ParseRoundingMode(name string) (RoundingMode, bool) {
	for i, n := range roundingModeNames {
		if n == name {
			return RoundingMode(i), true
		}
	}
	return 0, false
}

// digitAt returns the decimal digit of n at offset positions from the
// decimal point: offset > 0 counts fractional digits (1 = tenths),
// offset <= 0 counts integer digits (0 = units, -1 = tens, ...). A
// position beyond what n actually stores reads as 0.
func digitAt(n Number, offset int) int {
	if offset > 0 {
		chunkIdx := n.fracChunks - 1 - (offset-1)/chunkDigits
		if chunkIdx < 0 {
			return 0
		}
		digitPos := chunkDigits - 1 - (offset-1)%chunkDigits
		return int((n.chunks[chunkIdx] / pow10[digitPos]) % 10)
	}
	intPos := -offset
	chunkIdx := n.fracChunks + intPos/chunkDigits
	if chunkIdx >= len(n.chunks) {
		return 0
	}
	digitPos := intPos % chunkDigits
	return int((n.chunks[chunkIdx] / pow10[digitPos]) % 10)
}

// digitsBelowZero reports whether every digit of n strictly to the right
// of `offset` (smaller place value) is zero.
func digitsBelowZero(n Number, offset int) bool {
	if offset >= 0 {
		if offset == 0 {
			for i := 0; i < n.fracChunks; i++ {
				if n.chunks[i] != 0 {
					return false
				}
			}
			return true
		}
		chunkIdx := n.fracChunks - 1 - (offset-1)/chunkDigits
		if chunkIdx < 0 {
			return true
		}
		digitPos := chunkDigits - 1 - (offset-1)%chunkDigits
		if extractLowerDigits(n.chunks[chunkIdx], digitPos) != 0 {
			return false
		}
		for i := 0; i < chunkIdx; i++ {
			if n.chunks[i] != 0 {
				return false
			}
		}
		return true
	}
	for i := 0; i < n.fracChunks; i++ {
		if n.chunks[i] != 0 {
			return false
		}
	}
	intPos := -offset
	idx := n.fracChunks
	for intPos > 0 && idx < len(n.chunks) {
		if intPos >= chunkDigits {
			if n.chunks[idx] != 0 {
				return false
			}
			intPos -= chunkDigits
		} else {
			if extractLowerDigits(n.chunks[idx], intPos) != 0 {
				return false
			}
			intPos = 0
		}
		idx++
	}
	return true
}

// decideRoundUp applies §4.6's decision procedure: half-modes compare
// checkVal against 5, directed modes just ask whether anything below the
// cut is nonzero, and HalfEven/HalfOdd break an exact tie on the parity
// of the last kept digit.
func decideRoundUp(mode RoundingMode, sign Sign, checkVal int, lowerZero bool, lastKept int) bool {
	hasRemainder := !(checkVal == 0 && lowerZero)

	switch mode {
	case RoundHalfUp:
		return checkVal >= 5
	case RoundHalfDown:
		if checkVal != 5 {
			return checkVal > 5
		}
		return !lowerZero
	case RoundHalfEven:
		if checkVal != 5 {
			return checkVal > 5
		}
		if !lowerZero {
			return true
		}
		return lastKept%2 != 0
	case RoundHalfOdd:
		if checkVal != 5 {
			return checkVal > 5
		}
		if !lowerZero {
			return true
		}
		return lastKept%2 == 0
	case RoundCeiling:
		if sign == Minus {
			return false
		}
		return hasRemainder
	case RoundFloor:
		if sign != Minus {
			return false
		}
		return hasRemainder
	case RoundTowardZero:
		return false
	case RoundAwayFromZero:
		return hasRemainder
	}
	return false
}

// truncateToPrecision drops every digit of n beyond `precision` without
// rounding. Negative precision also zeroes the low |precision| integer
// digits, reducing scale to 0.
func truncateToPrecision(n Number, precision int) Number {
	if precision >= 0 {
		return withScale(n, precision)
	}

	m := withScale(n, 0)
	chunks := m.cloneChunks()
	intZero := -precision
	idx := 0
	for intZero > 0 && idx < len(chunks) {
		if intZero >= chunkDigits {
			chunks[idx] = 0
			intZero -= chunkDigits
		} else {
			chunks[idx] = replaceLowerWithZeros(chunks[idx], chunkDigits-intZero)
			intZero = 0
		}
		idx++
	}
	m.chunks = chunks
	return normalize(m)
}

// oneAtOffset returns the Number 10^(-offset): a single 1 digit placed
// at the same position digitAt(_, offset) reads, everything else zero.
func oneAtOffset(offset int) Number {
	if offset > 0 {
		frac := ceilDiv(offset, chunkDigits)
		chunks := make([]uint64, frac+1)
		chunkIdx := frac - 1 - (offset-1)/chunkDigits
		digitPos := chunkDigits - 1 - (offset-1)%chunkDigits
		chunks[chunkIdx] = pow10[digitPos]
		return normalize(Number{
			sign: Plus, chunks: chunks, intChunks: 1, fracChunks: frac, scale: offset,
		})
	}
	intPos := -offset
	chunkIdx := intPos / chunkDigits
	chunks := make([]uint64, chunkIdx+1)
	chunks[chunkIdx] = pow10[intPos%chunkDigits]
	return normalize(Number{
		sign: Plus, chunks: chunks, intChunks: chunkIdx + 1, fracChunks: 0, scale: 0,
	})
}

// Round re-expresses n at `precision` fractional digits (negative values
// round into the integer part, to tens/hundreds/...), applying mode's
// decision procedure to the digit immediately dropped. Round never
// errors: every signed precision is a meaningful rounding position.
func Round(n Number, precision int, mode RoundingMode) (Number, error) {
	if precision >= n.scale {
		return withScale(n, precision), nil
	}

	cutOffset := precision + 1
	checkVal := digitAt(n, cutOffset)
	lowerZero := digitsBelowZero(n, cutOffset)
	lastKept := digitAt(n, precision)

	result := truncateToPrecision(n, precision)
	if decideRoundUp(mode, n.sign, checkVal, lowerZero, lastKept) {
		result = addMagnitudes(result, oneAtOffset(precision))
	}
	result.sign = n.sign
	if result.isZeroChunks() {
		result.sign = Plus
	}
	return result, nil
}

// Floor returns n rounded toward negative infinity to an integer.
func Floor(n Number) Number {
	r, _ := Round(n, 0, RoundFloor)
	return r
}

// Ceil returns n rounded toward positive infinity to an integer.
func Ceil(n Number) Number {
	r, _ := Round(n, 0, RoundCeiling)
	return r
}
