/*
 * decimal - Machine integer conversion tests.
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

import (
	"math"
	"testing"
)

func TestFromIntRoundTrip(t *testing.T) {
	values := []int64{
		0, 1, -1, 42, -42,
		100000000, -100000000,
		123456789012345, -123456789012345,
		math.MaxInt64, math.MinInt64, math.MinInt64 + 1,
	}
	for _, v := range values {
		n := FromInt(v)
		if n.Scale() != 0 {
			t.Errorf("FromInt(%d).Scale() = %d, want 0", v, n.Scale())
		}
		got, ok := n.Int64()
		if !ok {
			t.Errorf("FromInt(%d).Int64() ok = false, want true", v)
		}
		if got != v {
			t.Errorf("FromInt(%d).Int64() = %d, want %d", v, got, v)
		}
	}
}

func TestFromIntZeroSign(t *testing.T) {
	if FromInt(0).Sign() != Plus {
		t.Errorf("FromInt(0).Sign() = %v, want Plus", FromInt(0).Sign())
	}
}

func TestFromIntString(t *testing.T) {
	cases := []struct {
		v    int64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{-42, "-42"},
		{math.MaxInt64, "9223372036854775807"},
		{math.MinInt64, "-9223372036854775808"},
	}
	for _, c := range cases {
		if got := FromInt(c.v).String(); got != c.want {
			t.Errorf("FromInt(%d).String() = %q, want %q", c.v, got, c.want)
		}
	}
}

func TestInt64TruncatesFraction(t *testing.T) {
	n, _ := Parse("123.999")
	v, ok := n.Int64()
	if !ok || v != 123 {
		t.Errorf("Int64(123.999) = (%d, %v), want (123, true)", v, ok)
	}

	neg, _ := Parse("-123.999")
	v, ok = neg.Int64()
	if !ok || v != -123 {
		t.Errorf("Int64(-123.999) = (%d, %v), want (-123, true)", v, ok)
	}
}

func TestInt64Overflow(t *testing.T) {
	big, _ := Parse("99999999999999999999")
	v, ok := big.Int64()
	if ok || v != 0 {
		t.Errorf("Int64(99999999999999999999) = (%d, %v), want (0, false)", v, ok)
	}

	tooBig, _ := Parse("9223372036854775808") // MaxInt64 + 1
	v, ok = tooBig.Int64()
	if ok || v != 0 {
		t.Errorf("Int64(MaxInt64+1) = (%d, %v), want (0, false)", v, ok)
	}

	tooNeg, _ := Parse("-9223372036854775809") // MinInt64 - 1
	v, ok = tooNeg.Int64()
	if ok || v != 0 {
		t.Errorf("Int64(MinInt64-1) = (%d, %v), want (0, false)", v, ok)
	}
}

func TestInt64MinBoundary(t *testing.T) {
	n, _ := Parse("-9223372036854775808")
	v, ok := n.Int64()
	if !ok || v != math.MinInt64 {
		t.Errorf("Int64(MinInt64) = (%d, %v), want (%d, true)", v, ok, int64(math.MinInt64))
	}
}
