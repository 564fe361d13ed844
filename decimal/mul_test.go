/*
 * decimal - Multiplication tests.
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

import "testing"

type mulCase struct {
	a, b     string
	scaleCap int
	want     string
}

var mulCases = []mulCase{
	{"2", "3", 0, "6"},
	{"0.1", "0.2", 2, "0.02"},
	{"-2", "3", 0, "-6"},
	{"2", "-3", 0, "-6"},
	{"-2", "-3", 0, "6"},
	{"0", "12345", 0, "0"},
	{"99999999", "99999999", 0, "9999999800000001"},
	{"123456789012345678", "2", 0, "246913578024691356"},
	{"1.5", "2", 1, "3.0"},
	{"1.23456789", "1", 2, "1.23456789"},
	{"2", "0.5", 0, "1.0"},
	{"1.1", "1.1", 2, "1.21"},
	{"99999999.99999999", "99999999.99999999", 16, "9999999999999998.0000000000000001"},
}

func TestMul(t *testing.T) {
	for _, c := range mulCases {
		a, err := Parse(c.a)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.a, err)
		}
		b, err := Parse(c.b)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.b, err)
		}
		got := Mul(a, b, c.scaleCap)
		if got.String() != c.want {
			t.Errorf("Mul(%q, %q, %d) = %q, want %q", c.a, c.b, c.scaleCap, got.String(), c.want)
		}
	}
}

func TestMulScaleCapNeverDropsOperandScale(t *testing.T) {
	a, _ := Parse("1.23")
	b, _ := Parse("1")
	got := Mul(a, b, 0)
	if got.String() != "1.23" {
		t.Errorf("Mul(1.23, 1, scaleCap=0) = %q, want %q (operand scale must survive)", got.String(), "1.23")
	}
}

func TestMulZeroAlwaysPlus(t *testing.T) {
	a, _ := Parse("-5")
	b, _ := Parse("0")
	got := Mul(a, b, 0)
	if got.Sign() != Plus {
		t.Errorf("Mul(-5, 0).Sign() = %v, want Plus", got.Sign())
	}
}
