/*
 * decimal - Magnitude and signed comparison tests.
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

type compareCase struct {
	a, b    string
	scale   int
	useSign bool
	want    int
}

var compareCases = []compareCase{
	{"1", "1", 0, true, 0},
	{"1", "2", 0, true, -1},
	{"2", "1", 0, true, 1},
	{"-1", "1", 0, true, -1},
	{"1", "-1", 0, true, 1},
	{"-5", "-3", 0, true, -1},
	{"-3", "-5", 0, true, 1},
	{"0", "-0", 0, true, 0},
	{"-1", "1", 0, false, 0},
	{"100", "99", 0, true, 1},
	{"99", "100", 0, true, -1},
	{"1.23", "1.230", 3, true, 0},
	{"1.234", "1.235", 3, true, -1},
	{"1.2349", "1.235", 3, true, -1},
	{"0.1", "0.10000001", 8, true, -1},
	{"123456789012345678", "123456789012345679", 0, true, -1},
	{"-1.5", "-1.4", 2, true, -1},
}

func TestCompare(t *testing.T) {
	for _, c := range compareCases {
		a, err := Parse(c.a)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.a, err)
		}
		b, err := Parse(c.b)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c.b, err)
		}
		if got := Compare(a, b, c.scale, c.useSign); got != c.want {
			t.Errorf("Compare(%q, %q, %d, %v) = %d, want %d", c.a, c.b, c.scale, c.useSign, got, c.want)
		}
	}
}

func TestCompareAntisymmetric(t *testing.T) {
	for _, c := range compareCases {
		a, _ := Parse(c.a)
		b, _ := Parse(c.b)
		got := Compare(b, a, c.scale, c.useSign)
		if got != -c.want {
			t.Errorf("Compare(%q, %q) = %d, want %d (antisymmetric to Compare(%q, %q) = %d)",
				c.b, c.a, got, -c.want, c.a, c.b, c.want)
		}
	}
}
