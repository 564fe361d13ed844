/*
 * decimal - Packed decimal chunk primitives tests.
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

func TestDigitCount(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{5, 1},
		{9, 1},
		{10, 2},
		{99, 2},
		{100, 3},
		{12345678, 8},
		{1, 1},
	}
	for _, c := range cases {
		if got := digitCount(c.v); got != c.want {
			t.Errorf("digitCount(%d) = %d, want %d", c.v, got, c.want)
		}
	}
}

func TestExtractUpperDigits(t *testing.T) {
	cases := []struct {
		chunk uint64
		k     int
		want  uint64
	}{
		{12345678, 3, 123},
		{12345678, 8, 12345678},
		{12345678, 0, 0},
		{400000, 2, 0},
		{45000000, 2, 45},
	}
	for _, c := range cases {
		if got := extractUpperDigits(c.chunk, c.k); got != c.want {
			t.Errorf("extractUpperDigits(%d, %d) = %d, want %d", c.chunk, c.k, got, c.want)
		}
	}
}

func TestReplaceLowerWithZeros(t *testing.T) {
	cases := []struct {
		chunk uint64
		k     int
		want  uint64
	}{
		{12345678, 3, 12300000},
		{12345678, 8, 12345678},
		{12345678, 0, 0},
		{45000000, 2, 45000000},
	}
	for _, c := range cases {
		if got := replaceLowerWithZeros(c.chunk, c.k); got != c.want {
			t.Errorf("replaceLowerWithZeros(%d, %d) = %d, want %d", c.chunk, c.k, got, c.want)
		}
	}
}

func TestExtractLowerDigits(t *testing.T) {
	cases := []struct {
		chunk uint64
		k     int
		want  uint64
	}{
		{12345678, 3, 678},
		{12345678, 8, 12345678},
		{12345678, 0, 0},
	}
	for _, c := range cases {
		if got := extractLowerDigits(c.chunk, c.k); got != c.want {
			t.Errorf("extractLowerDigits(%d, %d) = %d, want %d", c.chunk, c.k, got, c.want)
		}
	}
}

// TestParseChunkSWARRoundTrip checks parseChunkSWAR against appendChunkDigits
// for every chunk value produced by parseDigitGroup over representative strings.
func TestParseChunkSWARRoundTrip(t *testing.T) {
	inputs := []string{
		"00000000", "00000001", "12345678", "99999999",
		"10000000", "00000010", "90000001", "50505050",
	}
	for _, s := range inputs {
		v := parseDigitGroup(s)
		var buf []byte
		buf = appendChunkDigits(buf, v, chunkDigits)
		if string(buf) != s {
			t.Errorf("parseDigitGroup(%q) -> %d -> appendChunkDigits = %q, want %q", s, v, buf, s)
		}
	}
}

func TestAppendChunkDigitsPartial(t *testing.T) {
	cases := []struct {
		chunk  uint64
		digits int
		want   string
	}{
		{123, 3, "123"},
		{123, 5, "00123"},
		{0, 1, "0"},
		{7, 1, "7"},
	}
	for _, c := range cases {
		got := string(appendChunkDigits(nil, c.chunk, c.digits))
		if got != c.want {
			t.Errorf("appendChunkDigits(%d, %d) = %q, want %q", c.chunk, c.digits, got, c.want)
		}
	}
}
