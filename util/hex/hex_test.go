/*
 * decimal - Hex formatting tests.
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

package hex

import (
	"strings"
	"testing"
)

func TestFormatWords(t *testing.T) {
	var b strings.Builder
	FormatWords(&b, []uint64{0x123456789abcdef0, 0})
	got := b.String()
	want := "123456789ABCDEF0 0000000000000000 "
	if got != want {
		t.Errorf("FormatWords = %q, want %q", got, want)
	}
}

func TestFormatByte(t *testing.T) {
	var b strings.Builder
	FormatByte(&b, 0xa5)
	if got := b.String(); got != "A5" {
		t.Errorf("FormatByte = %q, want %q", got, "A5")
	}
}

func TestFormatDigit(t *testing.T) {
	var b strings.Builder
	FormatDigit(&b, 0x1f)
	if got := b.String(); got != "F" {
		t.Errorf("FormatDigit = %q, want %q", got, "F")
	}
}
