/*
 * decimal - REPL line dispatch: expressions first, meta-commands second.
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

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rcornwell/decimal/decimal"
	"github.com/rcornwell/decimal/util/hex"
)

type cmd struct {
	name    string
	min     int
	process func(args []string, s *Session) (quit bool, result string, err error)
}

// cmdList holds the non-arithmetic console commands, matched by the same
// unambiguous-abbreviation rule the teacher's operator console used.
var cmdList = []cmd{
	{name: "help", min: 1, process: cmdHelp},
	{name: "quit", min: 1, process: cmdQuit},
	{name: "exit", min: 4, process: cmdQuit},
	{name: "debug", min: 2, process: cmdDebug},
}

// matchCommand reports whether word is a prefix of match.name at least
// match.min characters long. Ambiguity across commands is rejected by
// ProcessLine, not here.
func matchCommand(match cmd, word string) bool {
	if len(word) < match.min || len(word) > len(match.name) {
		return false
	}
	return match.name[:len(word)] == word
}

func matchList(word string) []cmd {
	if word == "" {
		return nil
	}
	var out []cmd
	for _, c := range cmdList {
		if matchCommand(c, word) {
			out = append(out, c)
		}
	}
	return out
}

// ProcessLine evaluates one line of REPL or batch input: first as an
// "<op> <a> <b> [scale]" arithmetic expression, then (if the leading
// word isn't a known op) as a console command. trace receives every
// arithmetic evaluation's fields, result or error, and
// elapsed time, matching the spec's operation-trace contract.
func ProcessLine(raw string, s *Session, trace func(fields []string, result string, err error, elapsed time.Duration)) (quit bool, result string, err error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return false, "", nil
	}

	start := time.Now()
	result, handled, err := s.Eval(fields)
	if handled {
		trace(fields, result, err, time.Since(start))
		return false, result, err
	}

	match := matchList(fields[0])
	switch len(match) {
	case 0:
		return false, "", fmt.Errorf("unknown command: %s", fields[0])
	case 1:
		return match[0].process(fields[1:], s)
	default:
		return false, "", fmt.Errorf("ambiguous command: %s", fields[0])
	}
}

// cmdDebug parses its argument as a Number and dumps its raw chunk words
// in hex, the diagnostic view a developer reaches for when a rounding or
// scale result looks wrong.
func cmdDebug(args []string, _ *Session) (bool, string, error) {
	if len(args) != 1 {
		return false, "", fmt.Errorf("debug wants exactly one operand")
	}
	n, err := decimal.Parse(args[0])
	if err != nil {
		return false, "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "sign=%s scale=%d intDigits=%d chunks=", n.Sign(), n.Scale(), n.IntDigits())
	hex.FormatWords(&b, n.Chunks())
	return false, strings.TrimRight(b.String(), " "), nil
}

func cmdHelp([]string, *Session) (bool, string, error) {
	return false, strings.Join([]string{
		"add a b [scale]    sub a b [scale]    mul a b [scale]    div a b [scale]",
		"cmp a b [scale]    round a [scale]    floor a            ceil a",
		"debug a            show the raw chunk representation of a Number",
		"quit               leave the session",
	}, "\n"), nil
}

func cmdQuit([]string, *Session) (bool, string, error) {
	return true, "", nil
}
