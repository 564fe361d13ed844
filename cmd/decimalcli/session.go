/*
 * decimal - Interactive session state and expression evaluation.
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
	"strconv"

	"github.com/rcornwell/decimal/config"
	"github.com/rcornwell/decimal/decimal"
)

// arithOps lists every expression keyword accepted by Eval, and the
// number of Number operands each one takes (not counting the optional
// trailing scale).
var arithOps = map[string]int{
	"add": 2, "sub": 2, "mul": 2, "div": 2, "cmp": 2,
	"round": 1, "floor": 1, "ceil": 1,
}

// Session holds the settings a line of "<op> <a> <b> [scale]" input is
// evaluated against. Scale and Round default from CLI flags or a loaded
// config file; a line may override scale by appending one more field.
type Session struct {
	Scale int
	Round decimal.RoundingMode
	Trim  bool
}

// NewSession builds a Session from loaded configuration settings.
func NewSession(s config.Settings) *Session {
	return &Session{Scale: s.Scale, Round: s.Round, Trim: s.Trim}
}

// format renders n according to the session's trim setting.
func (s *Session) format(n decimal.Number) string {
	return n.Text(s.Trim)
}

// Eval evaluates one already-tokenized "<op> <a> <b> [scale]" line.
// fields[0] must be a known arithmetic op (see arithOps); ok reports
// whether it was, so the caller can fall through to command dispatch
// otherwise.
func (s *Session) Eval(fields []string) (result string, ok bool, err error) {
	if len(fields) == 0 {
		return "", false, nil
	}
	arity, known := arithOps[fields[0]]
	if !known {
		return "", false, nil
	}

	args := fields[1:]
	if len(args) < arity || len(args) > arity+1 {
		return "", true, fmt.Errorf("%s wants %d operand(s) and an optional scale", fields[0], arity)
	}

	scale := s.Scale
	if len(args) == arity+1 {
		n, err := strconv.Atoi(args[arity])
		if err != nil || n < 0 {
			return "", true, fmt.Errorf("invalid scale %q", args[arity])
		}
		scale = n
	}

	a, err := decimal.Parse(args[0])
	if err != nil {
		return "", true, fmt.Errorf("operand %q: %w", args[0], err)
	}

	var b decimal.Number
	if arity == 2 {
		b, err = decimal.Parse(args[1])
		if err != nil {
			return "", true, fmt.Errorf("operand %q: %w", args[1], err)
		}
	}

	result, err = s.apply(fields[0], a, b, scale)
	return result, true, err
}

func (s *Session) apply(op string, a, b decimal.Number, scale int) (string, error) {
	switch op {
	case "add":
		r, err := decimal.Add(a, b, scale)
		if err != nil {
			return "", err
		}
		return s.format(r), nil

	case "sub":
		r, err := decimal.Sub(a, b, scale)
		if err != nil {
			return "", err
		}
		return s.format(r), nil

	case "mul":
		return s.format(decimal.Mul(a, b, scale)), nil

	case "div":
		r, err := decimal.Div(a, b, scale)
		if err != nil {
			return "", err
		}
		return s.format(r), nil

	case "cmp":
		return strconv.Itoa(decimal.Compare(a, b, scale, true)), nil

	case "round":
		r, err := decimal.Round(a, scale, s.Round)
		if err != nil {
			return "", err
		}
		return s.format(r), nil

	case "floor":
		return s.format(decimal.Floor(a)), nil

	case "ceil":
		return s.format(decimal.Ceil(a)), nil

	default:
		return "", fmt.Errorf("unknown operator %q", op)
	}
}
