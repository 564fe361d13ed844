/*
 * decimal - Expression evaluator tests.
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
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rcornwell/decimal/config"
	"github.com/rcornwell/decimal/decimal"
)

func newTestSession() *Session {
	return NewSession(config.Settings{Scale: 2, Round: decimal.RoundHalfUp, Trim: true})
}

func TestEvalArithmetic(t *testing.T) {
	cases := []struct {
		line string
		want string
	}{
		{"add 1.1 2.2", "3.3"},
		{"add 1.1 2.2 4", "3.3"},
		{"sub 5 1.5", "3.5"},
		{"mul 2 3 0", "6"},
		{"div 1 4 3", "0.25"},
		{"cmp 1 2", "-1"},
		{"round 2.345 2", "2.35"},
		{"floor -1.2", "-2"},
		{"ceil -1.2", "-1"},
	}
	for _, c := range cases {
		s := newTestSession()
		result, ok, err := s.Eval(strings.Fields(c.line))
		require.True(t, ok, c.line)
		require.NoError(t, err, c.line)
		require.Equal(t, c.want, result, c.line)
	}
}

func TestEvalUnknownOpFallsThrough(t *testing.T) {
	s := newTestSession()
	_, ok, err := s.Eval(strings.Fields("frobnicate 1 2"))
	require.False(t, ok)
	require.NoError(t, err)
}

func TestEvalWrongArity(t *testing.T) {
	s := newTestSession()
	_, ok, err := s.Eval(strings.Fields("add 1"))
	require.True(t, ok)
	require.Error(t, err)
}

func TestEvalBadOperand(t *testing.T) {
	s := newTestSession()
	_, ok, err := s.Eval(strings.Fields("add x 1"))
	require.True(t, ok)
	require.Error(t, err)
}

func TestEvalDivByZero(t *testing.T) {
	s := newTestSession()
	_, ok, err := s.Eval(strings.Fields("div 1 0"))
	require.True(t, ok)
	require.ErrorIs(t, err, decimal.ErrDivisionByZero)
}

func TestProcessLineCommands(t *testing.T) {
	s := newTestSession()
	var traced bool
	noop := func([]string, string, error, time.Duration) { traced = true }

	quit, result, err := ProcessLine("help", s, noop)
	require.NoError(t, err)
	require.False(t, quit)
	require.Contains(t, result, "add a b")
	require.False(t, traced)

	quit, _, err = ProcessLine("quit", s, noop)
	require.NoError(t, err)
	require.True(t, quit)
}

func TestProcessLineDebug(t *testing.T) {
	s := newTestSession()
	_, result, err := ProcessLine("debug 1.5", s, func([]string, string, error, time.Duration) {})
	require.NoError(t, err)
	require.Contains(t, result, "sign=+")
	require.Contains(t, result, "chunks=")
}

func TestProcessLineTracesArithmetic(t *testing.T) {
	s := newTestSession()
	var gotOp, gotResult string
	trace := func(fields []string, result string, err error, elapsed time.Duration) {
		gotOp = fields[0]
		gotResult = result
	}
	_, _, err := ProcessLine("add 1 2", s, trace)
	require.NoError(t, err)
	require.Equal(t, "add", gotOp)
	require.Equal(t, "3", gotResult)
}

func TestProcessLineUnknownCommand(t *testing.T) {
	s := newTestSession()
	_, _, err := ProcessLine("frobnicate", s, func([]string, string, error, time.Duration) {})
	require.Error(t, err)
}
