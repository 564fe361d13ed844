/*
 * decimal - Configuration file parser
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

// Package config loads the three settings a decimal session cares about
// from a small line-directive file: the default scale, the default
// rounding mode, and whether trailing fractional zeros are trimmed on
// display.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/rcornwell/decimal/decimal"
)

/* Configuration file format:
 *
 * '#' indicates comment, rest of line is ignored.
 * <line> := 'SCALE' <whitespace> <number> |
 *           'ROUND' <whitespace> <string> |
 *           'TRIM' <whitespace> <string>
 */

// Settings holds the values a configuration file may set. The zero value
// differs from Default, which also turns Trim on.
type Settings struct {
	Scale int
	Round decimal.RoundingMode
	Trim  bool
}

// Default returns the settings a session starts with absent a config file.
func Default() Settings {
	return Settings{Scale: 0, Round: decimal.RoundHalfUp, Trim: true}
}

var lineNumber int

// LoadConfig reads directives from name into an initial Settings value,
// returning the settings after applying every directive found.
func LoadConfig(name string) (Settings, error) {
	s := Default()

	file, err := os.Open(name)
	if err != nil {
		return s, err
	}
	defer file.Close()

	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		raw, err := reader.ReadString('\n')
		lineNumber++
		if len(raw) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return s, err
		}
		line := &optionLine{line: raw}
		if err := line.apply(&s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Current option line being parsed.
type optionLine struct {
	line string
	pos  int
}

// apply parses and applies one directive line, if any, to s.
func (line *optionLine) apply(s *Settings) error {
	name := line.parseName()
	if name == "" {
		return nil
	}

	line.skipSpace()
	// parseQuoteString reads from the character after pos, so step back
	// onto the separator in front of the value.
	line.pos--
	value, ok := line.parseQuoteString()
	if !ok {
		return fmt.Errorf("invalid value for %s, line: %d", name, lineNumber)
	}

	switch strings.ToUpper(name) {
	case "SCALE":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid SCALE value %q, line: %d", value, lineNumber)
		}
		s.Scale = n

	case "ROUND":
		mode, ok := decimal.ParseRoundingMode(value)
		if !ok {
			return fmt.Errorf("unknown ROUND mode %q, line: %d", value, lineNumber)
		}
		s.Round = mode

	case "TRIM":
		switch strings.ToUpper(value) {
		case "ON", "TRUE", "YES":
			s.Trim = true
		case "OFF", "FALSE", "NO":
			s.Trim = false
		default:
			return fmt.Errorf("invalid TRIM value %q, line: %d", value, lineNumber)
		}

	default:
		return fmt.Errorf("unknown directive %q, line: %d", name, lineNumber)
	}
	return nil
}

// Skip forward over line until a none whitespace character found.
func (line *optionLine) skipSpace() {
	for {
		if line.pos >= len(line.line) {
			return
		}
		if unicode.IsSpace(rune(line.line[line.pos])) {
			line.pos++
			continue
		}
		return
	}
}

// Check if at end of line.
func (line *optionLine) isEOL() bool {
	if line.pos >= len(line.line) {
		return true
	}
	return line.line[line.pos] == '#'
}

// Return next letter or digit in line. 0 if EOL or space.
func (line *optionLine) getNext(inQuote bool) byte {
	line.pos++
	if line.isEOL() {
		return 0
	}
	by := line.line[line.pos]
	if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) || inQuote {
		return by
	}
	return 0
}

// Peek at next character.
func (line *optionLine) getPeek() byte {
	if (line.pos + 1) >= len(line.line) {
		return 0
	}
	return line.line[line.pos+1]
}

// parseName reads the directive keyword at the start of the line.
func (line *optionLine) parseName() string {
	line.skipSpace()
	if line.isEOL() {
		return ""
	}

	name := ""
	for {
		if line.isEOL() {
			break
		}
		by := line.line[line.pos]
		if unicode.IsLetter(rune(by)) || unicode.IsNumber(rune(by)) {
			name += string([]byte{by})
			line.pos++
			continue
		}
		break
	}
	return name
}

// Parse string that is "string" or just string.
func (line *optionLine) parseQuoteString() (string, bool) {
	inQuote := false
	value := ""

	if line.getPeek() == '"' {
		inQuote = true
		_ = line.getNext(true)
	}

	for {
		by := line.getNext(inQuote)
		if by == '"' && inQuote {
			by = line.getNext(inQuote)
			if by != '"' {
				return value, true
			}
		}

		space := unicode.IsSpace(rune(by))
		if !inQuote && (space || by == 0) {
			return value, true
		}

		value += string(by)
		if line.isEOL() {
			return value, !inQuote
		}
	}
}
