/*
 * decimal - Interactive and batch front end for the decimal package.
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
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	getopt "github.com/pborman/getopt/v2"
	"github.com/peterh/liner"

	"github.com/rcornwell/decimal/config"
	"github.com/rcornwell/decimal/decimal"
	logger "github.com/rcornwell/decimal/util/logger"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optScale := getopt.IntLong("scale", 's', -1, "Default scale")
	optRound := getopt.StringLong("round", 'r', "", "Default rounding mode")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optInteractive := getopt.BoolLong("interactive", 'i', "Run an interactive prompt")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel}, new(bool)))
	slog.SetDefault(Logger)

	settings := config.Default()
	if *optConfig != "" {
		loaded, err := config.LoadConfig(*optConfig)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		settings = loaded
	}

	session := NewSession(settings)
	if *optScale >= 0 {
		session.Scale = *optScale
	}
	if *optRound != "" {
		mode, ok := decimal.ParseRoundingMode(*optRound)
		if !ok {
			Logger.Error("unknown rounding mode: " + *optRound)
			os.Exit(1)
		}
		session.Round = mode
	}

	if *optInteractive {
		runREPL(session)
		return
	}

	in := os.Stdin
	if args := getopt.Args(); len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}
	if err := runBatch(in, session); err != nil {
		Logger.Error(err.Error())
		os.Exit(1)
	}
}

// trace logs one arithmetic evaluation at debug level with its operands,
// operator, result (or error), and elapsed time.
func trace(fields []string, result string, err error, elapsed time.Duration) {
	attrs := []any{"op", fields[0], "elapsed", elapsed}
	if len(fields) > 1 {
		attrs = append(attrs, "a", fields[1])
	}
	if len(fields) > 2 {
		attrs = append(attrs, "b", fields[2])
	}
	if err != nil {
		Logger.Debug("eval", append(attrs, "error", err.Error())...)
		return
	}
	Logger.Debug("eval", append(attrs, "result", result)...)
}

// runBatch evaluates every non-blank, non-comment line of in in order,
// printing each result to stdout.
func runBatch(in *os.File, session *Session) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		quit, result, err := ProcessLine(raw, session, trace)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error: "+err.Error())
			continue
		}
		if result != "" {
			fmt.Println(result)
		}
		if quit {
			return nil
		}
	}
	return scanner.Err()
}

// runREPL drives an interactive liner-backed prompt until the user quits
// or aborts with Ctrl-D.
func runREPL(session *Session) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(partial string) []string {
		return completeCmd(partial)
	})

	for {
		input, err := line.Prompt("decimal> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return
			}
			Logger.Error("error reading line: " + err.Error())
			return
		}

		raw := strings.TrimSpace(input)
		if raw == "" {
			continue
		}
		line.AppendHistory(raw)

		quit, result, err := ProcessLine(raw, session, trace)
		if err != nil {
			fmt.Println("Error: " + err.Error())
			continue
		}
		if result != "" {
			fmt.Println(result)
		}
		if quit {
			return
		}
	}
}

// completeCmd offers command-name completions for the leading word of
// partial; it does not complete operator or number arguments.
func completeCmd(partial string) []string {
	word := strings.TrimLeft(partial, " ")
	if strings.ContainsAny(word, " \t") {
		return nil
	}
	var out []string
	for op := range arithOps {
		if strings.HasPrefix(op, word) {
			out = append(out, op+" ")
		}
	}
	for _, c := range matchList(word) {
		out = append(out, c.name+" ")
	}
	return out
}
