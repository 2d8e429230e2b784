// Package repl implements the interactive line-editing loop: a `lispy> `
// prompt, a trailing-`;` multi-line continuation convention, line-mode
// parsing, and debug-form printing of results.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/lispy-lang/lispy/internal/eval"
	"github.com/lispy-lang/lispy/internal/parser"
)

const (
	historyFileName = ".lispy_history"
	prompt          = "lispy> "
)

var logger = log.New(os.Stderr, "", 0)

// Run drives the REPL against interp until the user exits (Ctrl-D, Ctrl-C
// or an unrecoverable read error), reading from and writing history to the
// user's home directory.
func Run(interp *eval.Interpreter) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetWordCompleter(completer(interp))

	histPath := historyPath()
	if f, err := os.Open(histPath); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			logger.Printf("reading %s: %v", histPath, err)
		}
		f.Close()
	}

	for {
		src, ok := readForm(line)
		if !ok {
			fmt.Fprintln(interp.Out)
			break
		}
		if strings.TrimSpace(src) == "" {
			continue
		}
		line.AppendHistory(strings.ReplaceAll(src, "\n", " "))

		form := parser.ParseLine(src)
		if form.IsErr() {
			fmt.Fprintf(interp.Out, "Parse error: %s\n", form.ErrMsg)
			continue
		}
		result := eval.Eval(interp.Global, form)
		fmt.Fprintln(interp.Out, result.Debug())
	}

	if f, err := os.Create(histPath); err == nil {
		if _, err := line.WriteHistory(f); err != nil {
			logger.Printf("writing %s: %v", histPath, err)
		}
		f.Close()
	}
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}

// readForm implements the multi-line convention: a line ending in `;`
// means more input is coming, and the `;` is replaced by the `\n` joining
// it to the next line; a line with no trailing `;` completes the input.
// The bool is false on EOF with nothing accumulated yet, and on any other
// prompt error (Ctrl-C included), which discards the partial buffer.
func readForm(line *liner.State) (string, bool) {
	var b strings.Builder
	for {
		text, err := line.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			if b.Len() == 0 {
				return "", false
			}
			return b.String(), true
		}
		if err != nil {
			// Ctrl-C or a read failure: discard the partial buffer and end.
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		if needsContinuation(text) {
			b.WriteString(stripContinuation(text))
			continue
		}
		b.WriteString(text)
		return b.String(), true
	}
}

// needsContinuation reports whether line ends in a `;` (ignoring trailing
// horizontal whitespace), the signal that more input is coming.
func needsContinuation(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, " \t"), ";")
}

// stripContinuation removes the trailing `;` (and any whitespace after
// it) that marked line as needing continuation.
func stripContinuation(line string) string {
	return strings.TrimSuffix(strings.TrimRight(line, " \t"), ";")
}

// completer offers every symbol currently bound in the global environment
// as a tab-completion candidate, an ambient nicety a liner-backed REPL
// naturally offers given the global environment already exposes its own
// bindings via Names().
func completer(interp *eval.Interpreter) liner.WordCompleter {
	return func(line string, pos int) (head string, completions []string, tail string) {
		start := pos
		for start > 0 && !isBoundary(line[start-1]) {
			start--
		}
		word := line[start:pos]
		for _, name := range interp.Global.Names() {
			if strings.HasPrefix(name, word) {
				completions = append(completions, name)
			}
		}
		return line[:start], completions, line[pos:]
	}
}

func isBoundary(b byte) bool {
	switch b {
	case ' ', '\t', '(', ')', '{', '}', '"':
		return true
	}
	return false
}
