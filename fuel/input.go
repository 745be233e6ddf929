package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const stdinSource = "-"

// Entry is a single mass and where it was read from.
type Entry struct {
	Source string `yaml:"source"`
	Line   int    `yaml:"line"`
	Mass   int64  `yaml:"mass"`
}

func (e Entry) Pos() string {
	return fmt.Sprintf("%s:%d", e.Source, e.Line)
}

// ParseError reports a line that is not an integer.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

func (e *ParseError) Error() string {
	cause := e.Err
	var numErr *strconv.NumError
	if errors.As(cause, &numErr) {
		cause = numErr.Err
	}

	return fmt.Sprintf("%s:%d: parse %q: %v", e.Source, e.Line, e.Text, cause)
}

func (e *ParseError) Unwrap() error { return e.Err }

// InputError reports a source that could not be opened or read.
type InputError struct {
	Op   string
	Path string
	Err  error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// OpenSource opens path for reading; "-" is stdin.
func OpenSource(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == stdinSource {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, &InputError{Op: "open", Path: path, Err: err}
	}

	return f, nil
}

// ReadMasses reads one integer per line from r. Blank lines are skipped.
func ReadMasses(r io.Reader, source string) ([]Entry, error) {
	scanner := bufio.NewScanner(r)

	var entries []Entry
	var l int
	for scanner.Scan() {
		l++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		v, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, &ParseError{Source: source, Line: l, Text: line, Err: err}
		}

		entries = append(entries, Entry{Source: source, Line: l, Mass: v})
	}

	if err := scanner.Err(); err != nil {
		return nil, &InputError{Op: "read", Path: source, Err: err}
	}

	return entries, nil
}
