package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrEmptyPath is returned when a resource path is blank.
var ErrEmptyPath = errors.New("empty file path")

// maxLineSize bounds a single input line. Dictionaries and number lists are
// line oriented so anything longer is treated as a malformed resource.
const maxLineSize = 1 << 20

// ReadLines reads every line of filename into memory.
// Lines are cleaned the same way as in EachLine.
func ReadLines(filename string) ([]string, error) {
	var lines []string
	err := EachLine(filename, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// EachLine streams the lines of filename to fn in file order. Trailing
// whitespace (including a Windows '\r') is stripped; everything else on the
// line is passed through untouched, blank lines included. An error from fn
// stops the scan and is returned as is.
func EachLine(filename string, fn func(line string) error) error {
	if strings.TrimSpace(filename) == "" {
		return ErrEmptyPath
	}

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", filename, err)
	}
	defer f.Close()

	return scanLines(f, filename, fn)
}

func scanLines(r io.Reader, name string, fn func(line string) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := fn(trimRight(scanner.Text())); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	return nil
}

// trimRight strips trailing whitespace
func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
