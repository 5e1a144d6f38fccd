package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"codeberg.org/snonux/phonewords/internal/translator"
)

// Result is a translation together with its place in the run.
type Result struct {
	// Line is the 1-based position of the phone number in the input.
	Line int
	// Index is the 1-based position of the translation for that number.
	Index int
	translator.Translation
}

// Sink receives results in the order they are found. Close finishes a
// successful run; Abort ends a failed one and discards what the sink can
// still take back.
type Sink interface {
	Write(r Result) error
	Close() error
	Abort() error
}

// TextSink writes one line per result: number, separator, tokens.
type TextSink struct {
	w   *bufio.Writer
	sep string
}

// NewTextSink creates a TextSink on w. The caller still owns w; Close only
// flushes buffered output.
func NewTextSink(w io.Writer, sep string) *TextSink {
	return &TextSink{w: bufio.NewWriter(w), sep: sep}
}

func (s *TextSink) Write(r Result) error {
	if _, err := s.w.WriteString(r.Format(s.sep)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	if err := s.w.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

// Close flushes pending output.
func (s *TextSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush results: %w", err)
	}
	return nil
}

// Abort flushes what was already written. Printed lines cannot be taken
// back.
func (s *TextSink) Abort() error {
	return s.Close()
}

// Multi fans every result out to several sinks in order.
type Multi []Sink

func (m Multi) Write(r Result) error {
	for _, s := range m {
		if err := s.Write(r); err != nil {
			return err
		}
	}
	return nil
}

// Close closes every sink and joins their errors.
func (m Multi) Close() error {
	var errs []error
	for _, s := range m {
		if err := s.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Abort aborts every sink and joins their errors.
func (m Multi) Abort() error {
	var errs []error
	for _, s := range m {
		if err := s.Abort(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
