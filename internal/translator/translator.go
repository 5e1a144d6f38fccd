package translator

import (
	"iter"
	"strings"
	"unicode/utf8"

	"codeberg.org/snonux/phonewords/internal/dictionary"
	"codeberg.org/snonux/phonewords/internal/keypad"
)

// DefaultSeparator sits between the phone number and its tokens.
const DefaultSeparator = ": "

// Translation is one complete encoding of a phone number: the number as it
// was given and the words and lone digits that spell out its digits.
type Translation struct {
	Number string
	Tokens []string
}

// Format renders t as "<number><sep><tokens joined by single spaces>".
func (t Translation) Format(sep string) string {
	return t.Number + sep + strings.Join(t.Tokens, " ")
}

func (t Translation) String() string {
	return t.Format(DefaultSeparator)
}

// Option configures a Translator.
type Option func(*Translator)

// DigitsAfterShortWords lets a lone digit follow a one-letter word. By
// default any one-character token blocks a following digit, so "o 3" is
// never produced after the word "o". With this option only a lone digit
// blocks the next one.
func DigitsAfterShortWords(enabled bool) Option {
	return func(t *Translator) {
		t.digitsAfterShortWords = enabled
	}
}

// Translator finds all encodings of phone numbers against one Index.
type Translator struct {
	index                 *dictionary.Index
	digitsAfterShortWords bool
}

// New returns a Translator searching index.
func New(index *dictionary.Index, opts ...Option) *Translator {
	t := &Translator{index: index}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Translate yields every translation of number in a fixed order: at each
// digit position shorter words come before longer ones, words sharing a
// signature come in dictionary order, and a lone digit is only tried when
// no word starts at that position and the previous token is not a single
// character. A number without digits yields one translation with no tokens.
//
// The search runs lazily while the sequence is consumed and stops as soon
// as the consumer breaks out. Each yielded Tokens slice is owned by the
// caller.
func (t *Translator) Translate(number string) iter.Seq[Translation] {
	return func(yield func(Translation) bool) {
		s := &search{
			number:                number,
			digits:                keypad.Digits(number),
			index:                 t.index,
			digitsAfterShortWords: t.digitsAfterShortWords,
			yield:                 yield,
		}
		s.run(0, false)
	}
}

// Collect returns all translations of number.
func (t *Translator) Collect(number string) []Translation {
	var out []Translation
	for tr := range t.Translate(number) {
		out = append(out, tr)
	}
	return out
}

// Translate is a shorthand for New(index).Translate(number).
func Translate(number string, index *dictionary.Index) iter.Seq[Translation] {
	return New(index).Translate(number)
}

// search is the state of one depth-first walk over a single number.
// tokens is the partial translation for the frame currently running.
type search struct {
	number                string
	digits                string
	index                 *dictionary.Index
	digitsAfterShortWords bool
	tokens                []string
	yield                 func(Translation) bool
}

// run extends the partial translation from digit position start.
// afterDigit reports whether the last token forbids a lone digit next.
// It returns false once the consumer has stopped the iteration.
func (s *search) run(start int, afterDigit bool) bool {
	if start == len(s.digits) {
		tokens := make([]string, len(s.tokens))
		copy(tokens, s.tokens)
		return s.yield(Translation{Number: s.number, Tokens: tokens})
	}

	found := false
	for n, words := range s.index.Matches(s.digits[start:]) {
		found = true
		for _, w := range words {
			s.push(w)
			more := s.run(start+n, !s.digitsAfterShortWords && utf8.RuneCountInString(w) == 1)
			s.pop(w)
			if !more {
				return false
			}
		}
	}
	if found || afterDigit {
		return true
	}

	d := s.digits[start : start+1]
	s.push(d)
	more := s.run(start+1, true)
	s.pop(d)
	return more
}

func (s *search) push(token string) {
	s.tokens = append(s.tokens, token)
}

func (s *search) pop(token string) {
	last := len(s.tokens) - 1
	if debugChecks {
		checkTop(s.tokens, token)
	}
	s.tokens = s.tokens[:last]
}
