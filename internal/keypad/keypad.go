package keypad

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// letterDigits maps 'a'..'z' to their encoding digit.
var letterDigits = [26]byte{
	'5', // a
	'7', // b
	'6', // c
	'3', // d
	'0', // e
	'4', // f
	'9', // g
	'9', // h
	'6', // i
	'1', // j
	'7', // k
	'8', // l
	'5', // m
	'1', // n
	'8', // o
	'8', // p
	'1', // q
	'2', // r
	'3', // s
	'4', // t
	'7', // u
	'6', // v
	'2', // w
	'2', // x
	'3', // y
	'9', // z
}

// DigitFor returns the encoding digit for an ASCII letter of either case.
// ok is false for anything else.
func DigitFor(r rune) (digit byte, ok bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return letterDigits[r-'a'], true
	case r >= 'A' && r <= 'Z':
		return letterDigits[r-'A'], true
	}
	return 0, false
}

// Signature returns the digit signature of word. Non-letters are dropped.
func Signature(word string) string {
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if d, ok := DigitFor(r); ok {
			b.WriteByte(d)
		}
	}
	return b.String()
}

// Digits returns only the decimal digits of s, in order.
func Digits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Fold strips combining marks so that accented Latin letters reduce to
// their ASCII base letter ("Lösung" -> "Losung"). Letters without an ASCII
// base are left alone and later ignored by Signature.
func Fold(word string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, word)
	if err != nil {
		return word
	}
	return folded
}
