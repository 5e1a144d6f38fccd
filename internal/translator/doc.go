// Package translator enumerates the ways a phone number can be spelled out
// with dictionary words.
//
// The digits of a number are split into consecutive spans. Each span is
// either a word whose keypad signature equals the span or, when no word
// starts at that position, the single digit itself. A lone digit never
// follows a single-character token, be it another digit or a one-letter
// word. Translations are produced by a depth-first search and
// handed out one at a time through an iter.Seq, so memory use does not grow
// with the number of results.
//
// Building with the phonewords_debug tag enables consistency checks on the
// search's token stack.
package translator
