// Package dictionary builds the signature index that the translator
// searches. Each word is reduced to its keypad digit signature and filed
// under it, keeping the order in which words appeared in the word list.
package dictionary
