// Package keypad holds the fixed letter-to-digit encoding used to turn
// dictionary words into digit signatures and phone numbers into bare digit
// strings.
//
// The encoding is:
//
//	E -> 0   J N Q -> 1   R W X -> 2   D S Y -> 3   F T -> 4
//	A M -> 5 C I V -> 6   B K U -> 7   L O P -> 8   G H Z -> 9
package keypad
