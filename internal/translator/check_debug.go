//go:build phonewords_debug

package translator

import "fmt"

const debugChecks = true

// checkTop panics unless token is the last element of tokens.
func checkTop(tokens []string, token string) {
	if len(tokens) == 0 {
		panic(fmt.Sprintf("translator: pop of %q from empty token stack", token))
	}
	if top := tokens[len(tokens)-1]; top != token {
		panic(fmt.Sprintf("translator: popped %q but pushed %q", top, token))
	}
}
