package dictionary

import (
	"fmt"

	"codeberg.org/snonux/phonewords/internal/batch"
)

// Load reads a word list with one word per line and builds an Index from it.
func Load(filename string, opts ...Option) (*Index, error) {
	words, err := batch.ReadLines(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}
	return Build(words, opts...), nil
}
