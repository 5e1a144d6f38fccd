package dictionary

import (
	"iter"

	"codeberg.org/snonux/phonewords/internal/keypad"
)

// Index maps digit signatures to the dictionary words that encode to them.
// It is a trie keyed by signature digits, so a search can walk a digit
// string once and learn both which prefixes are signatures and where no
// longer signature can exist. An Index is never modified after Build and is
// safe to share between goroutines.
type Index struct {
	root       *node
	words      int
	signatures int
}

type node struct {
	children [10]*node
	words    []string
}

// Option configures Build.
type Option func(*buildConfig)

type buildConfig struct {
	fold bool
}

// WithFolding folds accented letters to their ASCII base before the
// signature is computed. The stored word is still the original.
func WithFolding(enabled bool) Option {
	return func(c *buildConfig) {
		c.fold = enabled
	}
}

// Build creates an Index from words. Words keep their input order within a
// signature and duplicates are kept. A word without letters lands under the
// empty signature, which no search ever reaches.
func Build(words []string, opts ...Option) *Index {
	var cfg buildConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	ix := &Index{root: &node{}}
	for _, w := range words {
		src := w
		if cfg.fold {
			src = keypad.Fold(w)
		}
		ix.add(keypad.Signature(src), w)
	}
	return ix
}

func (ix *Index) add(signature, word string) {
	cur := ix.root
	for i := 0; i < len(signature); i++ {
		d := signature[i] - '0'
		next := cur.children[d]
		if next == nil {
			next = &node{}
			cur.children[d] = next
		}
		cur = next
	}
	if len(cur.words) == 0 {
		ix.signatures++
	}
	cur.words = append(cur.words, word)
	ix.words++
}

// Lookup returns the words stored under signature in dictionary order.
// The returned slice must not be modified.
func (ix *Index) Lookup(signature string) ([]string, bool) {
	cur := ix.root
	for i := 0; i < len(signature); i++ {
		c := signature[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		if cur = cur.children[c-'0']; cur == nil {
			return nil, false
		}
	}
	return cur.words, len(cur.words) > 0
}

// Matches yields, for every non-empty prefix digits[:end] that is a
// signature, the prefix length end and its words. Lengths are yielded in
// ascending order. Iteration stops at the first prefix no signature starts
// with. The yielded slices must not be modified.
func (ix *Index) Matches(digits string) iter.Seq2[int, []string] {
	return func(yield func(int, []string) bool) {
		cur := ix.root
		for i := 0; i < len(digits); i++ {
			c := digits[i]
			if c < '0' || c > '9' {
				return
			}
			if cur = cur.children[c-'0']; cur == nil {
				return
			}
			if len(cur.words) == 0 {
				continue
			}
			if !yield(i+1, cur.words) {
				return
			}
		}
	}
}

// Len returns the number of words in the index, duplicates included.
func (ix *Index) Len() int { return ix.words }

// Signatures returns the number of distinct signatures.
func (ix *Index) Signatures() int { return ix.signatures }
