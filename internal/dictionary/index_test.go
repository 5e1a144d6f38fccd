package dictionary

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type match struct {
	end   int
	words []string
}

func collectMatches(ix *Index, digits string) []match {
	var out []match
	for end, words := range ix.Matches(digits) {
		out = append(out, match{end: end, words: words})
	}
	return out
}

func TestBuild(t *testing.T) {
	words := []string{"hell", "hello", "o", "world", "row", "oy"}
	ix := Build(words)

	assert.Equal(t, 6, ix.Len())
	assert.Equal(t, 6, ix.Signatures())

	tests := []struct {
		signature string
		want      []string
	}{
		{"9088", []string{"hell"}},
		{"90888", []string{"hello"}},
		{"8", []string{"o"}},
		{"28283", []string{"world"}},
		{"282", []string{"row"}},
		{"83", []string{"oy"}},
	}
	for _, tt := range tests {
		got, ok := ix.Lookup(tt.signature)
		require.True(t, ok, tt.signature)
		assert.Equal(t, tt.want, got, tt.signature)
	}

	// Prefixes of signatures are not signatures themselves.
	_, ok := ix.Lookup("908")
	assert.False(t, ok)
	_, ok = ix.Lookup("9")
	assert.False(t, ok)
	_, ok = ix.Lookup("x9")
	assert.False(t, ok)
}

func TestBuild_KeepsOrderAndDuplicates(t *testing.T) {
	words := []string{"Tor", "fort", "Torf", "Tor", "ort"}
	ix := Build(words)

	// tor=482, fort=4824, torf=4824, ort=824
	got, ok := ix.Lookup("4824")
	require.True(t, ok)
	assert.Equal(t, []string{"fort", "Torf"}, got)

	got, ok = ix.Lookup("482")
	require.True(t, ok)
	assert.Equal(t, []string{"Tor", "Tor"}, got)

	assert.Equal(t, 5, ix.Len())
	assert.Equal(t, 3, ix.Signatures())
}

func TestBuild_StoresOriginalWord(t *testing.T) {
	ix := Build([]string{`Bo"s`, "Tor-Weg", "MIR"})

	got, ok := ix.Lookup("783")
	require.True(t, ok)
	assert.Equal(t, []string{`Bo"s`}, got)

	got, ok = ix.Lookup("482209")
	require.True(t, ok)
	assert.Equal(t, []string{"Tor-Weg"}, got)

	got, ok = ix.Lookup("562")
	require.True(t, ok)
	assert.Equal(t, []string{"MIR"}, got)
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	words := []string{"b", "a", "b"}
	Build(words, WithFolding(true))
	assert.Equal(t, []string{"b", "a", "b"}, words)
}

func TestBuild_EmptySignature(t *testing.T) {
	ix := Build([]string{"", "--", "o"})

	got, ok := ix.Lookup("")
	require.True(t, ok)
	assert.Equal(t, []string{"", "--"}, got)

	// The empty signature is never reported as a match.
	assert.Equal(t, []match{{end: 1, words: []string{"o"}}}, collectMatches(ix, "88"))
}

func TestBuild_Folding(t *testing.T) {
	plain := Build([]string{"Lösung"})
	_, ok := plain.Lookup("883719")
	assert.False(t, ok, "umlaut dropped without folding")
	_, ok = plain.Lookup("83719")
	assert.True(t, ok)

	folded := Build([]string{"Lösung"}, WithFolding(true))
	got, ok := folded.Lookup("883719")
	require.True(t, ok)
	assert.Equal(t, []string{"Lösung"}, got)
}

func TestMatches(t *testing.T) {
	ix := Build([]string{"hell", "hello", "o", "world", "row", "oy"})

	tests := []struct {
		name   string
		digits string
		want   []match
	}{
		{
			name:   "ascending prefix lengths",
			digits: "9088828283",
			want: []match{
				{end: 4, words: []string{"hell"}},
				{end: 5, words: []string{"hello"}},
			},
		},
		{
			name:   "short and long at same start",
			digits: "8283",
			want: []match{
				{end: 1, words: []string{"o"}},
			},
		},
		{
			name:   "match then dead end",
			digits: "83",
			want: []match{
				{end: 1, words: []string{"o"}},
				{end: 2, words: []string{"oy"}},
			},
		},
		{
			name:   "word inside longer word",
			digits: "28283",
			want: []match{
				{end: 3, words: []string{"row"}},
				{end: 5, words: []string{"world"}},
			},
		},
		{
			name:   "no signature starts with digit",
			digits: "5555",
			want:   nil,
		},
		{
			name:   "empty digits",
			digits: "",
			want:   nil,
		},
		{
			name:   "non digit stops the walk",
			digits: "8-3",
			want: []match{
				{end: 1, words: []string{"o"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collectMatches(ix, tt.digits))
		})
	}
}

func TestMatches_EarlyStop(t *testing.T) {
	ix := Build([]string{"o", "oy"})

	calls := 0
	for range ix.Matches("83") {
		calls++
		break
	}
	assert.Equal(t, 1, calls)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dict.txt")
	require.NoError(t, os.WriteFile(path, []byte("hell\r\nhello\n\nLösung\n"), 0644))

	ix, err := Load(path, WithFolding(true))
	require.NoError(t, err)
	assert.Equal(t, 4, ix.Len())

	got, ok := ix.Lookup("90888")
	require.True(t, ok)
	assert.Equal(t, []string{"hello"}, got)

	_, ok = ix.Lookup("883719")
	assert.True(t, ok)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
