package cipher

import (
	"fmt"
	"slices"
	"strings"
)

// Filler is the padding character the vault has always carried at the end
// of its built-in alphabets (HANGUL FILLER).
const Filler = '\u3164'

// Built-in alphabet names. The name is persisted with the vault so data is
// never decoded against a different character order.
const (
	AlphabetLowercase    = "lowercase"
	AlphabetAlphanumeric = "alphanumeric"
)

// Alphabet is an ordered set of distinct characters. Ordinal n (1-based)
// names the n-th character.
type Alphabet struct {
	name  string
	runes []rune
	index map[rune]int
}

// NewAlphabet validates runes and builds an Alphabet. Empty input and
// repeated characters are rejected.
func NewAlphabet(name string, runes []rune) (*Alphabet, error) {
	if len(runes) == 0 {
		return nil, ErrEmptyAlphabet
	}

	index := make(map[rune]int, len(runes))
	for i, r := range runes {
		if _, ok := index[r]; ok {
			return nil, fmt.Errorf("%w: %q in alphabet %q", ErrDuplicateRune, r, name)
		}
		index[r] = i + 1
	}

	return &Alphabet{
		name:  name,
		runes: slices.Clone(runes),
		index: index,
	}, nil
}

// AlphabetByName returns one of the built-in alphabets.
func AlphabetByName(name string) (*Alphabet, error) {
	build, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlphabet, name)
	}
	return build(), nil
}

// AlphabetNames lists the built-in alphabet names in a stable order.
func AlphabetNames() []string {
	return []string{AlphabetLowercase, AlphabetAlphanumeric}
}

var builtins = map[string]func() *Alphabet{
	AlphabetLowercase: func() *Alphabet {
		return mustAlphabet(AlphabetLowercase, runeRange('a', 'z'), []rune{Filler})
	},
	AlphabetAlphanumeric: func() *Alphabet {
		return mustAlphabet(AlphabetAlphanumeric,
			runeRange('a', 'z'), runeRange('A', 'Z'), runeRange('0', '9'), []rune{Filler})
	},
}

func mustAlphabet(name string, parts ...[]rune) *Alphabet {
	a, err := NewAlphabet(name, slices.Concat(parts...))
	if err != nil {
		panic(err)
	}
	return a
}

func runeRange(from, to rune) []rune {
	out := make([]rune, 0, to-from+1)
	for r := from; r <= to; r++ {
		out = append(out, r)
	}
	return out
}

// Name returns the alphabet's persisted name.
func (a *Alphabet) Name() string { return a.name }

// Size returns the number of characters.
func (a *Alphabet) Size() int { return len(a.runes) }

// Runes returns a copy of the characters in order.
func (a *Alphabet) Runes() []rune { return slices.Clone(a.runes) }

// Ordinal returns the 1-based position of r, or false if r is absent.
func (a *Alphabet) Ordinal(r rune) (int, bool) {
	n, ok := a.index[r]
	return n, ok
}

// At returns the character at 1-based ordinal n, or false when n is out of
// [1, Size()].
func (a *Alphabet) At(n int) (rune, bool) {
	if n < 1 || n > len(a.runes) {
		return 0, false
	}
	return a.runes[n-1], true
}
