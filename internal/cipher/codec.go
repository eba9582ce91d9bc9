package cipher

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// FallbackPolicy decides what [Codec.OrdinalsOf] does with characters that
// are not in the alphabet.
type FallbackPolicy string

const (
	// FallbackDrop filters absent characters out, shortening the result.
	FallbackDrop FallbackPolicy = "drop"
	// FallbackCodepoint substitutes the character's code point. Code points
	// in [1, size] collide with alphabet ordinals and decode as alphabet
	// members.
	FallbackCodepoint FallbackPolicy = "codepoint"
)

// ParseFallback converts a configuration value into a FallbackPolicy.
func ParseFallback(s string) (FallbackPolicy, error) {
	switch p := FallbackPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case FallbackDrop, FallbackCodepoint:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFallback, s)
}

// Codec maps text to ordinals and back over one alphabet with one fallback
// policy. It holds no state besides its configuration.
type Codec struct {
	alphabet *Alphabet
	fallback FallbackPolicy
}

// NewCodec builds a Codec. An empty policy means [FallbackDrop].
func NewCodec(alphabet *Alphabet, fallback FallbackPolicy) (*Codec, error) {
	if alphabet == nil {
		return nil, ErrEmptyAlphabet
	}
	if fallback == "" {
		fallback = FallbackDrop
	}
	if _, err := ParseFallback(string(fallback)); err != nil {
		return nil, err
	}
	return &Codec{alphabet: alphabet, fallback: fallback}, nil
}

// Alphabet returns the codec's alphabet.
func (c *Codec) Alphabet() *Alphabet { return c.alphabet }

// Fallback returns the codec's fallback policy.
func (c *Codec) Fallback() FallbackPolicy { return c.fallback }

// OrdinalsOf maps every character of text (after NFC normalisation) to its
// ordinal. Absent characters are handled by the fallback policy.
func (c *Codec) OrdinalsOf(text string) []int {
	text = norm.NFC.String(text)

	out := make([]int, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		if n, ok := c.alphabet.Ordinal(r); ok {
			out = append(out, n)
			continue
		}
		if c.fallback == FallbackCodepoint {
			out = append(out, int(r))
		}
	}
	return out
}

// TextOf renders ordinals back to text. Ordinals in [1, size] become
// alphabet members; other values are taken as code points. Values that are
// not valid code points are rendered as U+FFFD and the returned error is a
// [*RenderError] listing their positions. The text is returned either way.
func (c *Codec) TextOf(ordinals []int) (string, error) {
	var (
		b      strings.Builder
		failed []int
	)
	b.Grow(len(ordinals))

	for i, n := range ordinals {
		if r, ok := c.alphabet.At(n); ok {
			b.WriteRune(r)
			continue
		}
		if n <= 0 || n > utf8.MaxRune || !utf8.ValidRune(rune(n)) {
			b.WriteRune(utf8.RuneError)
			failed = append(failed, i)
			continue
		}
		b.WriteRune(rune(n))
	}

	if len(failed) > 0 {
		return b.String(), &RenderError{Positions: failed}
	}
	return b.String(), nil
}
