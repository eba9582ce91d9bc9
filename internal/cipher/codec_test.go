package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCodec(t *testing.T, alphabet string, fallback FallbackPolicy) *Codec {
	t.Helper()
	a, err := AlphabetByName(alphabet)
	require.NoError(t, err)
	c, err := NewCodec(a, fallback)
	require.NoError(t, err)
	return c
}

func TestParseFallback(t *testing.T) {
	p, err := ParseFallback("Drop")
	require.NoError(t, err)
	assert.Equal(t, FallbackDrop, p)

	p, err = ParseFallback("codepoint")
	require.NoError(t, err)
	assert.Equal(t, FallbackCodepoint, p)

	_, err = ParseFallback("replace")
	require.ErrorIs(t, err, ErrUnknownFallback)
}

func TestNewCodec(t *testing.T) {
	_, err := NewCodec(nil, FallbackDrop)
	require.ErrorIs(t, err, ErrEmptyAlphabet)

	a, err := AlphabetByName(AlphabetLowercase)
	require.NoError(t, err)

	c, err := NewCodec(a, "")
	require.NoError(t, err)
	assert.Equal(t, FallbackDrop, c.Fallback())

	_, err = NewCodec(a, "bogus")
	require.ErrorIs(t, err, ErrUnknownFallback)
}

func TestCodec_OrdinalsOf(t *testing.T) {
	tests := []struct {
		name     string
		alphabet string
		fallback FallbackPolicy
		in       string
		want     []int
	}{
		{name: "members", alphabet: AlphabetLowercase, fallback: FallbackDrop, in: "cat", want: []int{3, 1, 20}},
		{name: "drop absent", alphabet: AlphabetLowercase, fallback: FallbackDrop, in: "c-A t!", want: []int{3, 20}},
		{name: "drop everything", alphabet: AlphabetLowercase, fallback: FallbackDrop, in: "123", want: []int{}},
		{name: "codepoint absent", alphabet: AlphabetLowercase, fallback: FallbackCodepoint, in: "a!", want: []int{1, 33}},
		{name: "filler", alphabet: AlphabetLowercase, fallback: FallbackDrop, in: "a\u3164", want: []int{1, 27}},
		{name: "alphanumeric", alphabet: AlphabetAlphanumeric, fallback: FallbackDrop, in: "aZ9", want: []int{1, 52, 62}},
		{name: "empty", alphabet: AlphabetLowercase, fallback: FallbackDrop, in: "", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCodec(t, tt.alphabet, tt.fallback)
			assert.Equal(t, tt.want, c.OrdinalsOf(tt.in))
		})
	}
}

func TestCodec_OrdinalsOfNormalises(t *testing.T) {
	c := newTestCodec(t, AlphabetLowercase, FallbackCodepoint)

	composed := c.OrdinalsOf("\u00e9")
	decomposed := c.OrdinalsOf("e\u0301")
	assert.Equal(t, composed, decomposed)
	assert.Equal(t, []int{0xe9}, composed)
}

func TestCodec_TextOf(t *testing.T) {
	c := newTestCodec(t, AlphabetLowercase, FallbackCodepoint)

	got, err := c.TextOf([]int{3, 1, 20, 27})
	require.NoError(t, err)
	assert.Equal(t, "cat\u3164", got)

	got, err = c.TextOf([]int{33, 0x4e16})
	require.NoError(t, err)
	assert.Equal(t, "!\u4e16", got)

	got, err = c.TextOf(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestCodec_TextOfInvalid(t *testing.T) {
	c := newTestCodec(t, AlphabetLowercase, FallbackDrop)

	got, err := c.TextOf([]int{1, 0, -5, 0xD800, 0x110000, 2})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnrenderable)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, []int{1, 2, 3, 4}, renderErr.Positions)
	assert.Equal(t, "a\ufffd\ufffd\ufffd\ufffdb", got)
}

func TestCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		alphabet string
		fallback FallbackPolicy
		in       string
	}{
		{alphabet: AlphabetLowercase, fallback: FallbackDrop, in: "hunter"},
		{alphabet: AlphabetAlphanumeric, fallback: FallbackDrop, in: "Passw0rd"},
		{alphabet: AlphabetLowercase, fallback: FallbackCodepoint, in: "p@ss w\u00f6rd"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c := newTestCodec(t, tt.alphabet, tt.fallback)
			got, err := c.TextOf(c.OrdinalsOf(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.in, got)
		})
	}
}
