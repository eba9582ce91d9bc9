package service

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"slices"
	"strings"

	"github.com/MKhiriev/go-key-vault/internal/cipher"
)

// maxPasswordLength bounds generated passwords.
const maxPasswordLength = 1024

// PasswordGenerator draws passwords uniformly from the runes of an alphabet,
// so every generated password encodes without loss. The filler is never
// used.
type PasswordGenerator struct {
	runes  []rune
	random io.Reader
}

func NewPasswordGenerator(alphabet *cipher.Alphabet) *PasswordGenerator {
	runes := slices.DeleteFunc(alphabet.Runes(), func(r rune) bool {
		return r == cipher.Filler
	})
	return &PasswordGenerator{runes: runes, random: rand.Reader}
}

// without returns a generator that never draws the runes drop reports.
func (g *PasswordGenerator) without(drop func(rune) bool) *PasswordGenerator {
	return &PasswordGenerator{
		runes:  slices.DeleteFunc(slices.Clone(g.runes), drop),
		random: g.random,
	}
}

func (g *PasswordGenerator) Generate(length int) (string, error) {
	if length <= 0 || length > maxPasswordLength {
		return "", fmt.Errorf("%w: %d", ErrInvalidPasswordLength, length)
	}
	if len(g.runes) == 0 {
		return "", cipher.ErrEmptyAlphabet
	}

	upper := big.NewInt(int64(len(g.runes)))

	var b strings.Builder
	b.Grow(length)
	for range length {
		n, err := rand.Int(g.random, upper)
		if err != nil {
			return "", fmt.Errorf("error reading random source: %w", err)
		}
		b.WriteRune(g.runes[n.Int64()])
	}
	return b.String(), nil
}
