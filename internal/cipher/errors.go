package cipher

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyKey is returned by [Engine.Encrypt] and [Engine.Decrypt] when the
	// key ordinal sequence is empty.
	ErrEmptyKey = errors.New("key is empty")

	// ErrUnknownMode is returned when a mode value or name is not one of the
	// supported arithmetic modes.
	ErrUnknownMode = errors.New("unknown mode")

	// ErrUnknownFallback is returned when a fallback policy name is not
	// recognised.
	ErrUnknownFallback = errors.New("unknown fallback policy")

	// ErrInvalidSize is returned when an engine is built for an alphabet with
	// fewer than one character.
	ErrInvalidSize = errors.New("alphabet size must be positive")

	// ErrEmptyAlphabet is returned when an alphabet has no characters.
	ErrEmptyAlphabet = errors.New("alphabet is empty")

	// ErrDuplicateRune is returned when an alphabet lists a character twice.
	ErrDuplicateRune = errors.New("alphabet contains duplicate character")

	// ErrUnknownAlphabet is returned by [AlphabetByName] for unregistered names.
	ErrUnknownAlphabet = errors.New("unknown alphabet")

	// ErrUnrenderable matches every [*RenderError] via errors.Is.
	ErrUnrenderable = errors.New("ordinal cannot be rendered")
)

// RenderError reports ordinals that [Codec.TextOf] could not turn into
// characters. Positions are indexes into the input ordinal slice.
type RenderError struct {
	Positions []int
}

func (e *RenderError) Error() string {
	if len(e.Positions) == 0 {
		return ErrUnrenderable.Error()
	}
	return fmt.Sprintf("%s: %d invalid ordinal(s), first at position %d",
		ErrUnrenderable.Error(), len(e.Positions), e.Positions[0])
}

// Is makes errors.Is(err, ErrUnrenderable) true for any *RenderError.
func (e *RenderError) Is(target error) bool {
	return target == ErrUnrenderable
}
