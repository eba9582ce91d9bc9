package cipher

import (
	"fmt"
	"strings"
)

// Mode selects the combine/uncombine arithmetic of an [Engine].
// The zero value is not a valid mode.
type Mode int

const (
	// ModeModular wraps every ordinal into [1, size].
	ModeModular Mode = iota + 1
	// ModeUnbounded adds and subtracts without wrapping.
	ModeUnbounded
)

const (
	modularName   = "modular"
	unboundedName = "unbounded"
)

// ParseMode converts a configuration or vault tag into a Mode.
// Matching is case-insensitive and ignores surrounding spaces.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case modularName:
		return ModeModular, nil
	case unboundedName:
		return ModeUnbounded, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) String() string {
	switch m {
	case ModeModular:
		return modularName
	case ModeUnbounded:
		return unboundedName
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == ModeModular || m == ModeUnbounded
}
