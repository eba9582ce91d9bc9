// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cipher

import "fmt"

// Engine applies a position-dependent additive transform to ordinal
// sequences using a cycling key. The mode and alphabet size are fixed at
// construction, so one Engine always produces data of one kind.
//
// Engine has no mutable state and is safe for concurrent use.
type Engine struct {
	mode Mode
	size int
}

// NewEngine builds an Engine for the given mode over an alphabet of size
// characters.
func NewEngine(mode Mode, size int) (*Engine, error) {
	if !mode.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(mode))
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	return &Engine{mode: mode, size: size}, nil
}

// Mode returns the arithmetic mode the engine was built with.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Size returns the alphabet size used by the modular arithmetic.
func (e *Engine) Size() int {
	return e.size
}

// Encrypt combines message[i] with key[i mod len(key)] for every position.
// The returned slice has the same length as message.
func (e *Engine) Encrypt(message, key []int) ([]int, error) {
	return e.apply(message, key, e.combine)
}

// Decrypt reverses [Engine.Encrypt] under the same key. A different key
// still produces output; see the package documentation.
func (e *Engine) Decrypt(cipherText, key []int) ([]int, error) {
	return e.apply(cipherText, key, e.uncombine)
}

func (e *Engine) apply(in, key []int, op func(a, k int) int) ([]int, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}

	out := make([]int, len(in))
	for i, v := range in {
		out[i] = op(v, key[i%len(key)])
	}
	return out, nil
}

func (e *Engine) combine(m, k int) int {
	if e.mode == ModeUnbounded {
		return m + k
	}
	return mod(m+k-1, e.size) + 1
}

func (e *Engine) uncombine(c, k int) int {
	if e.mode == ModeUnbounded {
		return c - k
	}
	return mod(c-k-1+e.size, e.size) + 1
}

// mod returns a non-negative remainder so values that arrive outside
// [1, size] still land inside the ring.
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
