// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cipher implements the keyed reversible transform used by the vault.
//
// The transform works on ordinals, not on bytes. A [Codec] maps text to
// 1-based positions in an [Alphabet] and back, and an [Engine] combines a
// message ordinal sequence with a cycling key ordinal sequence.
//
// Two arithmetic modes exist and are fixed when an [Engine] is built:
//
//   - [ModeModular] keeps every ordinal inside [1, size]. Ciphertext is always
//     renderable and any key decrypts to some plausible text.
//   - [ModeUnbounded] adds and subtracts ordinals without wrapping. A wrong
//     key can push ordinals outside every valid code point, which
//     [Codec.TextOf] reports as a [*RenderError].
//
// Wrong keys:
//
// Neither mode authenticates the key. Under ModeModular a wrong key yields a
// different but valid-looking plaintext and no error at all. Under
// ModeUnbounded a wrong key is only sometimes detectable. The absence of an
// error is never proof that the key was right.
//
// This is an obfuscation scheme, not encryption. It offers no
// confidentiality against anyone who has the stored data.
package cipher
