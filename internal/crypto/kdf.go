// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"

	"golang.org/x/crypto/pbkdf2"
)

// Fixed key-derivation parameters. They are part of the persisted envelope
// format: reads and writes must agree on them bit-exactly, so they are
// constants rather than configuration.
const (
	// kdfIterations is the PBKDF2 iteration count. Deliberately slow so
	// that brute-forcing a 4-6 digit PIN is costly.
	kdfIterations = 100_000

	// kdfKeyLen is the derived key length in bytes (AES-256).
	kdfKeyLen = 32
)

// DeriveKey derives a 256-bit AES key from a PIN and a 16-byte salt using
// PBKDF2-HMAC-SHA256 with 100,000 iterations. Deterministic for identical
// inputs and free of side effects. PIN shape (4-6 ASCII digits, non-empty)
// is the caller's contract, enforced by the vault service, not here.
func DeriveKey(pin string, salt []byte) []byte {
	return pbkdf2.Key([]byte(pin), salt, kdfIterations, kdfKeyLen, sha256.New)
}
