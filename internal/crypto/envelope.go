// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/pin-vault/models"
)

// ErrAuthentication is returned by [EnvelopeCipher.Open] when decryption
// fails. Wrong PIN, corrupted ciphertext, and truncation all collapse into
// this one error: AES-GCM cannot tell them apart, and distinguishing them
// would only hand an attacker an oracle.
var ErrAuthentication = errors.New("wrong PIN or corrupted envelope")

// envelopeCipher is the private implementation of [EnvelopeCipher].
type envelopeCipher struct {
	// rand is the entropy source for salts and nonces. crypto/rand.Reader
	// in production; swappable in tests to simulate entropy failure.
	rand io.Reader
}

// NewEnvelopeCipher constructs an [EnvelopeCipher] backed by the OS CSPRNG.
func NewEnvelopeCipher() EnvelopeCipher {
	return &envelopeCipher{rand: rand.Reader}
}

// Seal implements [EnvelopeCipher]. It generates a fresh 16-byte salt and
// 12-byte nonce, derives the key via [DeriveKey], and encrypts plaintext
// with AES-256-GCM. Salt and nonce are never reused across calls. Returns
// an error if the entropy read or cipher construction fails.
func (c *envelopeCipher) Seal(plaintext []byte, pin string) (models.Envelope, error) {
	salt := make([]byte, models.SaltSize)
	if _, err := io.ReadFull(c.rand, salt); err != nil {
		return models.Envelope{}, fmt.Errorf("generate salt: %w", err)
	}

	nonce := make([]byte, models.NonceSize)
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return models.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	gcm, err := newGCM(DeriveKey(pin, salt))
	if err != nil {
		return models.Envelope{}, err
	}

	return models.Envelope{
		Salt:  salt,
		Nonce: nonce,
		Data:  gcm.Seal(nil, nonce, plaintext, nil),
	}, nil
}

// Open implements [EnvelopeCipher]. It derives the key from the envelope's
// embedded salt and the supplied pin and performs authenticated decryption.
// Any authentication failure is reported as [ErrAuthentication].
func (c *envelopeCipher) Open(env models.Envelope, pin string) ([]byte, error) {
	// Reject malformed envelopes up front. They count as tampering and get
	// the same error as a wrong PIN.
	if len(env.Salt) != models.SaltSize || len(env.Nonce) != models.NonceSize {
		return nil, ErrAuthentication
	}

	gcm, err := newGCM(DeriveKey(pin, env.Salt))
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, env.Nonce, env.Data, nil)
	if err != nil {
		return nil, ErrAuthentication
	}

	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}
