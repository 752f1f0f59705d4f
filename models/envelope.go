// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Envelope is the persisted, encrypted representation of the item
// collection. It is fully self-contained: the salt and nonce required to
// re-derive the key and authenticate the ciphertext travel with the data.
//
// The JSON encoding uses base64 (standard encoding, via encoding/json's
// []byte handling) for all three fields and must round-trip bit-exactly:
//
//	{"salt":"...16 bytes...","iv":"...12 bytes...","data":"...ct+tag..."}
type Envelope struct {
	// Salt is the 16-byte random KDF salt the key was derived with.
	// Not a secret; stored in the clear.
	Salt []byte `json:"salt"`

	// Nonce is the 12-byte AES-GCM nonce. Fresh for every seal; reuse
	// under the same key voids the authentication guarantee.
	Nonce []byte `json:"iv"`

	// Data is the AES-256-GCM output: ciphertext followed by the 16-byte
	// authentication tag.
	Data []byte `json:"data"`
}

// Sizes of the Envelope's fixed-length fields.
const (
	// SaltSize is the length of Envelope.Salt in bytes.
	SaltSize = 16

	// NonceSize is the length of Envelope.Nonce in bytes.
	NonceSize = 12
)
