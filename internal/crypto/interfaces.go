package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/envelope_cipher_mock.go -package=mock

import "github.com/MKhiriev/pin-vault/models"

// EnvelopeCipher seals and opens the vault's persisted envelopes. It knows
// nothing about storage, items, or sessions; its only job is authenticated
// encryption under a PIN-derived key.
//
// Scheme:
//
//	key = PBKDF2-HMAC-SHA256(pin, salt, 100000 iters, 32 bytes)
//	data = AES-256-GCM(key, nonce, plaintext)
//
// Both Seal and Open are CPU-bound (the derivation alone runs 100,000
// iterations); callers that serve an event loop should run them off the hot
// path.
type EnvelopeCipher interface {
	// Seal encrypts plaintext under pin with a fresh random salt and nonce
	// and returns a self-contained envelope. It fails only if the OS
	// entropy source is unavailable; randomness is never fabricated.
	Seal(plaintext []byte, pin string) (models.Envelope, error)

	// Open decrypts an envelope with the key derived from the supplied pin
	// and the envelope's own salt. A wrong PIN, a tampered ciphertext, and
	// a truncated envelope are indistinguishable by construction and all
	// surface as [ErrAuthentication]. Callers must present them as one
	// generic "wrong PIN or corrupted data" condition.
	Open(env models.Envelope, pin string) ([]byte, error)
}
