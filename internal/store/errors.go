package store

import "errors"

// Sentinel errors returned by persistence adapters to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrEnvelopeNotFound is returned by Load when the backend holds no
	// envelope, i.e. no vault has been configured yet.
	ErrEnvelopeNotFound = errors.New("no envelope persisted")

	// ErrStorage is wrapped around any backend read/write fault (I/O
	// error, quota, unreachable remote). The previously persisted envelope
	// is assumed intact when a Save fails with it.
	ErrStorage = errors.New("storage backend failure")
)
