// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultState describes where the vault is in its lifecycle.
//
// The state machine is small and cyclic:
//
//	Uninitialized --SetupPin--> Unlocked
//	Locked --Unlock(ok)--> Unlocked
//	Locked --Unlock(bad pin)--> Locked
//	Unlocked --Lock--> Locked
type VaultState int

const (
	// Uninitialized means no envelope has ever been persisted: there is no
	// vault yet and SetupPin is the only valid operation.
	Uninitialized VaultState = iota

	// Locked means an envelope exists on the backend but has not been
	// decrypted in this session.
	Locked

	// Unlocked means the plaintext item collection is held in memory.
	// The PIN itself is never retained beyond the operation that needs it.
	Unlocked
)

// String implements fmt.Stringer.
func (s VaultState) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Locked:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}
