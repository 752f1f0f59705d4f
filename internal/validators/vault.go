// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input checks the engine enforces before any
// cryptographic work happens. The presentation layer is expected to run the
// same checks first for friendlier feedback; the engine re-checks because
// it cannot trust its callers.
package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/pin-vault/models"
)

var (
	// ErrInvalidPIN is returned when the PIN is not 4 to 6 ASCII digits.
	ErrInvalidPIN = errors.New("pin must be 4-6 digits")

	// ErrEmptyTitle is returned when an item is created or updated with an
	// empty title.
	ErrEmptyTitle = errors.New("item title must not be empty")

	// ErrInvalidCategory is returned when an item carries a category
	// outside the closed set.
	ErrInvalidCategory = errors.New("unknown item category")
)

// PIN length bounds, inclusive.
const (
	MinPINLen = 4
	MaxPINLen = 6
)

// ValidatePIN checks that pin consists of 4 to 6 ASCII digits.
func ValidatePIN(pin string) error {
	if len(pin) < MinPINLen || len(pin) > MaxPINLen {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}

// ValidateItem checks the persistence preconditions of a vault item: a
// non-blank title and a known category.
func ValidateItem(item models.VaultItem) error {
	if strings.TrimSpace(item.Title) == "" {
		return ErrEmptyTitle
	}
	if !item.Category.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, item.Category)
	}
	return nil
}
