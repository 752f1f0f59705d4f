// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Category defines the semantic type of a vault item.
// The value determines which captions the presentation layer shows for the
// primary and secondary fields; the engine never interprets it.
type Category string

const (
	// Login represents authentication credentials: a username and a password.
	Login Category = "Login"

	// CreditCard represents payment card information: a card number and a
	// security code.
	CreditCard Category = "CreditCard"

	// WiFi represents wireless network credentials: an SSID and a password.
	WiFi Category = "WiFi"

	// Note represents a free-form secure note.
	Note Category = "Note"

	// Other represents any secret that does not fit the categories above.
	Other Category = "Other"
)

// Categories lists every valid Category in presentation order.
var Categories = []Category{Login, CreditCard, WiFi, Note, Other}

// Valid reports whether c is one of the closed set of categories.
func (c Category) Valid() bool {
	switch c {
	case Login, CreditCard, WiFi, Note, Other:
		return true
	}
	return false
}

// VaultItem is a single decrypted secret held in the vault.
// It exists in plaintext only while the vault is unlocked; at rest the whole
// collection is serialized and sealed into an [Envelope].
type VaultItem struct {
	// ID is the unique identifier of the item. Assigned once at creation
	// and immutable afterwards.
	ID string `json:"id"`

	// Title is the user-visible name of the item. Required and non-empty
	// for persistence.
	Title string `json:"title"`

	// Category selects how PrimaryField and SecondaryField are interpreted
	// by the presentation layer.
	Category Category `json:"category"`

	// PrimaryField holds the main secret value (username, card number,
	// SSID, or note body depending on Category).
	PrimaryField string `json:"primaryField"`

	// SecondaryField holds the companion secret value (password, CVV, ...).
	// Optional.
	SecondaryField string `json:"secondaryField,omitempty"`

	// Notes holds free-form remarks attached to the item. Optional.
	Notes string `json:"notes,omitempty"`
}

// ItemCollection is the ordered set of vault items. Insertion order is
// preserved across seal/open round-trips; item IDs are unique across the
// collection (enforced by the vault service on every mutation).
type ItemCollection []VaultItem

// Clone returns a deep copy of the collection. Mutating the copy never
// affects the receiver.
func (c ItemCollection) Clone() ItemCollection {
	if c == nil {
		return nil
	}
	out := make(ItemCollection, len(c))
	copy(out, c)
	return out
}
