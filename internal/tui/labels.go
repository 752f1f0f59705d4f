// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/pin-vault/models"

// fieldLabels maps a category to the captions shown for the primary and
// secondary fields. Pure presentation concern; the engine stores the fields
// without interpretation.
func fieldLabels(c models.Category) (primary, secondary string) {
	switch c {
	case models.Login:
		return "Username", "Password"
	case models.CreditCard:
		return "Card number", "CVV"
	case models.WiFi:
		return "SSID", "Password"
	default:
		return "Content", "Extra"
	}
}

// categoryIcon returns the short list marker for a category.
func categoryIcon(c models.Category) string {
	switch c {
	case models.Login:
		return "[L]"
	case models.CreditCard:
		return "[$]"
	case models.WiFi:
		return "[W]"
	case models.Note:
		return "[N]"
	default:
		return "[?]"
	}
}

// secretField reports whether the secondary field of the category should be
// masked until the user reveals it.
func secretField(c models.Category) bool {
	switch c {
	case models.Login, models.CreditCard, models.WiFi:
		return true
	}
	return false
}
