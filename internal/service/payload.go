// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/pin-vault/models"
)

// encodeCollection serializes the collection into the plaintext payload
// that gets sealed: a JSON array of records with the fields id, title,
// category, primaryField, secondaryField, notes. An empty collection
// encodes as an empty array, never as null, so that the very first
// envelope round-trips the same way as every later one.
func encodeCollection(items models.ItemCollection) ([]byte, error) {
	if items == nil {
		items = models.ItemCollection{}
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}

	return data, nil
}

// decodeCollection parses a payload produced by encodeCollection.
func decodeCollection(data []byte) (models.ItemCollection, error) {
	var items models.ItemCollection
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode collection: %w", err)
	}

	if items == nil {
		items = models.ItemCollection{}
	}
	return items, nil
}
