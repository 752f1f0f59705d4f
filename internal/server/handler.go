// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server implements the HTTP surface of vaultsyncd: a single blob
// resource holding the encrypted envelope. The server never sees a PIN or
// plaintext; it stores whatever sealed bytes a client uploads.
package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/pin-vault/internal/logger"
	"github.com/MKhiriev/pin-vault/internal/store"
	"github.com/MKhiriev/pin-vault/models"
)

// Handler serves the envelope resource backed by a local persistence
// adapter.
type Handler struct {
	adapter store.PersistenceAdapter
	token   string

	logger *logger.Logger
}

// NewHandler constructs a Handler over adapter. token is the bearer token
// required on every request; empty disables the check.
func NewHandler(adapter store.PersistenceAdapter, token string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		adapter: adapter,
		token:   token,
		logger:  logger,
	}
}

// getVault handles GET /api/v1/vault. 404 means no envelope has been
// uploaded yet.
func (h *Handler) getVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	env, err := h.adapter.Load(r.Context())
	if err != nil {
		if errors.Is(err, store.ErrEnvelopeNotFound) {
			http.Error(w, "no vault", http.StatusNotFound)
			return
		}
		log.Err(err).Msg("load envelope failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(env); err != nil {
		log.Err(err).Msg("encode envelope failed")
	}
}

// headVault handles HEAD /api/v1/vault: an existence probe.
func (h *Handler) headVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	exists, err := h.adapter.Exists(r.Context())
	if err != nil {
		log.Err(err).Msg("probe envelope failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !exists {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// putVault handles PUT /api/v1/vault: a wholesale replace of the envelope.
// The payload is validated structurally (well-formed JSON, correctly sized
// salt and nonce) but never decrypted.
func (h *Handler) putVault(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var env models.Envelope
	if err := json.NewDecoder(r.Body).Decode(&env); err != nil {
		log.Err(err).Msg("invalid envelope payload")
		http.Error(w, "invalid envelope payload", http.StatusBadRequest)
		return
	}
	if len(env.Salt) != models.SaltSize || len(env.Nonce) != models.NonceSize || len(env.Data) == 0 {
		http.Error(w, "malformed envelope", http.StatusBadRequest)
		return
	}

	if err := h.adapter.Save(r.Context(), env); err != nil {
		log.Err(err).Msg("save envelope failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
