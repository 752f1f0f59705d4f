// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/pin-vault/models"
)

// RemoteConfig holds the connection settings for [NewRemoteAdapter].
type RemoteConfig struct {
	// BaseURL is the vaultsyncd endpoint, e.g. "http://localhost:8080".
	BaseURL string

	// Token is the static bearer token expected by the server. Transport
	// authentication beyond this token is out of scope; the channel is
	// assumed already secured.
	Token string

	// Timeout bounds every request. Defaults to 15s when zero.
	Timeout time.Duration
}

// remoteAdapter persists the envelope on a vaultsyncd server over HTTP.
// The server exposes the blob at a single resource; PUT replaces it
// wholesale, so the atomicity contract holds as long as the server applies
// each PUT atomically (vaultsyncd delegates to a local adapter that does).
type remoteAdapter struct {
	client *resty.Client
}

// NewRemoteAdapter constructs a [PersistenceAdapter] backed by a vaultsyncd
// server.
func NewRemoteAdapter(cfg RemoteConfig) PersistenceAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)
	if cfg.Token != "" {
		cli.SetAuthToken(cfg.Token)
	}

	return &remoteAdapter{client: cli}
}

// Load implements [PersistenceAdapter]. It GETs /api/v1/vault and decodes
// the envelope. A 404 means no vault has been configured yet.
func (r *remoteAdapter) Load(ctx context.Context) (models.Envelope, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		Get("/api/v1/vault")
	if err != nil {
		return models.Envelope{}, fmt.Errorf("%w: load request: %w", ErrStorage, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return models.Envelope{}, ErrEnvelopeNotFound
	}
	if resp.IsError() {
		return models.Envelope{}, fmt.Errorf("%w: load: server returned %s", ErrStorage, resp.Status())
	}

	var env models.Envelope
	if err = json.Unmarshal(resp.Body(), &env); err != nil {
		return models.Envelope{}, fmt.Errorf("%w: decode envelope: %w", ErrStorage, err)
	}

	return env, nil
}

// Save implements [PersistenceAdapter]. It PUTs the envelope to
// /api/v1/vault, replacing whatever the server held before.
func (r *remoteAdapter) Save(ctx context.Context, env models.Envelope) error {
	resp, err := r.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(env).
		Put("/api/v1/vault")
	if err != nil {
		return fmt.Errorf("%w: save request: %w", ErrStorage, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: save: server returned %s", ErrStorage, resp.Status())
	}

	return nil
}

// Exists implements [PersistenceAdapter]. It probes the resource with HEAD.
func (r *remoteAdapter) Exists(ctx context.Context) (bool, error) {
	resp, err := r.client.R().
		SetContext(ctx).
		Head("/api/v1/vault")
	if err != nil {
		return false, fmt.Errorf("%w: exists request: %w", ErrStorage, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if resp.IsError() {
		return false, fmt.Errorf("%w: exists: server returned %s", ErrStorage, resp.Status())
	}

	return true, nil
}
