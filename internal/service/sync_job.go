// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/pin-vault/internal/logger"
	"github.com/MKhiriev/pin-vault/internal/store"
)

// syncJob mirrors the locally persisted envelope to a remote backend on a
// ticker. It only ever moves sealed ciphertext, so it runs without a PIN
// and regardless of the vault's lock state.
type syncJob struct {
	local  store.PersistenceAdapter
	remote store.PersistenceAdapter
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a syncJob that pushes the local envelope to remote on
// a ticker. The job is idle until Start is called.
func NewSyncJob(local, remote store.PersistenceAdapter, log *logger.Logger) SyncJob {
	return &syncJob{local: local, remote: remote, logger: log}
}

// Start implements [SyncJob]. It stops any previously running job, then
// launches a background goroutine that pushes every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when
// ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.push(jobCtx); err != nil {
					j.logger.Err(err).Msg("envelope sync failed")
				}
			}
		}
	}()
}

// Stop implements [SyncJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// push uploads the local envelope to the remote backend when the two
// differ. No local envelope is not an error: there is simply nothing to
// mirror yet.
func (j *syncJob) push(ctx context.Context) error {
	env, err := j.local.Load(ctx)
	if errors.Is(err, store.ErrEnvelopeNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if remote, err := j.remote.Load(ctx); err == nil {
		if bytes.Equal(remote.Salt, env.Salt) &&
			bytes.Equal(remote.Nonce, env.Nonce) &&
			bytes.Equal(remote.Data, env.Data) {
			return nil
		}
	}

	if err = j.remote.Save(ctx, env); err != nil {
		return err
	}

	j.logger.Debug().Msg("envelope mirrored to remote")
	return nil
}
