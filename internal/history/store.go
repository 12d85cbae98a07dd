// Package history keeps the durable, cross-session list of output artifacts.
// Every mutation persists the whole updated list to the key-value collaborator
// before the in-memory view commits; if the collaborator fails, the store
// degrades to in-memory-only operation instead of failing the session.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/clipforge/clipforge/internal/export"
	"github.com/clipforge/clipforge/internal/session"
	"github.com/clipforge/clipforge/internal/storage"
)

// ErrArtifactNotFound is returned by Get for an unknown artifact id.
var ErrArtifactNotFound = errors.New("artifact not found")

// Store owns the ordered artifact history.
type Store struct {
	mu     sync.Mutex
	kv     storage.KV
	key    string
	logger *slog.Logger

	artifacts []export.Artifact
	degraded  bool
	watchers  []func([]export.Artifact)
}

// NewStore hydrates a history store from the durable collaborator. A missing
// or malformed payload yields an empty history, never a startup failure.
func NewStore(ctx context.Context, kv storage.KV, key string, logger *slog.Logger) *Store {
	s := &Store{kv: kv, key: key, logger: logger}

	raw, err := kv.Load(ctx, key)
	if err != nil {
		if logger != nil {
			logger.Warn("history load failed, starting empty", "error", err)
		}
		return s
	}
	if raw == nil {
		return s
	}

	var artifacts []export.Artifact
	if err := json.Unmarshal(raw, &artifacts); err != nil {
		if logger != nil {
			logger.Warn("malformed history payload, starting empty", "error", err)
		}
		return s
	}

	s.artifacts = artifacts
	if logger != nil {
		logger.Info("history hydrated", "artifacts", len(artifacts))
	}
	return s
}

// OnChange registers fn to be called with a fresh copy of the list after
// every successful mutation. Callbacks run outside the store lock.
func (s *Store) OnChange(fn func([]export.Artifact)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// Save appends an artifact and persists the updated list.
func (s *Store) Save(ctx context.Context, a export.Artifact) {
	s.mu.Lock()
	next := append(cloneArtifacts(s.artifacts), cloneArtifact(a))
	s.commitLocked(ctx, next)
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()

	if s.logger != nil {
		s.logger.Info("artifact saved to history", "artifact_id", a.ID, "title", a.Title)
	}
}

// List returns a copy of the ordered artifact history.
func (s *Store) List(_ context.Context) []export.Artifact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneArtifacts(s.artifacts)
}

// Get returns the artifact with the given id, or ErrArtifactNotFound.
func (s *Store) Get(_ context.Context, id string) (export.Artifact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.artifacts {
		if a.ID == id {
			return cloneArtifact(a), nil
		}
	}
	return export.Artifact{}, fmt.Errorf("%w: %s", ErrArtifactNotFound, id)
}

// Update replaces the entry whose id matches. No matching entry leaves the
// history unchanged; this is how url repair is applied.
func (s *Store) Update(ctx context.Context, a export.Artifact) {
	s.mu.Lock()
	replaced := false
	next := cloneArtifacts(s.artifacts)
	for i := range next {
		if next[i].ID == a.ID {
			next[i] = cloneArtifact(a)
			replaced = true
			break
		}
	}
	if !replaced {
		s.mu.Unlock()
		return
	}
	s.commitLocked(ctx, next)
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// Delete removes the matching entry. Absent ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	next := cloneArtifacts(s.artifacts)
	removed := false
	for i := range next {
		if next[i].ID == id {
			next = append(next[:i], next[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		s.mu.Unlock()
		return
	}
	s.commitLocked(ctx, next)
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// Clear empties the history and removes the durable entry.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	if err := s.kv.Remove(ctx, s.key); err != nil {
		s.degraded = true
		if s.logger != nil {
			s.logger.Warn("history clear not persisted, continuing in memory", "error", err)
		}
	}
	s.artifacts = nil
	notify := s.notifyLocked()
	s.mu.Unlock()
	notify()
}

// Degraded reports whether a persistence failure has been observed; the
// in-memory view is still authoritative for the running process.
func (s *Store) Degraded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.degraded
}

// commitLocked persists next and then installs it as the in-memory view.
// A persistence failure flips the store into degraded in-memory-only mode
// but never loses the mutation for the running process.
func (s *Store) commitLocked(ctx context.Context, next []export.Artifact) {
	raw, err := json.Marshal(next)
	if err == nil {
		err = s.kv.Store(ctx, s.key, raw)
	}
	if err != nil {
		s.degraded = true
		if s.logger != nil {
			s.logger.Warn("history write not persisted, continuing in memory", "error", err)
		}
	}
	s.artifacts = next
}

func (s *Store) notifyLocked() func() {
	if len(s.watchers) == 0 {
		return func() {}
	}
	watchers := append([]func([]export.Artifact){}, s.watchers...)
	snapshot := cloneArtifacts(s.artifacts)
	return func() {
		for _, fn := range watchers {
			fn(snapshot)
		}
	}
}

func cloneArtifact(a export.Artifact) export.Artifact {
	a.Clips = append([]session.Clip(nil), a.Clips...)
	return a
}

func cloneArtifacts(in []export.Artifact) []export.Artifact {
	out := make([]export.Artifact, len(in))
	for i, a := range in {
		out[i] = cloneArtifact(a)
	}
	return out
}
