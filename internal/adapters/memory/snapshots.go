// Package memory backs the snapshot store with a map for deployments that
// run without a database.
package memory

import (
	"context"
	"sync"
	"time"

	"leadfair/internal/domain"
	"leadfair/internal/ports"
)

type SnapshotStore struct {
	mu    sync.RWMutex
	snaps map[string]domain.Snapshot
}

func NewSnapshotStore() *SnapshotStore {
	return &SnapshotStore{snaps: make(map[string]domain.Snapshot)}
}

func (s *SnapshotStore) Save(_ context.Context, snap domain.Snapshot) error {
	snap.UpdatedAt = time.Now().UTC()
	s.mu.Lock()
	s.snaps[snap.Key] = snap
	s.mu.Unlock()
	return nil
}

func (s *SnapshotStore) Get(_ context.Context, key string) (domain.Snapshot, error) {
	s.mu.RLock()
	snap, ok := s.snaps[key]
	s.mu.RUnlock()
	if !ok {
		return domain.Snapshot{}, ports.ErrNotFound
	}
	return snap, nil
}

func (s *SnapshotStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.snaps, key)
	s.mu.Unlock()
	return nil
}
