// store/snapshot_store.go
package store

import (
	"errors"
	"sync/atomic"
	"time"

	"erpdash/models"
)

// ErrNoData is returned by reads that happen before the first successful
// publish.
var ErrNoData = errors.New("no data available yet")

// SnapshotStore holds the current published snapshot. Publish swaps a
// single pointer, so readers are never blocked for longer than a load and
// can never observe a half-replaced snapshot. The refresh orchestrator is
// the sole writer; snapshots are immutable once published.
type SnapshotStore struct {
	current atomic.Pointer[models.Snapshot]
}

func New() *SnapshotStore {
	return &SnapshotStore{}
}

// Publish atomically replaces the current snapshot.
func (s *SnapshotStore) Publish(snap *models.Snapshot) {
	s.current.Store(snap)
}

// Current returns the published snapshot, or ErrNoData before the first
// publish.
func (s *SnapshotStore) Current() (*models.Snapshot, error) {
	snap := s.current.Load()
	if snap == nil {
		return nil, ErrNoData
	}
	return snap, nil
}

// LastUpdated reports the capture time of the current snapshot.
func (s *SnapshotStore) LastUpdated() (time.Time, bool) {
	snap := s.current.Load()
	if snap == nil {
		return time.Time{}, false
	}
	return snap.CapturedAt, true
}
