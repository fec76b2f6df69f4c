/*
snapshot.go - Store serialization and snapshot persistence

PURPOSE:
  The browser original persisted its state container verbatim in local
  storage under a single namespaced key. The server-side analog: the
  Store serializes to a Snapshot, a SnapshotStore persists the JSON blob
  under SnapshotKey, and RestoreFrom loads it back on boot. An absent or
  malformed snapshot falls back to the initial state without error.

NOT PERSISTED:
  Ephemeral UI state - loading slots, notifications, errors, and the
  transient date selection - is deliberately excluded. A restored
  session starts with clean queues and idle loading slots.

SEE ALSO:
  - store/sqlite: SQLite-backed SnapshotStore
  - store/memory: In-memory SnapshotStore for tests
*/
package state

import (
	"context"
	"encoding/json"

	"github.com/alfie/leave-planner/domain"
)

// SnapshotKey is the single namespaced key the store is persisted under.
const SnapshotKey = "alfie/state/v1"

// =============================================================================
// SNAPSHOT STORE - Persistence boundary
// =============================================================================

// SnapshotStore is a namespaced key-value blob store. Get returns
// (nil, nil) when the key is absent.
type SnapshotStore interface {
	Put(ctx context.Context, key string, value []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is the persisted shape of the store's durable state.
type Snapshot struct {
	View     domain.CalendarView    `json:"view"`
	Events   []domain.CalendarEvent `json:"events"`
	Balances domain.LeaveBalances   `json:"balances"`
	Team     []domain.TeamMember    `json:"team"`
}

// Snapshot captures the durable state under the read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]domain.CalendarEvent, len(s.events))
	copy(events, s.events)
	team := make([]domain.TeamMember, len(s.team))
	copy(team, s.team)

	return Snapshot{
		View:     s.view,
		Events:   events,
		Balances: s.balances.Clone(),
		Team:     team,
	}
}

// SaveTo serializes the store and persists it under SnapshotKey.
func (s *Store) SaveTo(ctx context.Context, kv SnapshotStore) error {
	data, err := json.Marshal(s.Snapshot())
	if err != nil {
		return err
	}
	return kv.Put(ctx, SnapshotKey, data)
}

// RestoreFrom loads the persisted snapshot and applies it. An absent or
// malformed snapshot leaves the store at its initial state and returns
// nil; only a failing backend surfaces an error.
func (s *Store) RestoreFrom(ctx context.Context, kv SnapshotStore) error {
	data, err := kv.Get(ctx, SnapshotKey)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil
	}
	if !snap.View.Valid() {
		snap.View = domain.ViewMonth
	}
	if snap.Balances == nil {
		snap.Balances = domain.DefaultBalances()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.view = snap.View
	s.events = snap.Events
	s.balances = snap.Balances
	s.team = snap.Team
	return nil
}
