package flow

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memSnapshotStore struct {
	snap *Snapshot
}

func (m *memSnapshotStore) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	m.snap = snap
	return nil
}

func (m *memSnapshotStore) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	return m.snap, nil
}

func (m *memSnapshotStore) ClearSnapshot(ctx context.Context) error {
	m.snap = nil
	return nil
}

func TestSessionCache_EmptyHasNothingPending(t *testing.T) {
	cache := NewSessionCache(nil)
	_, ok := cache.Pending(context.Background())
	assert.False(t, ok)
}

func TestSessionCache_SingleSlotOverwrite(t *testing.T) {
	cache := NewSessionCache(nil)
	ctx := context.Background()

	first := makeSession(2, 60)
	first.ID = "first"
	require.NoError(t, cache.Put(ctx, first, 0))

	second := makeSession(2, 60)
	second.ID = "second"
	require.NoError(t, cache.Put(ctx, second, 1))

	snap, ok := cache.Pending(ctx)
	require.True(t, ok)
	assert.Equal(t, "second", snap.Session.ID)
	assert.Equal(t, 1, snap.CurrentIndex)
}

func TestSessionCache_FinishedSessionNotPending(t *testing.T) {
	cache := NewSessionCache(nil)
	ctx := context.Background()

	s := makeSession(1, 60)
	s.Finished = true
	require.NoError(t, cache.Put(ctx, s, 0))

	_, ok := cache.Pending(ctx)
	assert.False(t, ok)
}

func TestSessionCache_Clear(t *testing.T) {
	store := &memSnapshotStore{}
	cache := NewSessionCache(store)
	ctx := context.Background()

	require.NoError(t, cache.Put(ctx, makeSession(1, 60), 0))
	require.NoError(t, cache.Clear(ctx))

	_, ok := cache.Pending(ctx)
	assert.False(t, ok)
	assert.Nil(t, store.snap, "backing store slot cleared too")
}

func TestSessionCache_FallsBackToBackingStore(t *testing.T) {
	ctx := context.Background()
	store := &memSnapshotStore{}

	first := NewSessionCache(store)
	s := makeSession(3, 60)
	require.NoError(t, first.Put(ctx, s, 2))

	// a fresh cache simulates a restarted process sharing the same store
	second := NewSessionCache(store)
	snap, ok := second.Pending(ctx)
	require.True(t, ok)
	assert.Equal(t, s.ID, snap.Session.ID)
	assert.Equal(t, 2, snap.CurrentIndex)
}

func TestSessionCache_NilStoreIsInMemoryOnly(t *testing.T) {
	ctx := context.Background()
	cache := NewSessionCache(nil)
	require.NoError(t, cache.Put(ctx, makeSession(1, 60), 0))
	require.NoError(t, cache.Clear(ctx))
}
