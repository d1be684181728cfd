package flow

import (
	"context"
	"sync"

	"github.com/007VICKY007/Swipe-Prototype/pkg/model"
)

// Snapshot mirrors server state plus the locally tracked question pointer.
// It is not authoritative: the server's returned session always wins.
type Snapshot struct {
	Session      *model.Session `json:"session"`
	CurrentIndex int            `json:"currentIndex"`
}

// SnapshotStore optionally persists the single snapshot slot so an interview
// can be resumed after a process restart.
type SnapshotStore interface {
	SaveSnapshot(ctx context.Context, snap *Snapshot) error
	LoadSnapshot(ctx context.Context) (*Snapshot, error)
	ClearSnapshot(ctx context.Context) error
}

// SessionCache holds at most one in-progress session. Starting a new session
// overwrites the slot; completing one clears it. Discarding a snapshot does
// not cancel anything server-side: the abandoned session simply stays
// unfinished in the store.
type SessionCache struct {
	mu    sync.Mutex
	snap  *Snapshot
	store SnapshotStore
}

// NewSessionCache builds a cache; store may be nil for a purely in-memory
// slot.
func NewSessionCache(store SnapshotStore) *SessionCache {
	return &SessionCache{store: store}
}

func (c *SessionCache) Put(ctx context.Context, session *model.Session, currentIndex int) error {
	c.mu.Lock()
	snap := &Snapshot{Session: session, CurrentIndex: currentIndex}
	c.snap = snap
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	return c.store.SaveSnapshot(ctx, snap)
}

// Pending returns the cached unfinished session, if any. When the local slot
// is empty it falls back to the backing store, which is how a restarted
// process offers continue-or-restart.
func (c *SessionCache) Pending(ctx context.Context) (*Snapshot, bool) {
	c.mu.Lock()
	snap := c.snap
	c.mu.Unlock()

	if snap == nil && c.store != nil {
		loaded, err := c.store.LoadSnapshot(ctx)
		if err != nil || loaded == nil {
			return nil, false
		}
		c.mu.Lock()
		c.snap = loaded
		c.mu.Unlock()
		snap = loaded
	}

	if snap == nil || snap.Session == nil || snap.Session.Finished {
		return nil, false
	}
	return snap, true
}

func (c *SessionCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	c.snap = nil
	c.mu.Unlock()

	if c.store == nil {
		return nil
	}
	return c.store.ClearSnapshot(ctx)
}
