// Package identity tracks the currently signed-in identity as an
// explicitly owned, single-writer state container. It replaces the ambient
// mutable session state of the original front-end: consumers read immutable
// snapshots or subscribe to change notifications, and the holder performs
// exactly one profile lookup per sign-in.
package identity

import (
	"context"
	"fmt"
	"sync"
)

// State is the lifecycle phase of the holder.
type State int

const (
	// StateLoading means the identity has not been resolved yet. Reads
	// during this phase are indeterminate and consumers should defer
	// acting on them.
	StateLoading State = iota
	StateAnonymous
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAnonymous:
		return "anonymous"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// Identity is the resolved profile of a signed-in user.
type Identity struct {
	UID       string
	Email     string
	FirstName string
	LastName  string
	Role      string
}

// Snapshot is an immutable read of the holder's state.
type Snapshot struct {
	State    State
	Identity *Identity // nil unless State is StateAuthenticated
}

// LookupFunc resolves a uid into profile data, typically backed by the
// user service.
type LookupFunc func(ctx context.Context, uid string) (Identity, error)

// Holder is the single-writer container. Resolve and Clear are the only
// mutation paths; everything else observes.
type Holder struct {
	lookup LookupFunc

	mu      sync.RWMutex
	state   State
	current *Identity
	subs    map[chan Snapshot]struct{}
}

// NewHolder creates a Holder in the loading state.
func NewHolder(lookup LookupFunc) *Holder {
	return &Holder{
		lookup: lookup,
		state:  StateLoading,
		subs:   make(map[chan Snapshot]struct{}),
	}
}

// Snapshot returns the current state and identity.
func (h *Holder) Snapshot() Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snapshotLocked()
}

// Subscribe registers a listener for identity changes. The returned cancel
// function releases the subscription and closes the channel, so consumers
// can range over it; cancel is safe to call more than once. Notifications
// are delivered best-effort: a subscriber that is not draining its channel
// misses intermediate states, never blocks the writer.
func (h *Holder) Subscribe() (<-chan Snapshot, func()) {
	ch := make(chan Snapshot, 1)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			// Sends happen under the same mutex, so closing here
			// cannot race a notification.
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Resolve handles a sign-in event: it performs a single profile lookup for
// the uid and transitions the holder to authenticated. On lookup failure
// the holder transitions to anonymous so consumers never act on a half
// resolved identity.
func (h *Holder) Resolve(ctx context.Context, uid string) error {
	ident, err := h.lookup(ctx, uid)
	if err != nil {
		h.set(StateAnonymous, nil)
		return fmt.Errorf("resolve identity %s: %w", uid, err)
	}

	h.set(StateAuthenticated, &ident)
	return nil
}

// Clear handles a sign-out event.
func (h *Holder) Clear() {
	h.set(StateAnonymous, nil)
}

func (h *Holder) set(state State, ident *Identity) {
	h.mu.Lock()
	h.state = state
	h.current = ident
	snap := h.snapshotLocked()
	for ch := range h.subs {
		select {
		case ch <- snap:
		default:
			// Drop the stale notification and replace it with the
			// current one so slow subscribers converge on the latest
			// state.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- snap:
			default:
			}
		}
	}
	h.mu.Unlock()
}

func (h *Holder) snapshotLocked() Snapshot {
	var ident *Identity
	if h.current != nil {
		copied := *h.current
		ident = &copied
	}
	return Snapshot{State: h.state, Identity: ident}
}
