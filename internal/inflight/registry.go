// Package inflight tracks the latest request of each view slot so that a
// newer request cancels the stale one it replaces.
package inflight

import (
	"context"
	"errors"
	"sync"
)

// ErrSuperseded is the cancellation cause of a request replaced by a newer one.
var ErrSuperseded = errors.New("request superseded")

type Registry struct {
	mu    sync.Mutex
	slots map[string]*Request
}

func NewRegistry() *Registry {
	return &Registry{slots: make(map[string]*Request)}
}

// Request is one registered fetch, identified by its dependency key
// (e.g. "NOTICE|3" for a list page).
type Request struct {
	reg    *Registry
	slot   string
	key    string
	ctx    context.Context
	cancel context.CancelCauseFunc
}

// Begin registers a request under slot. Any request the slot already holds
// is cancelled with ErrSuperseded, whatever its key.
func (r *Registry) Begin(parent context.Context, slot, key string) *Request {
	ctx, cancel := context.WithCancelCause(parent)
	q := &Request{reg: r, slot: slot, key: key, ctx: ctx, cancel: cancel}

	r.mu.Lock()
	prev := r.slots[slot]
	r.slots[slot] = q
	r.mu.Unlock()

	if prev != nil {
		prev.cancel(ErrSuperseded)
	}
	return q
}

func (q *Request) Context() context.Context { return q.ctx }

func (q *Request) Key() string { return q.key }

// Current reports whether q still owns its slot and was not cancelled.
// Results of a request that is no longer current must be dropped.
func (q *Request) Current() bool {
	if q.ctx.Err() != nil {
		return false
	}
	q.reg.mu.Lock()
	defer q.reg.mu.Unlock()
	return q.reg.slots[q.slot] == q
}

// Superseded reports whether a newer request replaced q.
func (q *Request) Superseded() bool {
	return errors.Is(context.Cause(q.ctx), ErrSuperseded)
}

// Done releases the slot (if q still holds it) and the request's context.
func (q *Request) Done() {
	q.reg.mu.Lock()
	if q.reg.slots[q.slot] == q {
		delete(q.reg.slots, q.slot)
	}
	q.reg.mu.Unlock()
	q.cancel(context.Canceled)
}

// Len returns the number of slots with a request in flight.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}
