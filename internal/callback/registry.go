// Package callback keeps Go closures reachable from native callbacks.
//
// The native toolkit cannot hold Go pointers, so every closure is stored here under a
// numeric ID and the ID travels through the toolkit as opaque user data. IDs grow
// monotonically and are never reused: a trampoline that fires with a released ID finds
// nothing instead of reaching a newer closure.
//
// A Registry is not safe for concurrent use. It is owned by one environment and only
// touched from the message-loop thread.
package callback

import (
	"github.com/bnema/goluigi/pkg/luigi/native"
)

// Kind discriminates the closure type stored in a slot.
type Kind uint8

const (
	KindInvoke Kind = iota + 1
	KindTableItem
)

func (k Kind) String() string {
	switch k {
	case KindInvoke:
		return "invoke"
	case KindTableItem:
		return "table-item"
	default:
		return "unknown"
	}
}

// ID identifies a slot. The zero ID is never issued.
type ID = native.Context

// TableItemFunc produces the text of one table cell.
type TableItemFunc func(req native.TableItemRequest) string

type slot struct {
	kind   Kind
	invoke func()
	item   TableItemFunc
}

// Registry maps slot IDs to closures.
type Registry struct {
	next  ID
	slots map[ID]slot
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{slots: make(map[ID]slot)}
}

// RegisterInvoke stores a no-argument closure.
func (r *Registry) RegisterInvoke(fn func()) ID {
	return r.add(slot{kind: KindInvoke, invoke: fn})
}

// RegisterTableItem stores a table cell handler.
func (r *Registry) RegisterTableItem(fn TableItemFunc) ID {
	return r.add(slot{kind: KindTableItem, item: fn})
}

func (r *Registry) add(s slot) ID {
	r.next++
	r.slots[r.next] = s
	return r.next
}

// Kind reports the kind stored under id, or 0 if id is not live.
func (r *Registry) Kind(id ID) Kind {
	return r.slots[id].kind
}

// Invoke runs the closure stored under id. It reports false when id is not live or
// holds a different kind. The slot stays registered: it may fire again.
func (r *Registry) Invoke(id ID) bool {
	s, ok := r.slots[id]
	if !ok || s.kind != KindInvoke {
		return false
	}
	// s is a copy; the closure survives a Release issued from inside itself.
	s.invoke()
	return true
}

// TableItem runs the table handler stored under id.
func (r *Registry) TableItem(id ID, req native.TableItemRequest) (string, bool) {
	s, ok := r.slots[id]
	if !ok || s.kind != KindTableItem {
		return "", false
	}
	return s.item(req), true
}

// Release drops the closure stored under id. Releasing an unknown id is a no-op.
// Callers must have detached id from the toolkit first.
func (r *Registry) Release(id ID) {
	delete(r.slots, id)
}

// ReleaseAll drops every closure. Used at environment teardown, once the message loop
// can no longer dispatch.
func (r *Registry) ReleaseAll() {
	clear(r.slots)
}

// Len returns the number of live slots.
func (r *Registry) Len() int {
	return len(r.slots)
}
