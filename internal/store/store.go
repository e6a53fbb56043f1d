// Package store holds the in-memory, observable collections the client keeps
// for each remote resource. Every store mutates its collection only from the
// completion of its own remote operations: loads replace the whole
// collection, updates patch a single item by id, deletes remove by id.
// Failed operations leave the collection untouched and return the error.
//
// Concurrent loads against the same store are allowed; whichever completes
// last wins. Readers always get snapshot copies, never live slices.
package store

import "sync"

// Listener is invoked after every local mutation of a store's collection.
// Callbacks run synchronously on the mutating goroutine and must not call
// back into the store.
type Listener func()

type notifier struct {
	mu        sync.Mutex
	listeners []Listener
}

// Subscribe registers fn to run after each local mutation.
func (n *notifier) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.listeners = append(n.listeners, fn)
}

func (n *notifier) notify() {
	n.mu.Lock()
	fns := make([]Listener, len(n.listeners))
	copy(fns, n.listeners)
	n.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
