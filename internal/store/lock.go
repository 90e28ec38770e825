package store

import (
	"context"
	"sync"
)

// Lockable is a store whose write mutex LockAll can take. It is implemented
// by FeedbackStore and PulseStore.
type Lockable interface {
	writeMutex() *sync.Mutex
}

type heldLocksKey struct{}

type heldLocks map[*sync.Mutex]struct{}

func isHeld(ctx context.Context, mu *sync.Mutex) bool {
	held, _ := ctx.Value(heldLocksKey{}).(heldLocks)
	_, ok := held[mu]
	return ok
}

// LockAll takes the write mutex of every store in argument order and
// returns a context marking them as held. Store writes made with that
// context skip their own locking. Callers must always pass stores in the
// same order. The returned func releases the mutexes.
func LockAll(ctx context.Context, stores ...Lockable) (context.Context, func()) {
	parent, _ := ctx.Value(heldLocksKey{}).(heldLocks)
	held := make(heldLocks, len(parent)+len(stores))
	for mu := range parent {
		held[mu] = struct{}{}
	}

	var taken []*sync.Mutex
	for _, st := range stores {
		mu := st.writeMutex()
		if _, ok := held[mu]; ok {
			continue
		}
		mu.Lock()
		held[mu] = struct{}{}
		taken = append(taken, mu)
	}

	unlock := func() {
		for i := len(taken) - 1; i >= 0; i-- {
			taken[i].Unlock()
		}
	}
	return context.WithValue(ctx, heldLocksKey{}, held), unlock
}

// TxRunner runs fn inside a backend transaction.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// LockedTx takes the store mutexes before opening the transaction. Plain
// writes lock the mutex first and then wait for a connection, so a
// transaction must acquire them in the same order. On a single-connection
// backend the reverse order deadlocks.
type LockedTx struct {
	tx     TxRunner
	stores []Lockable
}

// NewLockedTx wraps tx so every transaction holds the write mutex of stores.
func NewLockedTx(tx TxRunner, stores ...Lockable) *LockedTx {
	return &LockedTx{tx: tx, stores: stores}
}

// RunInTx locks the stores, then runs fn in a transaction of the wrapped
// runner.
func (l *LockedTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, unlock := LockAll(ctx, l.stores...)
	defer unlock()
	return l.tx.RunInTx(ctx, fn)
}
