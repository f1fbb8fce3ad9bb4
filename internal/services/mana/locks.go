package mana

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// actorLocks serializes read-modify-write cycles per actor. Entries are
// reference counted and dropped once nobody holds or waits on them.
type actorLocks struct {
	mu      sync.Mutex
	entries map[string]*actorLock
}

type actorLock struct {
	sem  *semaphore.Weighted
	refs int
}

func newActorLocks() *actorLocks {
	return &actorLocks{entries: make(map[string]*actorLock)}
}

// acquire blocks until the actor's lock is held or ctx is done
func (l *actorLocks) acquire(ctx context.Context, actorID string) (func(), error) {
	l.mu.Lock()
	entry, exists := l.entries[actorID]
	if !exists {
		entry = &actorLock{sem: semaphore.NewWeighted(1)}
		l.entries[actorID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	if err := entry.sem.Acquire(ctx, 1); err != nil {
		l.unref(actorID, entry)
		return nil, err
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			entry.sem.Release(1)
			l.unref(actorID, entry)
		})
	}, nil
}

func (l *actorLocks) unref(actorID string, entry *actorLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry.refs--
	if entry.refs == 0 {
		delete(l.entries, actorID)
	}
}

// size is the number of live entries
func (l *actorLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
