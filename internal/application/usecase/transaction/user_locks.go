// Package transaction contains transaction-related use cases.
package transaction

import (
	"sync"

	"github.com/google/uuid"
)

// userLocks hands out one mutex per user so that the read-modify-write of
// the target set during allocation is serialized per user. Without it two
// concurrent deposits could both read the same collected amounts and lose
// one update.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newUserLocks() *userLocks {
	return &userLocks{
		locks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// get returns the mutex for the given user, creating it on first use.
func (l *userLocks) get(userID uuid.UUID) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[userID] = lock
	}
	return lock
}
