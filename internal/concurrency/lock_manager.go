package concurrency

import (
	"sync"
)

// LockManager hands out named mutexes. The statistics observer uses one to
// serialize aggregate recomputation per calendar day, closing the race
// between the find-by-type-and-date read and the subsequent create/update.
type LockManager struct {
	locks sync.Map
}

// NewLockManager creates a new LockManager.
func NewLockManager() *LockManager {
	return &LockManager{}
}

// GetLock returns the mutex for the given key, creating it on first use.
// Locks are never evicted; the key space (one per active day) stays small.
func (lm *LockManager) GetLock(key string) *sync.Mutex {
	lock, _ := lm.locks.LoadOrStore(key, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

// Lock acquires the named lock and returns its release function.
func (lm *LockManager) Lock(key string) func() {
	lock := lm.GetLock(key)
	lock.Lock()
	return lock.Unlock
}
