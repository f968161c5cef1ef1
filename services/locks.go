// services/locks.go - Per-user mutation serialization
package services

import "sync"

// UserLocks serializes mutations of a single user's state so that
// concurrent progress updates or purchases cannot double-award or
// double-charge. The unique composite indexes on the join tables are
// the backstop for multi-process deployments.
type UserLocks struct {
	locks sync.Map // userID -> *sync.Mutex
}

func NewUserLocks() *UserLocks {
	return &UserLocks{}
}

// Lock acquires the user's mutex and returns the unlock function.
func (l *UserLocks) Lock(userID uint) func() {
	v, _ := l.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
