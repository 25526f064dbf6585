// File: internal/concurrency/spinlock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SpinLock is a minimal non-reentrant spin lock built on a CAS loop
// with cooperative yielding. Hold times in tickmux are bounded by
// registry size, so spinning beats parking a goroutine: the dispatch
// path must never sleep inside the runtime while a mutator yields the
// processor to it.

package concurrency

import (
	"runtime"
	"sync/atomic"
)

// SpinLock is a non-reentrant mutual exclusion lock. The zero value is
// unlocked. A goroutine that locks twice without unlocking deadlocks
// itself; the handler's disable-before-lock protocol exists precisely
// so that never happens.
type SpinLock struct {
	state atomic.Uint32
}

// Lock spins until the lock is acquired, yielding the processor
// between attempts.
func (l *SpinLock) Lock() {
	for !l.state.CompareAndSwap(0, 1) {
		runtime.Gosched()
	}
}

// TryLock acquires the lock without spinning. Reports whether the lock
// was acquired.
func (l *SpinLock) TryLock() bool {
	return l.state.CompareAndSwap(0, 1)
}

// Unlock releases the lock. Calling Unlock on an unlocked SpinLock is
// a caller error and leaves the lock unlocked.
func (l *SpinLock) Unlock() {
	l.state.Store(0)
}
