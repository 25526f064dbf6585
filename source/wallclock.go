// File: source/wallclock.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Wall-clock event source. Instead of a kernel interval timer, a
// ticker goroutine counts periods and raises the tick signal at the
// process itself. Periods that elapse while a previous delivery is
// still being dispatched (or while the process sits in a blocking
// call) accumulate, so one delivery can carry several ticks.

package source

import (
	"os"
	"sync/atomic"
	"time"
)

// wallclockSource produces ticks from a time.Ticker. There is one
// ticker per process; thread registration needs no sharing detection.
type wallclockSource struct {
	sig    os.Signal
	period time.Duration
	raise  func(os.Signal) error

	pending atomic.Uint32
	enabled atomic.Bool
	done    chan struct{}
}

func newWallclockSource(sig os.Signal, frequency int32, raise func(os.Signal) error) *wallclockSource {
	s := &wallclockSource{
		sig:    sig,
		period: time.Duration(1_000_000/int64(frequency)) * time.Microsecond,
		raise:  raise,
	}
	s.enabled.Store(true)
	return s
}

// RegisterThread is a no-op: the ticker is process-wide.
func (s *wallclockSource) RegisterThread(callbackCount int) {}

// RegisteredCallback starts the ticker when the first callback
// arrives.
func (s *wallclockSource) RegisteredCallback(newCallbackCount int) {
	if newCallbackCount == 1 {
		s.start()
	}
}

// UnregisteredCallback stops the ticker when the last callback leaves.
func (s *wallclockSource) UnregisteredCallback(newCallbackCount int) {
	if newCallbackCount == 0 {
		s.stop()
	}
}

// Reset stops the ticker and discards undelivered ticks.
func (s *wallclockSource) Reset() {
	s.stop()
	s.pending.Store(0)
}

func (s *wallclockSource) Signal() os.Signal { return s.sig }

// EnableEvents and DisableEvents gate tick production without
// touching the ticker goroutine.
func (s *wallclockSource) EnableEvents()  { s.enabled.Store(true) }
func (s *wallclockSource) DisableEvents() { s.enabled.Store(false) }

// TicksSinceLastCall drains the accumulated tick count. Zero tells the
// dispatcher to skip callback invocation for a delivery whose ticks
// were already accounted for.
func (s *wallclockSource) TicksSinceLastCall() uint32 {
	return s.pending.Swap(0)
}

// start launches the ticker goroutine. Callers are serialized by the
// handler's control lock.
func (s *wallclockSource) start() {
	if s.done != nil {
		return
	}
	s.done = make(chan struct{})
	go s.run(s.done)
}

func (s *wallclockSource) stop() {
	if s.done == nil {
		return
	}
	close(s.done)
	s.done = nil
}

func (s *wallclockSource) run(done <-chan struct{}) {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if !s.enabled.Load() {
				continue
			}
			s.pending.Add(1)
			// Best-effort: a full signal queue coalesces into the
			// pending count drained above.
			_ = s.raise(s.sig)
		case <-done:
			return
		}
	}
}
