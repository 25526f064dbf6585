// File: source/timer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Kernel interval-timer event source and the timer-sharing detection
// state machine. Platform-neutral: all syscall traffic goes through the
// itimer port implemented in source_linux.go and faked in tests.

package source

import (
	"log"
	"os"
	"time"
)

// fatalf terminates the process with a diagnostic. Overridden in tests
// to keep the fatal contract observable.
var fatalf = log.Fatalf

// itimer is the port to one OS interval timer.
type itimer interface {
	// Set arms the timer to fire first after value and every interval
	// afterwards. Zero for both disarms it.
	Set(value, interval time.Duration) error
	// Remaining reports the time until the next expiration; zero means
	// the timer is not armed.
	Remaining() (time.Duration, error)
}

// sharing enumerates what is known about interval-timer scope.
type sharing int

const (
	// timersUntouched: no timer initialization attempted yet.
	timersUntouched sharing = iota
	// timersOneSet: first thread has registered and armed the timer.
	timersOneSet
	// timersShared: one timer is shared by all threads in the process.
	timersShared
	// timersSeparate: each thread carries its own timer.
	timersSeparate
)

func (s sharing) String() string {
	switch s {
	case timersOneSet:
		return "one-set"
	case timersShared:
		return "shared"
	case timersSeparate:
		return "separate"
	default:
		return "untouched"
	}
}

// timerSource drives an OS interval timer, CPU-time or real-time
// accounting depending on which itimer it wraps.
type timerSource struct {
	timer   itimer
	sig     os.Signal
	period  time.Duration
	sharing sharing
}

func newTimerSource(timer itimer, sig os.Signal, frequency int32) *timerSource {
	return &timerSource{
		timer:  timer,
		sig:    sig,
		period: time.Duration(1_000_000/int64(frequency)) * time.Microsecond,
	}
}

// RegisterThread registers the calling thread and drives sharing
// detection: the first call arms the timer, the second call checks
// whether that arming is visible from a different thread. Visible
// means timers are shared; not visible means they are per-thread.
//
// Correct detection requires the first two calls to come from two
// distinct OS threads. Subsequent calls see a settled state and never
// probe again.
func (s *timerSource) RegisterThread(callbackCount int) {
	switch s.sharing {
	case timersUntouched:
		s.startTimer()
		s.sharing = timersOneSet
	case timersOneSet:
		if s.isTimerRunning() {
			s.sharing = timersShared
			// The probe thread inherits a running shared timer. Keep
			// it only if somebody is listening.
			if callbackCount == 0 {
				s.stopTimer()
			}
		} else {
			s.sharing = timersSeparate
			s.startTimer()
		}
	case timersShared:
		// Nothing needed.
	case timersSeparate:
		s.startTimer()
	}
}

// RegisteredCallback starts the timer when it is shared and the first
// callback just arrived.
func (s *timerSource) RegisteredCallback(newCallbackCount int) {
	if newCallbackCount == 1 && s.sharing == timersShared {
		s.startTimer()
	}
}

// UnregisteredCallback stops a shared timer when the last callback
// just left. Per-thread timers keep running regardless.
func (s *timerSource) UnregisteredCallback(newCallbackCount int) {
	if newCallbackCount == 0 && s.sharing == timersShared {
		s.stopTimer()
	}
}

// Reset stops a shared timer and forgets everything detection learned.
func (s *timerSource) Reset() {
	if s.sharing == timersShared {
		s.stopTimer()
	}
	s.sharing = timersUntouched
}

func (s *timerSource) Signal() os.Signal { return s.sig }

// EnableEvents and DisableEvents are no-ops: the timer technique has
// no suppression cheaper than the signal disposition the handler
// already manages.
func (s *timerSource) EnableEvents()  {}
func (s *timerSource) DisableEvents() {}

// TicksSinceLastCall is always 1: the kernel timer delivers one signal
// per expired period.
func (s *timerSource) TicksSinceLastCall() uint32 { return 1 }

// startTimer arms both the initial delay and the repeat interval to
// one period, so the first sample is not pushed out by a full period.
func (s *timerSource) startTimer() {
	if err := s.timer.Set(s.period, s.period); err != nil {
		fatalf("tickmux: setitimer (start): %v", err)
	}
}

func (s *timerSource) stopTimer() {
	if err := s.timer.Set(0, 0); err != nil {
		fatalf("tickmux: setitimer (stop): %v", err)
	}
}

// isTimerRunning asks the kernel for the remaining time; a nonzero
// value means some thread's arming is visible here.
func (s *timerSource) isTimerRunning() bool {
	remaining, err := s.timer.Remaining()
	if err != nil {
		fatalf("tickmux: getitimer: %v", err)
	}
	return remaining != 0
}
