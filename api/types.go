// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations for tick delivery and handler
// state reporting.

package api

import (
	"os"
	"time"
)

// SourceKind names the event-source strategies selectable at
// construction.
type SourceKind string

const (
	// SourceTimerCPU samples CPU time via ITIMER_VIRTUAL / SIGVTALRM.
	// SIGPROF is unusable here: the runtime's profiler owns it and
	// never forwards it to os/signal channels.
	SourceTimerCPU SourceKind = "timer-cpu"
	// SourceTimerRealtime samples wall time via ITIMER_REAL / SIGALRM.
	// Problematic with heavily multi-threaded code.
	SourceTimerRealtime SourceKind = "timer-realtime"
	// SourceThreadWallclock samples wall time from a ticker goroutine,
	// coalescing periods that elapse while dispatch is delayed.
	SourceThreadWallclock SourceKind = "thread-wallclock"
)

// SignalInfo carries metadata about one delivered tick signal.
type SignalInfo struct {
	// Signal that was delivered (SIGVTALRM or SIGALRM).
	Signal os.Signal
}

// TickContext is a snapshot of the execution context taken when the
// dispatcher observed the delivery.
type TickContext struct {
	// Time of observation.
	Time time.Time
}

// Callback consumes tick deliveries. It runs on the dispatcher with
// the signal lock held: it must not block indefinitely and must not
// call back into the handler's mutating API.
//
// ticks is the coalesced tick count for this delivery, arg the private
// argument supplied at registration.
type Callback func(sig os.Signal, info SignalInfo, ctx TickContext, ticks uint32, arg any)

// State is a consistent snapshot of the handler.
type State struct {
	// Interrupts counts signal deliveries observed since construction.
	Interrupts uint64
	// Frequency is the configured ticks-per-second, immutable after
	// construction. Range [1, 4000].
	Frequency int32
	// CallbackCount is the current registry size.
	CallbackCount int32
}
