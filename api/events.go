// File: api/events.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// EventSource is the strategy contract for producing periodic tick
// events. Concrete strategies: OS interval timers (CPU-time or
// real-time accounting) and a wall-clock ticker. A strategy is chosen
// once at handler construction and never re-selected at runtime.

package api

import "os"

// EventSource abstracts the origin of periodic tick events.
//
// All methods except TicksSinceLastCall are invoked only by mutator
// code under the handler's control lock. TicksSinceLastCall is invoked
// by the dispatcher under the signal lock and must not block, allocate,
// or touch detection state.
type EventSource interface {
	// RegisterThread registers the calling OS thread with the source.
	// On systems where interval timers are per-thread this starts the
	// timer for the current thread. The first two calls, made from two
	// distinct threads, drive the timer-sharing detection; once sharing
	// is known the call is idempotent. callbackCount is the number of
	// callbacks registered at the time of the call.
	RegisterThread(callbackCount int)

	// RegisteredCallback and UnregisteredCallback run after a registry
	// mutation with the new callback count. A shared underlying
	// resource is lazily started on 0->1 and stopped on 1->0.
	RegisteredCallback(newCallbackCount int)
	UnregisteredCallback(newCallbackCount int)

	// Reset returns the source to its pre-detection state, stopping a
	// shared resource if one is running.
	Reset()

	// Signal reports which OS signal carries this source's ticks.
	Signal() os.Signal

	// EnableEvents and DisableEvents are best-effort, low-cost
	// suppression of event production, independent of the signal
	// disposition the handler manages. Timer strategies have nothing
	// cheaper than the disposition and treat these as no-ops.
	EnableEvents()
	DisableEvents()

	// TicksSinceLastCall reports ticks elapsed since the previous
	// dispatch. Normally 1; may exceed 1 when the mechanism coalesces
	// several periods into one delivered signal. 0 suppresses callback
	// invocation for that delivery.
	TicksSinceLastCall() uint32
}
