// File: handler/handler.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Handler coordinates an arbitrary number of tick consumers over one
// OS interval-timer signal. One instance exists per process, built
// lazily behind Instance; New is exported for explicitly scoped use
// and for tests.

package handler

import (
	"log"
	"os"
	"sync"

	"github.com/eapache/queue"

	"github.com/momentics/tickmux/api"
	"github.com/momentics/tickmux/control"
	"github.com/momentics/tickmux/internal/concurrency"
	"github.com/momentics/tickmux/source"
)

// fatalf terminates the process with a diagnostic. Overridden in tests
// to keep the fatal contract observable.
var fatalf = log.Fatalf

// Token identifies one registered callback. It is opaque and
// identity-compared: the only valid use is handing it back to
// UnregisterCallback. The registry owns it from registration until
// unregistration.
type Token struct {
	callback api.Callback
	arg      any
}

// Handler multiplexes tick deliveries across registered callbacks.
type Handler struct {
	// controlLock serializes mutators and guards callbackCount plus
	// the source's detection state. Always acquired before signalLock.
	controlLock concurrency.SpinLock
	// signalLock guards callbacks and interrupts. The dispatcher takes
	// only this lock; mutators take it after disabling delivery.
	signalLock concurrency.SpinLock

	// source is nil on platforms without signal/timer support; every
	// operation then degrades to a safe no-op.
	source    api.EventSource
	frequency int32

	interrupts    uint64       // guarded by signalLock
	callbackCount int32        // guarded by controlLock
	callbacks     *queue.Queue // of *Token, guarded by signalLock

	sigCh chan os.Signal
}

var (
	instance     *Handler
	instanceOnce sync.Once
)

// Instance returns the process-wide handler, constructing it from the
// environment exactly once. Racing first callers block on the gate
// until construction finishes.
func Instance() *Handler {
	instanceOnce.Do(func() {
		instance = New(control.FromEnv())
	})
	return instance
}

// New builds a handler with the given configuration, starts its
// dispatcher, leaves signal delivery disabled until the first callback
// registration, and registers the constructing thread.
func New(cfg control.Config) *Handler {
	src, err := source.New(cfg.Source, cfg.Frequency)
	if err != nil {
		// No usable signal/timer support: keep the API surface,
		// drop the behavior.
		return newWithSource(nil, cfg.Frequency)
	}
	h := newWithSource(src, cfg.Frequency)
	go h.dispatchLoop()
	// Ignore the tick signal until a consumer shows up.
	h.disableDelivery()
	h.RegisterThread()
	return h
}

func newWithSource(src api.EventSource, frequency int32) *Handler {
	return &Handler{
		source:    src,
		frequency: frequency,
		callbacks: queue.New(),
		sigCh:     make(chan os.Signal, 1),
	}
}

// RegisterThread registers the calling OS thread with the event
// source. The constructing thread is registered automatically; every
// further thread that wants sampling calls this itself, pinned via
// runtime.LockOSThread so the registration reaches the thread it was
// meant for. Safe to call redundantly.
func (h *Handler) RegisterThread() {
	if h.source == nil {
		return
	}
	h.controlLock.Lock()
	defer h.controlLock.Unlock()
	h.source.RegisterThread(int(h.callbackCount))
}

// RegisterCallback appends fn to the dispatch order and returns its
// token. Registration of the first callback enables signal delivery
// and may start a shared timer. Returns nil on platforms without
// signal/timer support.
func (h *Handler) RegisterCallback(fn api.Callback, arg any) *Token {
	if h.source == nil {
		return nil
	}
	token := &Token{callback: fn, arg: arg}

	h.controlLock.Lock()
	defer h.controlLock.Unlock()
	h.disableDelivery()
	h.signalLock.Lock()
	h.callbacks.Add(token)
	h.signalLock.Unlock()
	h.callbackCount++
	h.source.RegisteredCallback(int(h.callbackCount))
	h.enableDelivery()
	return token
}

// UnregisterCallback removes the entry identified by token, leaving
// all others in their original order. Unregistering the last callback
// leaves signal delivery disabled and may stop a shared timer.
//
// An unknown token is a contract violation and fatal: once an invalid
// handle is accepted, the registry's integrity for every other
// consumer is gone.
func (h *Handler) UnregisterCallback(token *Token) {
	if h.source == nil {
		return
	}
	h.controlLock.Lock()
	defer h.controlLock.Unlock()

	// Read-only scan; safe under the control lock alone.
	if !h.contains(token) {
		fatalf("tickmux: UnregisterCallback: unknown token")
		return // reached only when fatalf is overridden
	}
	if h.callbackCount <= 0 {
		fatalf("tickmux: UnregisterCallback: invalid callback count %d", h.callbackCount)
		return
	}

	h.disableDelivery()
	h.signalLock.Lock()
	h.remove(token)
	h.signalLock.Unlock()
	h.callbackCount--
	if h.callbackCount > 0 {
		h.enableDelivery()
	}
	h.source.UnregisteredCallback(int(h.callbackCount))
}

// Reset unregisters every callback, stops a shared timer, and reverts
// the source's detection state. The interrupt counter and frequency
// survive. Delivery stays disabled until a new registration.
func (h *Handler) Reset() {
	if h.source == nil {
		return
	}
	h.controlLock.Lock()
	defer h.controlLock.Unlock()
	h.disableDelivery()
	h.signalLock.Lock()
	for h.callbacks.Length() > 0 {
		h.callbacks.Remove()
	}
	h.signalLock.Unlock()
	h.callbackCount = 0
	h.source.Reset()
}

// State returns a consistent snapshot of the handler.
func (h *Handler) State() api.State {
	st := api.State{Frequency: h.frequency}
	if h.source == nil {
		return st
	}
	h.controlLock.Lock()
	defer h.controlLock.Unlock()
	h.disableDelivery()
	h.signalLock.Lock()
	st.Interrupts = h.interrupts
	h.signalLock.Unlock()
	if h.callbackCount > 0 {
		h.enableDelivery()
	}
	st.CallbackCount = h.callbackCount
	return st
}

// Frequency reports the configured tick frequency. Immutable after
// construction, so no lock is needed.
func (h *Handler) Frequency() int32 { return h.frequency }

func (h *Handler) contains(token *Token) bool {
	for i := 0; i < h.callbacks.Length(); i++ {
		if h.callbacks.Get(i).(*Token) == token {
			return true
		}
	}
	return false
}

// remove rotates the queue through once, dropping token and keeping
// everyone else in dispatch order.
func (h *Handler) remove(token *Token) {
	n := h.callbacks.Length()
	for i := 0; i < n; i++ {
		entry := h.callbacks.Remove().(*Token)
		if entry == token {
			continue
		}
		h.callbacks.Add(entry)
	}
}
