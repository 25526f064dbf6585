// File: handler/dispatch.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Tick delivery. The OS raises the source's signal; the runtime
// forwards it to sigCh; the dispatcher goroutine drains the channel
// and fans each delivery out to the registered callbacks.
//
// Enabling and disabling delivery maps onto the signal disposition:
// Notify routes the signal here, Ignore drops it at the runtime. The
// one-slot channel coalesces deliveries that arrive while a dispatch
// is still running; sources that care report the lost periods through
// TicksSinceLastCall.

package handler

import (
	"os"
	"os/signal"
	"time"

	"github.com/momentics/tickmux/api"
)

// enableDelivery routes the source's signal to the dispatcher.
// Callers hold the control lock.
func (h *Handler) enableDelivery() {
	h.source.EnableEvents()
	signal.Notify(h.sigCh, h.source.Signal())
}

// disableDelivery makes the runtime ignore the source's signal.
// Callers hold the control lock (or are the constructor, before the
// handler is visible to anyone).
func (h *Handler) disableDelivery() {
	h.source.DisableEvents()
	signal.Ignore(h.source.Signal())
}

func (h *Handler) dispatchLoop() {
	for sig := range h.sigCh {
		h.dispatch(sig)
	}
}

// dispatch runs once per observed delivery: inner lock only, reads
// the registry in FIFO order, never mutates registry or detection
// state, allocates nothing.
func (h *Handler) dispatch(sig os.Signal) {
	info := api.SignalInfo{Signal: sig}
	ctx := api.TickContext{Time: time.Now()}

	h.signalLock.Lock()
	ticks := h.source.TicksSinceLastCall()
	h.interrupts++
	if ticks != 0 {
		for i := 0; i < h.callbacks.Length(); i++ {
			token := h.callbacks.Get(i).(*Token)
			token.callback(sig, info, ctx, ticks, token.arg)
		}
	}
	h.signalLock.Unlock()
}
