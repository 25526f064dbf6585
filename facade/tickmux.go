// File: facade/tickmux.go
// Unified facade layer for the tickmux library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package-level convenience API over the process-wide handler. The
// first call to any of these functions constructs the handler from the
// environment (TICKMUX_FREQUENCY, TICKMUX_EVENT, TICKMUX_REALTIME) and
// registers the calling thread; further threads that want sampling
// call RegisterThread themselves from a goroutine pinned with
// runtime.LockOSThread.

package facade

import (
	"github.com/momentics/tickmux/api"
	"github.com/momentics/tickmux/handler"
)

// RegisterThread registers the current OS thread with the process-wide
// handler. Safe to call redundantly.
func RegisterThread() {
	handler.Instance().RegisterThread()
}

// RegisterCallback registers fn to receive tick deliveries and returns
// its token. Returns nil on platforms without signal/timer support.
func RegisterCallback(fn api.Callback, arg any) *handler.Token {
	return handler.Instance().RegisterCallback(fn, arg)
}

// UnregisterCallback removes a previously registered callback. Fatal
// if the token is unknown.
func UnregisterCallback(token *handler.Token) {
	handler.Instance().UnregisterCallback(token)
}

// Reset unregisters every callback and reverts timer-sharing
// detection.
func Reset() {
	handler.Instance().Reset()
}

// State returns a consistent snapshot of the process-wide handler.
func State() api.State {
	return handler.Instance().State()
}

// Frequency reports the configured tick frequency.
func Frequency() int32 {
	return handler.Instance().Frequency()
}
