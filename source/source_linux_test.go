//go:build linux
// +build linux

// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Factory contract: every strategy must ride a signal the runtime
// forwards to os/signal channels. SIGPROF never qualifies; the
// runtime's profiler consumes it before delivery.

package source

import (
	"syscall"
	"testing"

	"github.com/momentics/tickmux/api"
)

func TestNew_NeverRidesRuntimeOwnedSignal(t *testing.T) {
	kinds := []api.SourceKind{
		api.SourceTimerCPU,
		api.SourceTimerRealtime,
		api.SourceThreadWallclock,
	}
	for _, kind := range kinds {
		src, err := New(kind, 100)
		if err != nil {
			t.Fatalf("New(%q): %v", kind, err)
		}
		if src.Signal() == syscall.SIGPROF {
			t.Errorf("%q rides SIGPROF, which os/signal channels never receive", kind)
		}
	}
}

func TestNew_SignalSelection(t *testing.T) {
	cases := []struct {
		kind api.SourceKind
		want syscall.Signal
	}{
		{api.SourceTimerCPU, syscall.SIGVTALRM},
		{api.SourceTimerRealtime, syscall.SIGALRM},
		{api.SourceThreadWallclock, syscall.SIGALRM},
	}
	for _, tc := range cases {
		src, err := New(tc.kind, 100)
		if err != nil {
			t.Fatalf("New(%q): %v", tc.kind, err)
		}
		if src.Signal() != tc.want {
			t.Errorf("%q signal = %v, want %v", tc.kind, src.Signal(), tc.want)
		}
	}
}
