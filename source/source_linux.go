//go:build linux
// +build linux

// File: source/source_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation of the itimer port on top of the
// getitimer(2)/setitimer(2) syscalls, and the strategy factory.

package source

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/momentics/tickmux/api"
)

// New constructs the event source selected by kind, ticking at the
// given frequency.
//
// CPU-time accounting rides ITIMER_VIRTUAL / SIGVTALRM, not
// ITIMER_PROF / SIGPROF: the Go runtime installs its own SIGPROF
// handler for CPU profiling and consumes the signal without forwarding
// it to os/signal channels, so SIGPROF-driven ticks would never reach
// the dispatcher. The wallclock source raises SIGALRM for the same
// reason.
func New(kind api.SourceKind, frequency int32) (api.EventSource, error) {
	switch kind {
	case api.SourceTimerRealtime:
		return newTimerSource(kernelItimer{which: unix.ItimerReal}, syscall.SIGALRM, frequency), nil
	case api.SourceThreadWallclock:
		return newWallclockSource(syscall.SIGALRM, frequency, raiseSignal), nil
	default:
		return newTimerSource(kernelItimer{which: unix.ItimerVirtual}, syscall.SIGVTALRM, frequency), nil
	}
}

// kernelItimer adapts one kernel interval timer to the itimer port.
type kernelItimer struct {
	which unix.ItimerWhich
}

func (k kernelItimer) Set(value, interval time.Duration) error {
	it := unix.Itimerval{
		Interval: unix.NsecToTimeval(interval.Nanoseconds()),
		Value:    unix.NsecToTimeval(value.Nanoseconds()),
	}
	_, err := unix.Setitimer(k.which, it)
	return err
}

func (k kernelItimer) Remaining() (time.Duration, error) {
	it, err := unix.Getitimer(k.which)
	if err != nil {
		return 0, err
	}
	return time.Duration(it.Value.Sec)*time.Second +
		time.Duration(it.Value.Usec)*time.Microsecond, nil
}

// raiseSignal delivers sig to the process, for sources that produce
// their own ticks.
func raiseSignal(sig os.Signal) error {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return unix.EINVAL
	}
	return unix.Kill(unix.Getpid(), s)
}
