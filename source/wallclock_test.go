// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package source

import (
	"os"
	"sync/atomic"
	"testing"
	"time"
)

func TestWallclockSource_AccumulatesAndDrainsTicks(t *testing.T) {
	var raised atomic.Int32
	s := newWallclockSource(os.Interrupt, 1000, func(sig os.Signal) error {
		raised.Add(1)
		return nil
	})

	s.RegisteredCallback(1)
	defer s.Reset()

	time.Sleep(50 * time.Millisecond)
	if raised.Load() == 0 {
		t.Fatal("ticker raised no signals")
	}

	ticks := s.TicksSinceLastCall()
	if ticks == 0 {
		t.Error("no ticks accumulated")
	}
	// Several 1ms periods elapsed before the drain: deliveries coalesce.
	if ticks < 2 {
		t.Errorf("ticks = %d, want coalesced count > 1", ticks)
	}

	s.Reset()
	if s.TicksSinceLastCall() != 0 {
		t.Error("ticks survived Reset")
	}
}

func TestWallclockSource_DisableSuppressesProduction(t *testing.T) {
	s := newWallclockSource(os.Interrupt, 1000, func(os.Signal) error { return nil })
	s.RegisteredCallback(1)
	defer s.Reset()

	s.DisableEvents()
	time.Sleep(5 * time.Millisecond) // let an in-flight tick land
	s.TicksSinceLastCall()           // drain whatever slipped in before the gate
	time.Sleep(20 * time.Millisecond)
	if ticks := s.TicksSinceLastCall(); ticks != 0 {
		t.Errorf("ticks = %d while disabled, want 0", ticks)
	}

	s.EnableEvents()
	time.Sleep(20 * time.Millisecond)
	if s.TicksSinceLastCall() == 0 {
		t.Error("no ticks after re-enabling")
	}
}

func TestWallclockSource_StopsOnLastUnregistration(t *testing.T) {
	s := newWallclockSource(os.Interrupt, 1000, func(os.Signal) error { return nil })
	s.RegisteredCallback(1)
	s.UnregisteredCallback(0)

	time.Sleep(5 * time.Millisecond) // let the ticker goroutine wind down
	s.TicksSinceLastCall()
	time.Sleep(20 * time.Millisecond)
	if ticks := s.TicksSinceLastCall(); ticks != 0 {
		t.Errorf("ticks = %d after ticker stop, want 0", ticks)
	}
}
