// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"sync"
	"testing"
)

func TestSpinLock_MutualExclusion(t *testing.T) {
	var l SpinLock
	var wg sync.WaitGroup

	counter := 0
	const goroutines = 8
	const increments = 1000

	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < increments; i++ {
				l.Lock()
				counter++
				l.Unlock()
			}
		}()
	}
	wg.Wait()

	if counter != goroutines*increments {
		t.Errorf("counter = %d, want %d", counter, goroutines*increments)
	}
}

func TestSpinLock_TryLock(t *testing.T) {
	var l SpinLock

	if !l.TryLock() {
		t.Fatal("TryLock on unlocked lock failed")
	}
	if l.TryLock() {
		t.Error("TryLock on held lock succeeded")
	}
	l.Unlock()
	if !l.TryLock() {
		t.Error("TryLock after Unlock failed")
	}
	l.Unlock()
}
