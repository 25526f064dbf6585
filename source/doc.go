// Package source
// Author: momentics <momentics@gmail.com>
//
// Event-source strategies producing the periodic tick signals the
// handler multiplexes:
//
//   - timer-cpu: kernel interval timer with CPU-time accounting
//     (ITIMER_VIRTUAL, SIGVTALRM), the default
//   - timer-realtime: kernel interval timer with wall-time accounting
//     (ITIMER_REAL, SIGALRM)
//   - thread-wallclock: a ticker goroutine raising SIGALRM itself,
//     coalescing periods that elapse before dispatch runs
//
// None of the strategies touches ITIMER_PROF or SIGPROF: the Go
// runtime reserves that pair for its own CPU profiler and drops the
// signal before os/signal channels ever see it.
//
// The kernel timer strategies share one hard problem: depending on the
// platform and threading library the interval timer is either one
// process-global resource or one resource per thread, and nothing but
// experiment reveals which. The detection state machine lives in the
// platform-neutral timer.go; the syscalls behind it are build-tag
// partitioned, with a stub that reports ErrPlatformUnsupported so the
// handler can degrade to a no-op surface.
package source
