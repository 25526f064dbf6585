// Package control
// Author: momentics <momentics@gmail.com>
//
// Construction-time configuration for the tickmux handler. Values are
// read once from the environment and are immutable afterwards:
//
//   - TICKMUX_FREQUENCY  ticks per second, clamped to [1, 4000],
//     default 100; malformed or absent input falls back to the default
//   - TICKMUX_EVENT      event source: timer-cpu (default),
//     timer-realtime, thread-wallclock
//   - TICKMUX_REALTIME   mere presence (any value, even empty) selects
//     the real-time timer when TICKMUX_EVENT is not set
package control
