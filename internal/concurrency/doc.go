// Package concurrency
// Author: momentics <momentics@gmail.com>
//
// Lock primitives for the tickmux core. Provides the non-reentrant
// spin lock used for both the control (outer) and signal (inner) locks
// of the handler's two-lock protocol.
package concurrency
