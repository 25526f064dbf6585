// Package handler
// Author: momentics <momentics@gmail.com>
//
// The tick-multiplexing coordinator. Owns the ordered callback
// registry, the interrupt counter, the chosen event source, and the
// two-lock mutation protocol that lets ordinary goroutines and the
// signal dispatcher touch the same state safely.
//
// Locking order: every mutator takes the control (outer) lock first,
// disables signal delivery, and only then takes the signal (inner)
// lock. The dispatcher takes the signal lock alone. Disabling delivery
// before the inner lock is what makes the non-reentrant spin lock
// safe: the dispatcher cannot be asked to run against a mutation in
// progress, and a plain blocking mutex would only reintroduce the
// tearing hazard this protocol removes.
package handler
