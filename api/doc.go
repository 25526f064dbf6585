// Package api
// Author: momentics <momentics@gmail.com>
//
// Shared contracts of the tickmux library: the EventSource strategy
// interface, the callback signature and its delivery metadata, handler
// state snapshots, and sentinel errors.
//
// Part of the tickmux tick-multiplexing core. This package is
// cross-platform and carries no build-tag partitioning; platform
// specifics live behind the EventSource implementations in package
// source.
package api
