//go:build !linux
// +build !linux

// File: source/source_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub factory for platforms without usable interval-timer support.
// The handler reacts by degrading every public operation to a safe
// no-op.

package source

import "github.com/momentics/tickmux/api"

// New reports that no event source can run on this platform.
func New(kind api.SourceKind, frequency int32) (api.EventSource, error) {
	return nil, api.ErrPlatformUnsupported
}
