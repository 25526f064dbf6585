// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Error definitions for the tickmux API surface.

package api

import "errors"

var (
	// ErrPlatformUnsupported indicates the platform has no usable
	// signal/timer support; the handler degrades to a safe no-op.
	ErrPlatformUnsupported = errors.New("tickmux: interval timers not supported on this platform")
)
