// Package debug provides runtime-toggleable assertion checks.
//
// Checks are disabled by default so guarded call sites pay a single atomic
// load. Enable them in tests or while integrating new callers; with checks
// disabled the guarded operations remain memory-safe and well-defined, they
// just stop reporting contract violations.
package debug

import (
	"fmt"
	"sync/atomic"
)

var enabled atomic.Bool

// SetEnabled turns assertion checks on or off process-wide.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether assertion checks are active.
func Enabled() bool {
	return enabled.Load()
}

// Assert panics with msg when checks are enabled and cond is false.
func Assert(cond bool, msg string) {
	if enabled.Load() && !cond {
		panic("assertion failed: " + msg)
	}
}

// Assertf is Assert with a formatted message. The arguments are not
// evaluated into a message unless the assertion fires.
func Assertf(cond bool, format string, args ...any) {
	if enabled.Load() && !cond {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}
