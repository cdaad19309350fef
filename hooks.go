package lfset

// These hooks are intended solely for test instrumentation. They run on the
// calling goroutine while it is pinned and may themselves call into the set.
var (
	// insertCASHook is invoked in Add right before the insertion CAS.
	insertCASHook func(key any)

	// markCASHook is invoked in Remove right before the logical-deletion CAS.
	markCASHook func(key any)

	// skipUnlinkHook makes Remove leave a freshly marked node linked when it
	// returns true.
	skipUnlinkHook func(key any) bool
)
