//go:build !maxlendebug

package overflow

// assertf is compiled out of release builds; build with -tags maxlendebug
// to enable the internal invariant checks.
func assertf(bool, string, ...any) {}
