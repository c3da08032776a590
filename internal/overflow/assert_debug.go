//go:build maxlendebug

package overflow

import "fmt"

func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic("overflow: internal invariant violated: " + fmt.Sprintf(format, args...))
	}
}
