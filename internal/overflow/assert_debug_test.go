//go:build maxlendebug

package overflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssertf_PanicsInDebugBuilds(t *testing.T) {
	require.Panics(t, func() { assertf(false, "path %d", 3) })
	require.NotPanics(t, func() { assertf(true, "unused") })
}
