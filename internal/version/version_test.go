package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures the rendered version strings stay consistent
// with the individual build metadata values.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), Commit)
	require.Contains(t, Full(), BuildTime)
}
