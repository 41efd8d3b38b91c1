package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportOfflineFlagIsIndependent(t *testing.T) {
	require.NoError(t, exportCmd.Flags().Set("offline", "true"))
	t.Cleanup(func() { _ = exportCmd.Flags().Set("offline", "false") })

	assert.True(t, exportOffline)
	assert.False(t, historyOffline, "export's flag must not toggle the history command")
}
