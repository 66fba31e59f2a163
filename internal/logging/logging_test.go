package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAt_WritesToFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, InitAt(dir))

	slog.Info("timeline computed", "project", "proj4")

	data, err := os.ReadFile(filepath.Join(dir, "plazo.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "timeline computed")
	assert.Contains(t, string(data), "project=proj4")
}
