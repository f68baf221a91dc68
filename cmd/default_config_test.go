package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaultsConfig_Valid(t *testing.T) {
	cfg, err := loadDefaultsConfig(writeConfig(t, `
version: "1"
default_seed: 7
run:
  requests: fixtures/requests.yaml
  byte_order: big
  algorithms: [scan, c-scan]
  start_policy: strict
  trace_level: seeks
  summary: true
generate:
  out: fixtures/request.bin
  count: 16
`))
	require.NoError(t, err)
	assert.Equal(t, "fixtures/requests.yaml", cfg.Run.Requests)
	assert.Equal(t, []string{"scan", "c-scan"}, cfg.Run.Algorithms)
	require.NotNil(t, cfg.Run.Summary)
	assert.True(t, *cfg.Run.Summary)
	assert.Equal(t, 16, cfg.Generate.Count)
	assert.Equal(t, int64(7), cfg.DefaultSeed)
}

func TestLoadDefaultsConfig_UnknownField_Fails(t *testing.T) {
	// Typos must cause errors
	_, err := loadDefaultsConfig(writeConfig(t, "run:\n  algoritms: [scan]\n"))
	assert.Error(t, err)
}

func TestLoadDefaultsConfig_Missing_Fails(t *testing.T) {
	_, err := loadDefaultsConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyRunDefaults_ExplicitFlagsWin(t *testing.T) {
	// GIVEN a fresh command with the run flags and one flag set explicitly
	cmd := &cobra.Command{Use: "run"}
	var reqs, order string
	cmd.Flags().StringVar(&reqs, "requests", "", "")
	cmd.Flags().StringVar(&order, "byte-order", "", "")
	require.NoError(t, cmd.Flags().Set("requests", "explicit.bin"))

	origReqs, origOrder := requestsPath, byteOrder
	t.Cleanup(func() { requestsPath, byteOrder = origReqs, origOrder })
	requestsPath, byteOrder = "explicit.bin", "little"

	// WHEN defaults are applied
	applyRunDefaults(cmd, RunDefaults{Requests: "from-config.bin", ByteOrder: "big"})

	// THEN the explicit flag is kept and the unset one comes from config
	assert.Equal(t, "explicit.bin", requestsPath)
	assert.Equal(t, "big", byteOrder)
}
