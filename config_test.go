package recidx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "recidx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
	assert.Equal(t, BackendBST, config.Backend)
	assert.Equal(t, 32, config.Degree)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeTestConfig(t, `
backend: gbtree
degree: 8
seed_file: students.csv
history_file: /tmp/.recidx_history
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BackendGoogleBTree, config.Backend)
	assert.Equal(t, 8, config.Degree)
	assert.Equal(t, "students.csv", config.SeedFile)
	assert.Equal(t, "/tmp/.recidx_history", config.HistoryFile)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := writeTestConfig(t, "seed_file: a.csv\n")
	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, BackendBST, config.Backend)
	assert.Equal(t, 32, config.Degree)
}

func TestLoadConfig_Invalid(t *testing.T) {
	_, err := LoadConfig(writeTestConfig(t, "backend: skiplist\n"))
	assert.ErrorIs(t, err, ErrInvalidBackend)

	_, err = LoadConfig(writeTestConfig(t, "degree: 1\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(writeTestConfig(t, "backend: [not, a, string\n"))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{}.Validate())
	assert.NoError(t, Config{Backend: BackendBTree}.Validate())
	assert.ErrorIs(t, Config{Backend: "x"}.Validate(), ErrInvalidBackend)
	assert.ErrorIs(t, Config{Degree: -1}.Validate(), ErrInvalidConfig)
}
