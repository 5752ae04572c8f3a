package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered_SortsTablesAndRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	cfg := DefaultConfig()
	cfg.Zoom.Default = 1.1

	require.NoError(t, WriteConfigOrdered(cfg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var tables []string
	for _, line := range strings.Split(string(content), "\n") {
		if m := tomlHeader.FindStringSubmatch(line); m != nil {
			tables = append(tables, m[1])
		}
	}
	require.NotEmpty(t, tables)
	assert.IsNonDecreasing(t, tables)
	assert.Equal(t, "accessibility", tables[0])

	var decoded Config
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), configFileName)))
}

func TestSortTOMLSections(t *testing.T) {
	input := `title = 'x'

[zoom]
default = 1.0

[appearance]
accent = '#3584e4'
  [appearance.nested]
  key = 1
`
	want := `title = 'x'

[appearance]
accent = '#3584e4'

  [appearance.nested]
  key = 1

[zoom]
default = 1.0
`
	assert.Equal(t, want, sortTOMLSections(input))
}

func TestConfigSchema_DescribesSections(t *testing.T) {
	data, err := ConfigSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "chatshell configuration", doc["title"])
	assert.Contains(t, string(data), "zoom_floor")
	assert.Contains(t, string(data), "preview_length")
}

func TestAccountsSchema_DescribesAccountFields(t *testing.T) {
	data, err := AccountsSchema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "camera_permission_granted")
	assert.Contains(t, string(data), "zoom_level")
}
