package configpaths

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultNamedConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses XDG_CONFIG_HOME")
	}
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	tests := []struct {
		format, want string
	}{
		{"json", "/tmp/xdg/kbdoverlay/server.json"},
		{"yml", "/tmp/xdg/kbdoverlay/server.yaml"},
		{"toml", "/tmp/xdg/kbdoverlay/server.toml"},
		{"", "/tmp/xdg/kbdoverlay/server.json"},
	}
	for _, tt := range tests {
		got, err := DefaultNamedConfigPath("server", tt.format)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.format)
	}
}

func TestConfigCandidatePaths(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("custom.yml")
	require.NotEmpty(t, yamlPaths)
	assert.Equal(t, "custom.yml", yamlPaths[0])
	assert.NotContains(t, jsonPaths, "custom.yml")

	_, _, tomlPaths = ConfigCandidatePaths("/etc/x.toml")
	assert.Equal(t, "/etc/x.toml", tomlPaths[0])

	jsonPaths, _, _ = ConfigCandidatePaths("noext")
	assert.Equal(t, "noext", jsonPaths[0])
	for _, p := range jsonPaths[1:] {
		assert.Equal(t, ".json", filepath.Ext(p))
	}
}
