// Package configpaths locates kbdoverlay configuration files.
package configpaths

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
)

const appDir = "kbdoverlay"

// Base names probed for config files, in priority order.
var configBases = []string{"config", "server"}

// DefaultConfigDir returns the platform-specific configuration directory for kbdoverlay.
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if appdata := os.Getenv("AppData"); appdata != "" {
			return filepath.Join(appdata, appDir), nil
		}
		return "", errors.New("AppData not set")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDir), nil
		}
		if home := os.Getenv("HOME"); home != "" {
			return filepath.Join(home, ".config", appDir), nil
		}
		return "", errors.New("HOME not set")
	}
}

// DefaultConfigPath returns the default config file path for the given format using base name "config".
func DefaultConfigPath(format string) (string, error) {
	return DefaultNamedConfigPath("config", format)
}

// DefaultNamedConfigPath returns the default config file path for the given format and base name (e.g., "server").
func DefaultNamedConfigPath(baseName, format string) (string, error) {
	dir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, baseName+"."+extFor(format)), nil
}

func extFor(format string) string {
	switch format {
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	}
	return "json"
}

// EnsureDir ensures the directory for a given file path exists.
func EnsureDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return os.MkdirAll(dir, 0o755)
}

// candidates collects config file paths per loader.
type candidates struct {
	JSON, YAML, TOML []string
}

func (c *candidates) add(path string) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		c.YAML = append(c.YAML, path)
	case ".toml":
		c.TOML = append(c.TOML, path)
	default:
		c.JSON = append(c.JSON, path)
	}
}

func (c *candidates) addDir(dir string, bases ...string) {
	for _, base := range bases {
		for _, ext := range []string{".json", ".yaml", ".yml", ".toml"} {
			c.add(filepath.Join(dir, base+ext))
		}
	}
}

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching loader
// by extension; unknown extensions are read as JSON.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	var c candidates
	if userPath != "" {
		c.add(userPath)
	}

	wd, _ := os.Getwd()
	c.addDir(wd, append([]string{appDir}, configBases...)...)

	if dir, err := DefaultConfigDir(); err == nil {
		c.addDir(dir, configBases...)
	}

	if runtime.GOOS != "windows" {
		c.addDir(filepath.Join("/etc", appDir), configBases...)
	}

	return c.JSON, c.YAML, c.TOML
}
