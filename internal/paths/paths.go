// Package paths resolves where moodeng keeps its configuration and data.
//
// Both directories follow the same precedence: an explicit flag wins, then
// an environment variable, then a default. The data directory additionally
// honors the data_dir value from config.yaml and defaults to a directory
// under the current working directory, so each project keeps its own
// database.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

const appDirName = "moodeng"

// DataDirName is the CWD-relative default data directory.
const DataDirName = ".moodeng-db"

// Environment variable overrides.
const (
	EnvConfigDir = "MOODENG_CONFIG_DIR"
	EnvDataDir   = "MOODENG_DATA_DIR"
)

// ResolveConfigDir picks the configuration directory: the flag, then
// MOODENG_CONFIG_DIR, then the platform config directory —
// $XDG_CONFIG_HOME/moodeng (or ~/.config/moodeng) on Linux,
// os.UserConfigDir/moodeng elsewhere. Relative overrides are made
// absolute.
func ResolveConfigDir(flag string) (string, error) {
	if dir := firstOf(flag, os.Getenv(EnvConfigDir)); dir != "" {
		return filepath.Abs(dir)
	}

	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appDirName), nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", appDirName), nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName), nil
}

// ResolveDataDir picks the data directory: the flag, then the config.yaml
// value, then MOODENG_DATA_DIR, then $(CWD)/.moodeng-db. Relative
// overrides are made absolute.
func ResolveDataDir(flag, configValue string) (string, error) {
	if dir := firstOf(flag, configValue, os.Getenv(EnvDataDir)); dir != "" {
		return filepath.Abs(dir)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, DataDirName), nil
}

// firstOf returns the first non-empty value.
func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
