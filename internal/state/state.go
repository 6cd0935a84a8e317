// Package state resolves the per-user directories kpart reads and writes.
// Paths follow the XDG base directory layout.
package state

import (
	"os"
	"path/filepath"
)

const appName = "kpart"

// StateDir returns the directory for persistent state such as the event log.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	return filepath.Join(homeDir(), ".local", "state", appName)
}

// ConfigDir returns the directory holding the user-level config file.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	return filepath.Join(homeDir(), ".config", appName)
}

// UserConfigPath returns the user-level config file path.
func UserConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// EventsPath returns the default event log path.
func EventsPath() string {
	return filepath.Join(StateDir(), "events.jsonl")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return os.TempDir()
	}
	return home
}
