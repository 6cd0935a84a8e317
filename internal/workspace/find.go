// Package workspace locates the project directory that holds a kpart config.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Markers used to detect a workspace.
const (
	// PrimaryMarker is the config file at the workspace root.
	PrimaryMarker = "kpart.toml"

	// SecondaryMarker is a hidden directory holding the config, for projects
	// that keep tool settings out of the root listing.
	SecondaryMarker = ".kpart"

	secondaryConfig = "config.toml"
)

// EnvRoot names a workspace root to use when the working directory is gone.
const EnvRoot = "KPART_ROOT"

// Find walks up from startDir and returns the nearest directory carrying a
// workspace marker, or "" when there is none. Symlinks are not resolved, to
// stay consistent with os.Getwd().
func Find(startDir string) (string, error) {
	absDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	current := absDir
	for {
		if hasMarker(current) {
			return current, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", nil
		}
		current = parent
	}
}

// StartDir returns the directory workspace lookup starts from: the working
// directory, or KPART_ROOT when getcwd fails (e.g. the directory was
// deleted). It returns "" when neither is usable.
func StartDir() string {
	cwd, err := os.Getwd()
	if err == nil {
		return cwd
	}
	if root := os.Getenv(EnvRoot); root != "" && hasMarker(root) {
		return root
	}
	return ""
}

// ConfigPath returns the config file of the workspace at root. The primary
// marker wins when both exist.
func ConfigPath(root string) string {
	primary := filepath.Join(root, PrimaryMarker)
	if isFile(primary) {
		return primary
	}
	secondary := filepath.Join(root, SecondaryMarker, secondaryConfig)
	if isFile(secondary) {
		return secondary
	}
	return primary
}

func hasMarker(dir string) bool {
	return isFile(filepath.Join(dir, PrimaryMarker)) ||
		isFile(filepath.Join(dir, SecondaryMarker, secondaryConfig))
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
