package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/deeklead/kpart/internal/partition"
	"github.com/deeklead/kpart/internal/state"
	"github.com/deeklead/kpart/internal/workspace"
)

var (
	// ErrNotFound indicates the config file does not exist.
	ErrNotFound = errors.New("config file not found")

	// ErrInvalidBase indicates an index_base other than 0 or 1.
	ErrInvalidBase = errors.New("index_base must be 0 or 1")

	// ErrUnknownKey indicates the config file sets a key kpart does not know.
	ErrUnknownKey = errors.New("unknown config key")
)

// Config is the content of a kpart.toml file.
type Config struct {
	// IndexBase is the index of the first partition, 0 or 1.
	IndexBase int `toml:"index_base"`

	// Strict turns on range validation of partition indices.
	Strict bool `toml:"strict"`

	// LogEvents appends CLI operations to the event log.
	LogEvents bool `toml:"log_events"`

	// EventLog overrides the event log path.
	EventLog string `toml:"event_log,omitempty"`
}

// Source records where the effective configuration came from.
type Source string

const (
	SourceFlag      Source = "flag"
	SourceWorkspace Source = "workspace"
	SourceUser      Source = "user"
	SourceDefault   Source = "default"
)

// Loaded is a resolved configuration and its origin.
type Loaded struct {
	Config
	Source Source `toml:"-"`
	Path   string `toml:"-"`
}

// Default returns the configuration used when no file is found.
// Krakatoa numbers partitions from 1.
func Default() *Config {
	return &Config{
		IndexBase: int(partition.OneBased),
		LogEvents: true,
	}
}

// Base returns the configured index convention.
func (c *Config) Base() partition.Base {
	return partition.Base(c.IndexBase)
}

// EventsPath returns the event log path, falling back to the state directory.
func (c *Config) EventsPath() string {
	if c.EventLog != "" {
		return expandPath(c.EventLog)
	}
	return state.EventsPath()
}

// Load reads and validates a kpart.toml file. Keys absent from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from trusted config location
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes kpart.toml content from bytes.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as TOML, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := validate(cfg); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	data, err := Encode(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil { //nolint:gosec // G306: config is not sensitive
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Encode renders cfg as TOML.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return buf.Bytes(), nil
}

func validate(c *Config) error {
	if !c.Base().IsValid() {
		return fmt.Errorf("%w: got %d", ErrInvalidBase, c.IndexBase)
	}
	return nil
}

// Resolve finds the effective configuration. An explicit path wins; then a
// workspace config found above startDir; then the user config; then
// defaults. Environment overrides are applied last.
func Resolve(explicit, startDir string) (*Loaded, error) {
	loaded, err := resolveFile(explicit, startDir)
	if err != nil {
		return nil, err
	}
	if err := ApplyEnv(&loaded.Config); err != nil {
		return nil, err
	}
	return loaded, nil
}

func resolveFile(explicit, startDir string) (*Loaded, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		if err != nil {
			return nil, err
		}
		return &Loaded{Config: *cfg, Source: SourceFlag, Path: explicit}, nil
	}

	if startDir != "" {
		root, err := workspace.Find(startDir)
		if err != nil {
			return nil, err
		}
		if root != "" {
			path := workspace.ConfigPath(root)
			cfg, err := Load(path)
			if err != nil {
				return nil, err
			}
			return &Loaded{Config: *cfg, Source: SourceWorkspace, Path: path}, nil
		}
	}

	userPath := state.UserConfigPath()
	cfg, err := Load(userPath)
	switch {
	case err == nil:
		return &Loaded{Config: *cfg, Source: SourceUser, Path: userPath}, nil
	case errors.Is(err, ErrNotFound):
		return &Loaded{Config: *Default(), Source: SourceDefault}, nil
	default:
		return nil, err
	}
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
