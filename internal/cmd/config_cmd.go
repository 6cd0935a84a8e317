package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/config"
	"github.com/deeklead/kpart/internal/state"
	"github.com/deeklead/kpart/internal/style"
	"github.com/deeklead/kpart/internal/workspace"
)

var (
	configJSON      bool
	configInitUser  bool
	configInitForce bool
	configInitBase  int
)

var configCmd = &cobra.Command{
	Use:     "config",
	GroupID: GroupConfig,
	Short:   "Show the effective configuration",
	Long: `Show the configuration kpart is using and where it came from.

Lookup order:
  1. --config <path>
  2. kpart.toml (or .kpart/config.toml) in this or a parent directory
  3. $XDG_CONFIG_HOME/kpart/config.toml
  4. built-in defaults

KPART_INDEX_BASE, KPART_STRICT and KPART_NO_LOG override file settings.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a kpart.toml with default settings",
	Long: `Create kpart.toml in the current directory, making it a kpart workspace.
With --user, write the user config instead.

Examples:
  kpart config init
  kpart config init --base 0
  kpart config init --user --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

func init() {
	configCmd.Flags().BoolVar(&configJSON, "json", false, "Output as JSON")

	configInitCmd.Flags().BoolVar(&configInitUser, "user", false, "Write the user config instead of ./kpart.toml")
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "Overwrite an existing file")
	configInitCmd.Flags().IntVar(&configInitBase, "base", 1, "Index of the first partition (0 or 1)")

	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if configJSON {
		return writeJSON(out, map[string]interface{}{
			"source":     cfg.Source,
			"path":       cfg.Path,
			"index_base": cfg.IndexBase,
			"strict":     cfg.Strict,
			"log_events": cfg.LogEvents,
			"event_log":  cfg.EventsPath(),
		})
	}

	source := string(cfg.Source)
	if cfg.Path != "" {
		source += " " + style.Dim.Render(cfg.Path)
	}
	fmt.Fprintf(out, "%s %s\n\n", style.Bold.Render("Source:"), source)

	data, err := config.Encode(&cfg.Config)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	fmt.Fprintf(out, "\n%s %s\n", style.Dim.Render("event log:"), cfg.EventsPath())
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := state.UserConfigPath()
	if !configInitUser {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		path = filepath.Join(cwd, workspace.PrimaryMarker)
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	c := config.Default()
	c.IndexBase = configInitBase
	if err := config.Save(path, c); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Wrote %s\n", style.SuccessPrefix, path)
	return nil
}
