// Package cmd provides CLI commands for the kpart tool.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/deeklead/kpart/internal/config"
	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/style"
	"github.com/deeklead/kpart/internal/workspace"
)

// Global flags
var (
	configPath string
	noLog      bool
	noColor    bool
)

// cfg is the configuration resolved before every command runs.
var cfg *config.Loaded

var rootCmd = &cobra.Command{
	Use:     "kpart",
	Short:   "Krakatoa partition filename toolkit",
	Version: Version,
	Long: `kpart inspects and rewrites the partition marker Krakatoa embeds in
particle cache filenames, e.g. "render_part003of120_0042.prt".

A marker has the form _part<CURRENT>of<TOTAL>_, with CURRENT zero-padded to
the digit count of TOTAL. kpart can read it, renumber it, turn it into a glob
wildcard, add it to unpartitioned names, list every partition of a sequence,
and check which partition files exist on disk.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: persistentPreRun,
}

// Commands that run without resolving configuration.
var configExemptCommands = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
}

// persistentPreRun runs before every command.
func persistentPreRun(cmd *cobra.Command, args []string) error {
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		style.SetColor(false)
	}

	if configExemptCommands[cmd.Name()] {
		return nil
	}

	// An empty start dir skips workspace lookup; user config and defaults
	// still apply.
	loaded, err := config.Resolve(configPath, workspace.StartDir())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if noLog {
		loaded.LogEvents = false
	}
	cfg = loaded
	return nil
}

// logEvent records an operation in the event log. Failures only warn.
func logEvent(eventType string, payload map[string]interface{}) {
	if cfg == nil || !cfg.LogEvents {
		return
	}
	logger := events.NewLogger(cfg.EventsPath())
	if err := logger.Log(eventType, payload); err != nil {
		style.PrintWarning("event log: %v", err)
	}
}

// Execute runs the root command and returns an exit code.
// The caller (main) should call os.Exit with this code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		// Check for silent exit (scripting commands that signal status via exit code)
		if code, ok := IsSilentExit(err); ok {
			return code
		}
		fmt.Fprintf(os.Stderr, "%s %v\n", style.ErrorPrefix, err)
		return 1
	}
	return 0
}

// Command group IDs - used by subcommands to organize help output
const (
	GroupCodec    = "codec"
	GroupSequence = "sequence"
	GroupConfig   = "config"
	GroupDiag     = "diag"
)

func init() {
	// Enable prefix matching for subcommands (e.g., "kpart wild" -> "kpart wildcard")
	cobra.EnablePrefixMatching = true

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCodec, Title: "Filename Markers:"},
		&cobra.Group{ID: GroupSequence, Title: "Sequences:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration:"},
		&cobra.Group{ID: GroupDiag, Title: "Diagnostics:"},
	)

	rootCmd.SetHelpCommandGroupID(GroupDiag)
	rootCmd.SetCompletionCommandGroupID(GroupConfig)

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a kpart.toml file")
	rootCmd.PersistentFlags().BoolVar(&noLog, "no-log", false, "Do not record this invocation in the event log")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}
