package cmd

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/style"
)

// Log command flags
var (
	logTail  int
	logType  string
	logSince string
	logJSON  bool
)

var logCmd = &cobra.Command{
	Use:     "log",
	GroupID: GroupDiag,
	Short:   "View the kpart event log",
	Long: `View recorded kpart operations.

Event types:
  check, info, rewrite, wildcard, insert, expand, scan

Examples:
  kpart log                 # Show last 20 events
  kpart log -n 50           # Show last 50 events
  kpart log --type scan     # Show only scans
  kpart log --since 1h      # Show events from the last hour`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().IntVarP(&logTail, "tail", "n", 20, "Number of events to show")
	logCmd.Flags().StringVarP(&logType, "type", "t", "", "Filter by event type")
	logCmd.Flags().StringVar(&logSince, "since", "", "Show events since duration (e.g., 1h, 30m, 24h)")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	all, err := events.Read(cfg.EventsPath())
	if err != nil {
		return fmt.Errorf("reading events: %w", err)
	}

	filter := events.Filter{Type: logType}
	if logSince != "" {
		duration, err := time.ParseDuration(logSince)
		if err != nil {
			return fmt.Errorf("invalid --since duration: %w", err)
		}
		filter.Since = time.Now().Add(-duration)
	}

	selected := events.FilterEvents(all, filter)
	if logTail > 0 && len(selected) > logTail {
		selected = selected[len(selected)-logTail:]
	}

	out := cmd.OutOrStdout()
	if logJSON {
		if selected == nil {
			selected = []events.Event{}
		}
		return writeJSON(out, selected)
	}

	if len(selected) == 0 {
		fmt.Fprintf(out, "%s No events recorded\n", style.Dim.Render("○"))
		return nil
	}
	for _, e := range selected {
		fmt.Fprintln(out, formatEvent(e))
	}
	return nil
}

// formatEvent renders one event as a single log line.
func formatEvent(e events.Event) string {
	ts := e.Timestamp.Local().Format("2006-01-02 15:04:05")

	typeStr := "[" + e.Type + "]"
	switch e.Type {
	case events.TypeScan:
		typeStr = style.Info.Render(typeStr)
	case events.TypeRewrite, events.TypeInsert:
		typeStr = style.Success.Render(typeStr)
	default:
		typeStr = style.Dim.Render(typeStr)
	}

	keys := make([]string, 0, len(e.Payload))
	for k := range e.Payload {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Payload[k]))
	}

	return fmt.Sprintf("%s %s %s", style.Dim.Render(ts), typeStr, strings.Join(parts, " "))
}
