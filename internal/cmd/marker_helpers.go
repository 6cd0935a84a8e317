package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/partition"
	"github.com/deeklead/kpart/internal/style"
)

// highlightMarker renders name with its marker emphasized.
func highlightMarker(name string) string {
	start, end, ok := partition.Locate(name)
	if !ok {
		return name
	}
	return name[:start] + style.Marker.Render(name[start:end]) + name[end:]
}

// parseIndex parses a partition index or total argument.
func parseIndex(what, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", what, arg)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s %d: must not be negative", what, n)
	}
	return n, nil
}

// resolveBase returns the --base flag when given, otherwise the configured
// index base.
func resolveBase(cmd *cobra.Command, flagValue int) (partition.Base, error) {
	if !cmd.Flags().Changed("base") {
		return cfg.Base(), nil
	}
	base := partition.Base(flagValue)
	if !base.IsValid() {
		return 0, fmt.Errorf("invalid --base %d: must be 0 or 1", flagValue)
	}
	return base, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
