package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/partition"
	"github.com/deeklead/kpart/internal/style"
)

var (
	infoJSON   bool
	infoStrict bool
	infoBase   int
)

var infoCmd = &cobra.Command{
	Use:     "info <name>...",
	GroupID: GroupCodec,
	Short:   "Show the partition marker of filenames",
	Long: `Parse the partition marker of each filename.

Names without a marker are reported as not partitioned; the command then
exits 1 after printing. Out-of-range indices are accepted unless --strict is
given (or strict = true in kpart.toml), in which case the index must lie in
the sequence for the configured index base.

Examples:
  kpart info render_part003of120_.prt
  kpart info --json cache/*.prt
  kpart info --strict --base 0 render_part0of4_.prt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfo,
}

func init() {
	infoCmd.Flags().BoolVar(&infoJSON, "json", false, "Output as JSON")
	infoCmd.Flags().BoolVar(&infoStrict, "strict", false, "Reject indices outside the sequence")
	infoCmd.Flags().IntVar(&infoBase, "base", 1, "Index of the first partition (0 or 1)")
	rootCmd.AddCommand(infoCmd)
}

// InfoResult is the JSON form of one parsed name.
type InfoResult struct {
	Name        string `json:"name"`
	Partitioned bool   `json:"partitioned"`
	Current     *int   `json:"current,omitempty"`
	Total       *int   `json:"total,omitempty"`
	Error       string `json:"error,omitempty"`
}

func runInfo(cmd *cobra.Command, args []string) error {
	base, err := resolveBase(cmd, infoBase)
	if err != nil {
		return err
	}
	strict := infoStrict || cfg.Strict

	results := make([]InfoResult, 0, len(args))
	failed := false
	for _, name := range args {
		r := inspect(name, strict, base)
		if !r.Partitioned || r.Error != "" {
			failed = true
		}
		results = append(results, r)
		logEvent(events.TypeInfo, events.NamePayload(name, r.summary()))
	}

	out := cmd.OutOrStdout()
	if infoJSON {
		if err := writeJSON(out, results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			printInfo(cmd, r)
		}
	}

	if failed {
		return NewSilentExit(1)
	}
	return nil
}

func inspect(name string, strict bool, base partition.Base) InfoResult {
	r := InfoResult{Name: name}
	info, ok := partition.Extract(name)
	if !ok {
		return r
	}
	r.Partitioned = true
	r.Current, r.Total = &info.Current, &info.Total
	if strict {
		if err := partition.Validate(info, base); err != nil {
			r.Error = err.Error()
		}
	}
	return r
}

func (r InfoResult) summary() string {
	switch {
	case !r.Partitioned:
		return "none"
	case r.Error != "":
		return r.Error
	default:
		return fmt.Sprintf("%d/%d", *r.Current, *r.Total)
	}
}

func printInfo(cmd *cobra.Command, r InfoResult) {
	out := cmd.OutOrStdout()
	if !r.Partitioned {
		fmt.Fprintf(out, "%s %s %s\n", style.Dim.Render("○"), r.Name, style.Dim.Render("(not partitioned)"))
		return
	}

	prefix := style.SuccessPrefix
	if r.Error != "" {
		prefix = style.ErrorPrefix
	}
	fmt.Fprintf(out, "%s %s\n", prefix, highlightMarker(r.Name))
	fmt.Fprintf(out, "    partition %s of %s\n",
		style.Bold.Render(fmt.Sprint(*r.Current)), style.Bold.Render(fmt.Sprint(*r.Total)))
	if r.Error != "" {
		fmt.Fprintf(out, "    %s\n", style.Error.Render(r.Error))
	}
}
