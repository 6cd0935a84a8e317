package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deeklead/kpart/internal/discover"
	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/style"
)

var (
	scanBase   int
	scanJSON   bool
	scanStrict bool
)

var scanCmd = &cobra.Command{
	Use:     "scan <template>",
	GroupID: GroupSequence,
	Short:   "Find the partition files of a sequence on disk",
	Long: `Glob for every partition of the template's sequence and report which
files exist, which indices are missing, and which matching files do not
belong (different total, out-of-range index, or inconsistent padding).

Exits 1 when partitions are missing. With --strict (or strict = true in
kpart.toml), stray files also make the scan fail.

Examples:
  kpart scan cache/render_part1of8_0042.prt
  kpart scan --json --base 0 cache/render_part0of8_0042.prt`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().IntVar(&scanBase, "base", 1, "Index of the first partition (0 or 1)")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Output as JSON")
	scanCmd.Flags().BoolVar(&scanStrict, "strict", false, "Fail when stray files match the sequence pattern")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	template := args[0]
	base, err := resolveBase(cmd, scanBase)
	if err != nil {
		return err
	}

	report, err := discover.Scan(template, discover.Options{Base: base})
	if err != nil {
		return err
	}

	logEvent(events.TypeScan, events.ScanPayload(template, report.Total,
		len(report.Present), len(report.Missing), len(report.Stray)))

	out := cmd.OutOrStdout()
	if scanJSON {
		if err := writeJSON(out, report); err != nil {
			return err
		}
	} else {
		printScan(out, report)
	}

	strict := scanStrict || cfg.Strict
	if !report.Complete() || (strict && len(report.Stray) > 0) {
		return NewSilentExit(1)
	}
	return nil
}

func printScan(out io.Writer, r *discover.Report) {
	title := cases.Title(language.English)

	fmt.Fprintf(out, "%s %s\n", style.Bold.Render("Sequence:"), highlightMarker(r.Pattern))
	fmt.Fprintf(out, "%s %d of %d partitions present\n\n",
		style.ArrowPrefix, len(r.Present), r.Total)

	if len(r.Present) > 0 {
		fmt.Fprintf(out, "%s\n", style.Success.Render(title.String("present")))
		for _, e := range r.Present {
			fmt.Fprintf(out, "  %s %4d  %s\n", style.SuccessPrefix, e.Index, e.Path)
		}
	}

	if len(r.Missing) > 0 {
		indices := make([]string, len(r.Missing))
		for i, idx := range r.Missing {
			indices[i] = fmt.Sprint(idx)
		}
		fmt.Fprintf(out, "%s\n", style.Error.Render(title.String("missing")))
		fmt.Fprintf(out, "  %s %s\n", style.ErrorPrefix, strings.Join(indices, ", "))
	}

	if len(r.Stray) > 0 {
		fmt.Fprintf(out, "%s\n", style.Warning.Render(title.String("stray files")))
		for _, path := range r.Stray {
			fmt.Fprintf(out, "  %s %s\n", style.WarningPrefix, path)
		}
	}

	if r.Complete() {
		fmt.Fprintf(out, "\n%s sequence complete\n", style.SuccessPrefix)
	}
}
