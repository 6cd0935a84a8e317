package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/partition"
)

var (
	expandBase int
	expandJSON bool
)

var expandCmd = &cobra.Command{
	Use:     "expand <template>",
	GroupID: GroupSequence,
	Short:   "List every partition filename of a sequence",
	Long: `Print the filename of every partition in the template's sequence, one
per line, in index order. The template may be any member of the sequence.

Examples:
  kpart expand render_part1of4_0042.prt
  kpart expand --base 0 render_part0of4_0042.prt`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().IntVar(&expandBase, "base", 1, "Index of the first partition (0 or 1)")
	expandCmd.Flags().BoolVar(&expandJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	template := args[0]
	base, err := resolveBase(cmd, expandBase)
	if err != nil {
		return err
	}

	names, err := partition.Names(template, base)
	if err != nil {
		return err
	}

	logEvent(events.TypeExpand, events.NamePayload(template, fmt.Sprintf("%d names", len(names))))

	out := cmd.OutOrStdout()
	if expandJSON {
		return writeJSON(out, names)
	}
	for _, name := range names {
		fmt.Fprintln(out, name)
	}
	return nil
}
