package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/partition"
)

var wildcardGlob bool

var wildcardCmd = &cobra.Command{
	Use:     "wildcard <name>...",
	GroupID: GroupCodec,
	Short:   "Replace the partition index with a * wildcard",
	Long: `Print the wildcard form of each filename's partition marker, matching
every partition of the same sequence. The total is kept as written.

With --glob, glob metacharacters elsewhere in the name are escaped so the
result can be handed to a glob matcher as is.

Examples:
  kpart wildcard render_part003of120_.prt          # render_part*of120_.prt
  ls $(kpart wildcard --glob 'shot[1]_part1of4_.prt')`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWildcard,
}

func init() {
	wildcardCmd.Flags().BoolVar(&wildcardGlob, "glob", false, "Escape glob metacharacters outside the marker")
	rootCmd.AddCommand(wildcardCmd)
}

func runWildcard(cmd *cobra.Command, args []string) error {
	for _, name := range args {
		var result string
		var err error
		if wildcardGlob {
			result, err = partition.GlobPattern(name)
		} else {
			result, err = partition.Wildcard(name)
		}
		if err != nil {
			return err
		}
		logEvent(events.TypeWildcard, events.NamePayload(name, result))
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return nil
}
