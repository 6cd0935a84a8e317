package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/partition"
)

var rewriteCmd = &cobra.Command{
	Use:     "rewrite <name> <index>",
	GroupID: GroupCodec,
	Short:   "Replace the partition index in a filename",
	Long: `Replace the current index of a filename's partition marker.

The new index is zero-padded to the digit count of the marker's total,
whatever padding the input used. Nothing outside the marker changes.

Examples:
  kpart rewrite render_part003of120_.prt 7    # render_part007of120_.prt
  kpart rewrite render_part03of100_.prt 7     # render_part007of100_.prt`,
	Args: cobra.ExactArgs(2),
	RunE: runRewrite,
}

func init() {
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	name := args[0]
	index, err := parseIndex("index", args[1])
	if err != nil {
		return err
	}

	result, err := partition.Rewrite(name, index)
	if err != nil {
		return err
	}

	logEvent(events.TypeRewrite, events.NamePayload(name, result))
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
