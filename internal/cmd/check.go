package cmd

import (
	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/partition"
)

var checkCmd = &cobra.Command{
	Use:     "check <name>",
	GroupID: GroupCodec,
	Short:   "Exit 0 if a filename carries a partition marker",
	Long: `Check whether a filename contains a _part<N>of<M>_ marker.

Prints nothing. Exits 0 when the marker is present and 1 otherwise, for use
in shell scripts.

Examples:
  kpart check render_part003of120_.prt && echo partitioned
  kpart check render_0042.prt || echo single file`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	name := args[0]
	ok := partition.IsPartitioned(name)

	result := "false"
	if ok {
		result = "true"
	}
	logEvent(events.TypeCheck, events.NamePayload(name, result))

	if !ok {
		return NewSilentExit(1)
	}
	return nil
}
