package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deeklead/kpart/internal/events"
	"github.com/deeklead/kpart/internal/partition"
)

var insertCmd = &cobra.Command{
	Use:     "insert <name> <current> <total>",
	GroupID: GroupCodec,
	Short:   "Add a partition marker to a filename",
	Long: `Add a _part<current>of<total>_ marker to a filename that has none.

The marker is placed before the trailing frame number, or before the
extension when there is no frame number.

Examples:
  kpart insert particles_0042.prt 1 10   # particles_part01of10_0042.prt
  kpart insert particles.prt 3 4         # particles_part3of4_.prt`,
	Args: cobra.ExactArgs(3),
	RunE: runInsert,
}

func init() {
	rootCmd.AddCommand(insertCmd)
}

func runInsert(cmd *cobra.Command, args []string) error {
	name := args[0]
	current, err := parseIndex("index", args[1])
	if err != nil {
		return err
	}
	total, err := parseIndex("total", args[2])
	if err != nil {
		return err
	}

	if cfg.Strict {
		if err := partition.Validate(partition.Info{Current: current, Total: total}, cfg.Base()); err != nil {
			return err
		}
	}

	result, err := partition.Insert(name, current, total)
	if err != nil {
		return err
	}

	logEvent(events.TypeInsert, events.NamePayload(name, result))
	fmt.Fprintln(cmd.OutOrStdout(), result)
	return nil
}
