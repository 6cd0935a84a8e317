/*
kpart is a toolkit for Krakatoa partition filenames.

Krakatoa particle caches split a frame into several files, each named with a
_part<CURRENT>of<TOTAL>_ marker such as "render_part003of120_0042.prt".
kpart reads and rewrites that marker and finds partition files on disk.

Usage:

	kpart <command> [arguments]

Common commands:

	kpart info <name>             Show the marker of a filename
	kpart rewrite <name> <index>  Renumber a filename's partition
	kpart wildcard <name>         Glob pattern for the whole sequence
	kpart expand <template>       List every partition filename
	kpart scan <template>         Report present and missing partitions

See 'kpart help <command>' for more information on a specific command.
*/
package main

import (
	"os"

	"github.com/deeklead/kpart/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
