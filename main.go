// Command qlgrid trains tabular Q-learning agents on grid worlds
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sfneuman.com/qlgrid/commands"
)

var rootCmd = &cobra.Command{
	Use:   "qlgrid",
	Short: "Tabular Q-learning on grid worlds",
	Long: `qlgrid trains tabular Q-learning agents to find a shortest path from
the top-left cell of a square grid to a goal cell while avoiding
penalty cells.

Grids are given as JSON configuration files, for example:

  {
    "MaxEpochs": 20000,
    "Seed": 1,
    "EnvConf": {"Grid": [[0, 0, 0], [0, -1, 0], [0, 0, 1]]},
    "AgentConf": {"Alpha": 0.1, "Gamma": 0.9, "Epsilon": 0.4}
  }

Without a configuration file, the default 6x6 grid is used.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(commands.TrainCmd, commands.CompeteCmd,
		commands.GridCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
