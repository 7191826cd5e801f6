package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sfneuman.com/qlgrid/environment/gridworld"
	"sfneuman.com/qlgrid/experiment"
	"sfneuman.com/qlgrid/report"
)

var gridFlags experimentFlags

// GridCmd validates and draws the grid of a configuration
var GridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Validate and draw a grid",
	Long: `Validate the configured grid, or the default grid, and draw it. The
start cell is marked with @, goals with G and penalties with X.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := gridFlags.load(cmd)
		if err != nil {
			return err
		}

		env, _, err := c.EnvConf.Create()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, env)
		fmt.Fprint(out, report.DrawGrid(gridFlags.aurora(), env.Grid(),
			experiment.Trajectory{Final: env.Start()}))
		fmt.Fprintf(out, "%d states, %d actions\n",
			env.Grid().Size()*env.Grid().Size(), gridworld.NumActions)
		return nil
	},
}

func init() {
	gridFlags.register(GridCmd)
}
