package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"sfneuman.com/qlgrid/environment/gridworld"
	"sfneuman.com/qlgrid/experiment"
	"sfneuman.com/qlgrid/experiment/tracker"
	"sfneuman.com/qlgrid/report"
)

var (
	trainFlags    experimentFlags
	trainLengths  string
	trainPlot     string
	trainProgress bool
)

// TrainCmd trains a single learner and prints what it learned
var TrainCmd = &cobra.Command{
	Use:   "train",
	Short: "Train a single Q-learning agent on a grid",
	Long: `Train a single Q-learning agent for a fixed number of epochs, then
print its action values and the path its greedy policy takes from the
top-left cell to a goal.`,
	Example: `  # Train on the default 6x6 grid
  qlgrid train

  # Train on a configured grid for fewer epochs
  qlgrid train --config grid.json --epochs 5000 --chart train.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := trainFlags.load(cmd)
		if err != nil {
			return err
		}

		lengths := tracker.NewEpisodeLength(trainLengths)
		returns := tracker.NewReturn("")
		trackers := []tracker.Tracker{lengths, returns}
		if trainProgress {
			trackers = append(trackers, tracker.NewProgress(c.MaxEpochs, 50))
		}

		Logger.Printf("training for %d epochs (alpha=%v gamma=%v epsilon=%v)",
			c.MaxEpochs, c.AgentConf.Alpha, c.AgentConf.Gamma,
			c.AgentConf.Epsilon)
		result, err := experiment.Train(c, trackers...)
		if err != nil {
			return err
		}

		mean, std := lengths.Summary(100)
		Logger.Printf("last 100 episodes: %.2f ± %.2f steps, best return %v",
			mean, std, returns.Best())
		if result.Warning != nil {
			Logger.Print(result.Warning)
		}

		out := cmd.OutOrStdout()
		grid := gridworld.MustGrid(c.EnvConf.Grid)
		if err := report.WriteResult(out, grid.Size(), result); err != nil {
			return err
		}
		fmt.Fprint(out, report.DrawGrid(trainFlags.aurora(), grid,
			result.Trajectory))

		if trainPlot != "" {
			if err := writePlot(trainPlot, returns.Data()); err != nil {
				return err
			}
		}
		if trainFlags.chart != "" {
			return writeChart(trainFlags.chart, map[string][]int{
				"learner": lengths.Data(),
			}, nil)
		}
		return nil
	},
}

func init() {
	trainFlags.register(TrainCmd)
	TrainCmd.Flags().StringVar(&trainLengths, "lengths", "",
		"save the episode lengths to this file")
	TrainCmd.Flags().StringVar(&trainPlot, "plot", "",
		"save a PNG plot of the episode returns to this file")
	TrainCmd.Flags().BoolVar(&trainProgress, "progress", false,
		"display a progress bar while training")
}
