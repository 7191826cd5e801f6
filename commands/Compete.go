package commands

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"sfneuman.com/qlgrid/environment/gridworld"
	"sfneuman.com/qlgrid/experiment"
	"sfneuman.com/qlgrid/experiment/tracker"
	"sfneuman.com/qlgrid/report"
)

// DefaultLearners is the number of learners competing by default
const DefaultLearners = 4

var (
	competeFlags    experimentFlags
	competeLearners int
	competeVerbose  bool
)

// CompeteCmd trains several independent learners on the same grid and
// ranks them by the length of their greedy paths
var CompeteCmd = &cobra.Command{
	Use:   "compete",
	Short: "Train several agents concurrently and rank their paths",
	Long: `Train several independent Q-learning agents concurrently on the same
grid. Each agent is seeded differently and reports the number of steps
its greedy policy takes to reach a goal. Agents are ranked by that
number, shortest first; agents that never reach a goal rank last.`,
	Example: `  # Four agents on the default grid
  qlgrid compete

  # Eight agents, printing what each one learned
  qlgrid compete --learners 8 --verbose`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := competeFlags.load(cmd)
		if err != nil {
			return err
		}
		if competeLearners <= 0 {
			return fmt.Errorf("compete: need at least one learner, got %d",
				competeLearners)
		}

		entries := experiment.Replicate(c, competeLearners)
		lengths := make([]*tracker.EpisodeLength, len(entries))
		for i := range entries {
			lengths[i] = tracker.NewEpisodeLength("")
			entries[i].Trackers = []tracker.Tracker{lengths[i]}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		Logger.Printf("training %d learners for %d epochs", len(entries),
			c.MaxEpochs)
		ranking, outcomes, err := experiment.Compete(ctx, entries, Logger)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		grid := gridworld.MustGrid(c.EnvConf.Grid)
		if competeVerbose {
			for _, o := range outcomes {
				fmt.Fprintf(out, "================ learner %v ================\n",
					o.ID)
				if err := report.WriteResult(out, grid.Size(), o.Result); err != nil {
					return err
				}
			}
		}

		fmt.Fprintln(out, "------------- Leaderboard -------------")
		for i, r := range ranking {
			status := ""
			if r.Incomplete {
				status = " (did not reach a goal)"
			}
			fmt.Fprintf(out, "%d. learner %v : %d steps%v\n", i+1,
				r.LearnerID, r.Steps, status)
		}

		winner, _ := ranking.Winner()
		for _, o := range outcomes {
			if o.ID == winner.LearnerID {
				fmt.Fprintf(out, "best solution by learner %v:\n", o.ID)
				fmt.Fprint(out, report.DrawGrid(competeFlags.aurora(), grid,
					o.Result.Trajectory))
			}
		}

		if competeFlags.chart != "" {
			data := make(map[string][]int, len(outcomes))
			for i, o := range outcomes {
				data[o.ID] = lengths[i].Data()
			}
			return writeChart(competeFlags.chart, data, ranking)
		}
		return nil
	},
}

func init() {
	competeFlags.register(CompeteCmd)
	CompeteCmd.Flags().IntVarP(&competeLearners, "learners", "n",
		DefaultLearners, "number of competing learners")
	CompeteCmd.Flags().BoolVarP(&competeVerbose, "verbose", "v", false,
		"print the action values and path of every learner")
}

