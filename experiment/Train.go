package experiment

import (
	"context"
	"fmt"

	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/experiment/tracker"
)

// Result is what a learner hands out once trained: its action values
// and the path its greedy policy takes from the start state
type Result struct {
	Table      *qtable.Table
	Trajectory Trajectory

	// Warning is a *NonConvergenceWarning if the greedy policy did not
	// reach a goal, and nil otherwise
	Warning error
}

// Steps returns the number of steps the greedy policy needs to reach a
// goal
func (r Result) Steps() int {
	return r.Trajectory.Len()
}

// Train validates c, trains a learner for c.MaxEpochs epochs and
// extracts its greedy trajectory. Trackers t are sent every timestep
// of training and saved once training is done.
//
// Invalid configurations are reported as errors before training
// starts. A greedy policy that does not reach a goal is not an error:
// it is reported in the Warning of the Result.
func Train(c Config, t ...tracker.Tracker) (Result, error) {
	return TrainContext(context.Background(), c, t...)
}

// TrainContext is like Train, but gives up between epochs once ctx is
// done
func TrainContext(ctx context.Context, c Config,
	t ...tracker.Tracker) (Result, error) {
	exp, learner, err := c.CreateExp(t...)
	if err != nil {
		return Result{}, fmt.Errorf("train: %w", err)
	}

	if err := exp.RunContext(ctx); err != nil {
		return Result{}, fmt.Errorf("train: %w", err)
	}
	if err := exp.Save(); err != nil {
		return Result{}, fmt.Errorf("train: %w", err)
	}

	trajectory, warning := Rollout(exp.Environment, learner.Greedy())
	return Result{
		Table:      learner.Table(),
		Trajectory: trajectory,
		Warning:    warning,
	}, nil
}
