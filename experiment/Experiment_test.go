package experiment

import (
	"context"
	"errors"
	"testing"

	"sfneuman.com/qlgrid/agent/tabular/qlearning"
	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/agent/tabular/policy"
	"sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/environment/envconfig"
	"sfneuman.com/qlgrid/environment/gridworld"
	"sfneuman.com/qlgrid/experiment/tracker"
)

var corridor = [][]int{
	{0, 0, 0},
	{0, -1, 0},
	{0, 0, 1},
}

func corridorConfig(epochs int) Config {
	return Config{
		MaxEpochs: epochs,
		Seed:      1,
		EnvConf:   envconfig.NewConfig(corridor),
		AgentConf: qlearning.Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0.3},
	}
}

func TestOnlineRunsEveryEpoch(t *testing.T) {
	lengths := tracker.NewEpisodeLength("")
	exp, _, err := corridorConfig(50).CreateExp(lengths)
	if err != nil {
		t.Fatal(err)
	}

	if exp.Status() != Idle {
		t.Errorf("new experiment: status %v", exp.Status())
	}
	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}

	if exp.Status() != Done || exp.Epoch() != 50 {
		t.Errorf("after run: status %v, epoch %d", exp.Status(), exp.Epoch())
	}
	if got := len(lengths.Data()); got != 50 {
		t.Errorf("tracked %d episodes, want 50", got)
	}
	for i, l := range lengths.Data() {
		if l < 4 {
			t.Errorf("episode %d took %d steps, the goal is 4 steps away", i, l)
		}
	}

	if err := exp.Run(); !errors.Is(err, ErrNotIdle) {
		t.Errorf("second run: expected ErrNotIdle, got %v", err)
	}
	if exp.Epoch() != 50 {
		t.Errorf("second run changed the epoch count to %d", exp.Epoch())
	}
}

func TestOnlineStartOnGoal(t *testing.T) {
	c := corridorConfig(3)
	c.EnvConf = envconfig.NewConfig([][]int{{1}})

	lengths := tracker.NewEpisodeLength("")
	exp, learner, err := c.CreateExp(lengths)
	if err != nil {
		t.Fatal(err)
	}
	if err := exp.Run(); err != nil {
		t.Fatal(err)
	}

	if got := lengths.Data(); len(got) != 3 || got[0] != 0 {
		t.Errorf("lengths: got %v, want three empty episodes", got)
	}
	if !learner.Table().Equal(qtable.New(1, gridworld.NumActions,
		qtable.Legacy)) {
		t.Error("no transition was taken, table should be untouched")
	}
}

func TestConfigValidate(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config: %v", err)
	}

	tests := map[string]func(*Config){
		"zero epochs":    func(c *Config) { c.MaxEpochs = 0 },
		"no goal":        func(c *Config) { c.EnvConf.Grid = [][]int{{0, 0}, {0, 0}} },
		"ragged grid":    func(c *Config) { c.EnvConf.Grid = [][]int{{0, 1}, {0}} },
		"zero alpha":     func(c *Config) { c.AgentConf.Alpha = 0 },
		"large epsilon":  func(c *Config) { c.AgentConf.Epsilon = 1.5 },
		"no exploration": func(c *Config) { c.AgentConf.Epsilon = 0 },
		"no exploration, strict": func(c *Config) {
			c.AgentConf.Epsilon = 0
			c.AgentConf.TieBreak = qtable.Strict
		},
	}

	for name, modify := range tests {
		c := corridorConfig(10)
		modify(&c)

		if err := c.Validate(); !environment.IsConfiguration(err) {
			t.Errorf("%v: expected a configuration error, got %v", name, err)
		}
		if _, err := Train(c); !environment.IsConfiguration(err) {
			t.Errorf("%v: Train should refuse to start, got %v", name, err)
		}
	}
}

func TestRolloutUntrained(t *testing.T) {
	env, _, err := envconfig.NewConfig(corridor).Create()
	if err != nil {
		t.Fatal(err)
	}

	// All-zero rows pick LEFT, which keeps the agent against the wall
	greedy := policy.NewGreedy(qtable.New(9, gridworld.NumActions,
		qtable.Legacy), 1)
	trajectory, err := Rollout(env, greedy)

	if !IsNonConvergence(err) {
		t.Fatalf("expected a non-convergence warning, got %v", err)
	}
	var warning *NonConvergenceWarning
	if !errors.As(err, &warning) || warning.Limit != 9 {
		t.Errorf("expected a warning with limit 9, got %v", err)
	}

	if trajectory.Reached || trajectory.Len() != 9 {
		t.Errorf("got %d steps, reached = %v", trajectory.Len(),
			trajectory.Reached)
	}
	if trajectory.Final != (gridworld.State{}) {
		t.Errorf("final: got %v", trajectory.Final)
	}
	for _, step := range trajectory.Steps {
		if step.Action != gridworld.Left {
			t.Errorf("expected LEFT everywhere, got %v", step.Action)
		}
	}
}

// pathTable returns a table whose greedy policy walks along the top
// row and down the right column of the corridor
func pathTable() *qtable.Table {
	table := qtable.New(9, gridworld.NumActions, qtable.Legacy)
	table.Set(0, int(gridworld.Right), 0.5)
	table.Set(1, int(gridworld.Right), 0.5)
	table.Set(2, int(gridworld.Down), 0.5)
	table.Set(5, int(gridworld.Down), 1)
	return table
}

func TestRolloutIdempotent(t *testing.T) {
	env, _, err := envconfig.NewConfig(corridor).Create()
	if err != nil {
		t.Fatal(err)
	}
	greedy := policy.NewGreedy(pathTable(), 1)

	first, err := Rollout(env, greedy)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Rollout(env, greedy)
	if err != nil {
		t.Fatal(err)
	}

	if !first.Equal(second) {
		t.Errorf("rollouts differ: %v and %v", first, second)
	}
	if !first.Reached || first.Len() != 4 ||
		first.Final != (gridworld.State{Row: 2, Col: 2}) {
		t.Errorf("got %v", first)
	}
}

func TestTrainCorridor(t *testing.T) {
	result, err := Train(corridorConfig(5000))
	if err != nil {
		t.Fatal(err)
	}
	if result.Warning != nil {
		t.Fatalf("unexpected warning: %v", result.Warning)
	}

	if !result.Trajectory.Reached || result.Steps() != 4 {
		t.Errorf("expected a shortest path of 4 steps, got %v",
			result.Trajectory)
	}
	for _, step := range result.Trajectory.Steps {
		if step.State == (gridworld.State{Row: 1, Col: 1}) {
			t.Errorf("greedy path crosses the penalty cell: %v",
				result.Trajectory)
		}
	}

	// The goal cell is never left, so its values are never learned
	for a := 0; a < gridworld.NumActions; a++ {
		if v := result.Table.At(8, a); v != 0 {
			t.Errorf("goal action %d has value %v", a, v)
		}
	}
}

func TestTrainDeterministic(t *testing.T) {
	first, err := Train(corridorConfig(200))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Train(corridorConfig(200))
	if err != nil {
		t.Fatal(err)
	}

	if !first.Table.Equal(second.Table) {
		t.Error("same seed should learn the same table")
	}
}

func TestNoExplorationOnGoalStart(t *testing.T) {
	c := corridorConfig(5)
	c.EnvConf = envconfig.NewConfig([][]int{{1, 0}, {0, 0}})
	c.AgentConf.Epsilon = 0

	if err := c.Validate(); err != nil {
		t.Errorf("episodes starting on a goal always end: %v", err)
	}
	if _, err := Train(c); err != nil {
		t.Error(err)
	}
}

func TestRunContextCancelled(t *testing.T) {
	lengths := tracker.NewEpisodeLength("")
	exp, _, err := corridorConfig(50).CreateExp(lengths)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := exp.RunContext(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected a cancellation error, got %v", err)
	}
	if exp.Epoch() != 0 || len(lengths.Data()) != 0 {
		t.Errorf("ran %d epochs after cancellation", exp.Epoch())
	}
	if exp.Status() != Done {
		t.Errorf("status: got %v", exp.Status())
	}
}
