// Package experiment implements functionality for training learners on
// gridworlds and extracting what they have learned
package experiment

import (
	"fmt"

	"sfneuman.com/qlgrid/agent/tabular/qlearning"
	"sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/environment/envconfig"
	"sfneuman.com/qlgrid/environment/gridworld"
	"sfneuman.com/qlgrid/experiment/tracker"
)

// Experiment outlines structs that can run experiments. The Run()
// method runs every episode of the experiment, and the RunEpisode()
// method runs a single episode.
//
// Experiments send each TimeStep to their Trackers, which cache the
// data they need. The Save() function then saves the cached data, and
// is usually called after an experiment has been run. New Trackers can
// be registered with an Experiment through its constructor or through
// its Register() function.
type Experiment interface {
	Run() error
	RunEpisode() error

	// Save all tracked data to disk
	Save() error

	// Adds a new tracker.Tracker to the (possibly already running)
	// experiment.
	Register(t tracker.Tracker)
}

// Config represents a configuration of an experiment: which grid to
// learn on, how to learn and for how many epochs.
type Config struct {
	MaxEpochs int
	Seed      uint64
	EnvConf   envconfig.Config
	AgentConf qlearning.Config
}

// DefaultConfig returns the configuration of a learner on the default
// grid
func DefaultConfig() Config {
	return Config{
		MaxEpochs: 20_000,
		Seed:      1,
		EnvConf:   envconfig.Default(),
		AgentConf: qlearning.Config{Alpha: 0.1, Gamma: 0.9, Epsilon: 0.4},
	}
}

// Validate checks the whole configuration before any training starts.
// Training must explore (Epsilon > 0) unless the start state is a goal.
func (c Config) Validate() error {
	if c.MaxEpochs <= 0 {
		return environment.NewConfigurationError("validate",
			fmt.Errorf("maxEpochs = %d, must be positive", c.MaxEpochs))
	}
	if err := c.EnvConf.Validate(); err != nil {
		return err
	}
	if err := c.AgentConf.Validate(); err != nil {
		return err
	}

	// Without exploration the first episode follows the greedy action of
	// an all-zero row, which walks into the wall at the start state and
	// never reaches a goal
	grid, err := gridworld.NewGrid(c.EnvConf.Grid)
	if err != nil {
		return err
	}
	if c.AgentConf.Epsilon == 0 && !grid.AtGoal(gridworld.State{}) {
		return environment.NewConfigurationError("validate",
			fmt.Errorf("epsilon = 0: episodes from %v would never end",
				gridworld.State{}))
	}
	return nil
}

// CreateExp creates the online experiment described by the Config. The
// returned learner is the one the experiment trains.
func (c Config) CreateExp(t ...tracker.Tracker) (*Online,
	*qlearning.QLearning, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, fmt.Errorf("createExp: %w", err)
	}

	env, _, err := c.EnvConf.Create()
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: %w", err)
	}

	learner, err := qlearning.New(env, c.AgentConf, c.Seed)
	if err != nil {
		return nil, nil, fmt.Errorf("createExp: %w", err)
	}

	return NewOnline(env, learner, c.MaxEpochs, t...), learner, nil
}
