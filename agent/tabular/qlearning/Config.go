package qlearning

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r1"

	"sfneuman.com/qlgrid/agent"
	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/utils/floatutils"
)

// Valid hyperparameter ranges. The learning rate interval excludes 0.
var (
	LearningRateRange = r1.Interval{Min: 0, Max: 1}
	DiscountRange     = r1.Interval{Min: 0, Max: 1}
	EpsilonRange      = r1.Interval{Min: 0, Max: 1}
)

// Config represents a configuration for the QLearning agent
type Config struct {
	Alpha   float64 // learning rate
	Gamma   float64 // discount factor
	Epsilon float64 // epislon for behaviour policy

	TieBreak qtable.TieBreak
}

var _ agent.Config = Config{}

// CreateAgent creates the agent from the Config
func (c Config) CreateAgent(env environment.Environment,
	seed uint64) (agent.Greedier, error) {
	return New(env, c, seed)
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Alpha == 0 || !floatutils.InInterval(c.Alpha, LearningRateRange) {
		return environment.NewConfigurationError("validate",
			fmt.Errorf("alpha = %v not in (0, 1]", c.Alpha))
	}
	if !floatutils.InInterval(c.Gamma, DiscountRange) {
		return environment.NewConfigurationError("validate",
			fmt.Errorf("gamma = %v not in [0, 1]", c.Gamma))
	}
	if !floatutils.InInterval(c.Epsilon, EpsilonRange) {
		return environment.NewConfigurationError("validate",
			fmt.Errorf("epsilon = %v not in [0, 1]", c.Epsilon))
	}
	if !c.TieBreak.Valid() {
		return environment.NewConfigurationError("validate",
			fmt.Errorf("unknown tie break %v", c.TieBreak))
	}
	return nil
}
