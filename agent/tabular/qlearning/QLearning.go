// Package qlearning implements the tabular Q-Learning algorithm.
//
// The agent acts with an ε-greedy behaviour policy and learns the
// values of the greedy target policy using the one step Bellman
// update. Both policies read the same qtable.Table, so the greedy
// policy handed out after training is the policy that was learned.
package qlearning

import (
	"errors"
	"fmt"

	"sfneuman.com/qlgrid/agent"
	"sfneuman.com/qlgrid/agent/tabular/policy"
	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/timestep"
)

var errNoTransition = errors.New("no transition observed since last update")

// QLearning implements the Q-Learning algorithm
type QLearning struct {
	table     *qtable.Table
	behaviour *policy.EGreedy
	target    *policy.EGreedy

	alpha, gamma float64

	step       timestep.TimeStep
	transition timestep.Transition
	observed   bool
}

var _ agent.Greedier = (*QLearning)(nil)

// New creates a new QLearning agent for environment env. Its action
// values start at zero.
func New(env environment.Environment, c Config, seed uint64) (*QLearning,
	error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %w", err)
	}

	table := qtable.New(environment.NumStates(env), env.NumActions(),
		c.TieBreak)

	// The target policy never explores, so it never draws from its
	// source and the seed only matters to the behaviour policy
	behaviour := policy.NewEGreedy(c.Epsilon, table, seed)
	target := policy.NewGreedy(table, seed)

	return &QLearning{
		table:     table,
		behaviour: behaviour,
		target:    target,
		alpha:     c.Alpha,
		gamma:     c.Gamma,
	}, nil
}

// SelectAction selects an action using the behaviour policy
func (q *QLearning) SelectAction(t timestep.TimeStep) int {
	return q.behaviour.SelectAction(t)
}

// Greedy returns the target policy, which always acts greedily with
// respect to the current action values
func (q *QLearning) Greedy() agent.Policy {
	return q.target
}

// ObserveFirst observes and records the first episodic timestep
func (q *QLearning) ObserveFirst(t timestep.TimeStep) {
	q.step = t
	q.observed = false
}

// Observe observes and records any timestep other than the first
// timestep
func (q *QLearning) Observe(action int, nextStep timestep.TimeStep) {
	q.transition = timestep.NewTransition(q.step, action, nextStep)
	q.step = nextStep
	q.observed = true
}

// Step updates the action value of the last observed transition
func (q *QLearning) Step() error {
	if !q.observed {
		return fmt.Errorf("step: %w", errNoTransition)
	}

	nextAction := q.target.ChooseAction(q.transition.NextState, 0)
	Update(q.table, q.transition, nextAction, q.alpha, q.gamma)
	q.observed = false

	return nil
}

// TdError returns the TD error on a transition
func (q *QLearning) TdError(t timestep.Transition) float64 {
	nextAction := q.target.ChooseAction(t.NextState, 0)
	return Target(q.table, t, nextAction, q.gamma) - q.table.At(t.State,
		t.Action)
}

// Table returns the action values learned by the agent
func (q *QLearning) Table() *qtable.Table {
	return q.table
}
