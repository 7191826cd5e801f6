// Package policy implements policies over tabular action values
package policy

import (
	"golang.org/x/exp/rand"

	"sfneuman.com/qlgrid/agent"
	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/timestep"
)

// EGreedy implements an ε-greedy policy over a qtable.Table. With
// probability ε it selects an action uniformly at random, otherwise it
// selects the greedy action of the table.
//
// The policy reads the table it was given, so updates made to that
// table by a learner are reflected in the actions chosen.
type EGreedy struct {
	table   *qtable.Table
	epsilon float64
	rng     *rand.Rand
}

var _ agent.Policy = (*EGreedy)(nil)

// NewEGreedy constructs a new EGreedy policy, where e=epislon is the
// probability with which a random action is selected
func NewEGreedy(e float64, table *qtable.Table, seed uint64) *EGreedy {
	return NewEGreedyFromSource(e, table, rand.NewSource(seed))
}

// NewEGreedyFromSource is like NewEGreedy but draws its random numbers
// from source
func NewEGreedyFromSource(e float64, table *qtable.Table,
	source rand.Source) *EGreedy {
	return &EGreedy{table, e, rand.New(source)}
}

// ChooseAction selects an action in state s, exploring with
// probability e. No random number is drawn when e <= 0.
func (p *EGreedy) ChooseAction(s int, e float64) int {
	if e > 0 && p.rng.Float64() < e {
		_, actions := p.table.Dims()
		return p.rng.Intn(actions)
	}
	return p.table.BestAction(s)
}

// SelectAction selects an action from the ε-greedy policy in the state
// of timestep t
func (p *EGreedy) SelectAction(t timestep.TimeStep) int {
	return p.ChooseAction(t.Observation, p.epsilon)
}

// Epsilon returns the exploration probability of the policy
func (p *EGreedy) Epsilon() float64 {
	return p.epsilon
}

// Table returns the action values the policy reads
func (p *EGreedy) Table() *qtable.Table {
	return p.table
}
