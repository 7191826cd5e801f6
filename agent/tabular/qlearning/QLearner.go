package qlearning

import (
	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/timestep"
)

// Target returns the Q-learning update target of a transition,
// r + γ Q(s', a'), where a' is the action the greedy target policy
// takes in s'
func Target(table *qtable.Table, t timestep.Transition, nextAction int,
	gamma float64) float64 {
	return t.Reward + gamma*table.At(t.NextState, nextAction)
}

// Update applies the TD(0) Bellman update for transition t in place:
//
//	Q(s, a) <- Q(s, a) + α (r + γ Q(s', a') - Q(s, a))
//
// and returns the new value of Q(s, a)
func Update(table *qtable.Table, t timestep.Transition, nextAction int,
	alpha, gamma float64) float64 {
	current := table.At(t.State, t.Action)
	target := Target(table, t, nextAction, gamma)

	value := current + alpha*(target-current)
	table.Set(t.State, t.Action, value)
	return value
}
