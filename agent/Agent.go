// Package agent defines an agent interface
package agent

import (
	"sfneuman.com/qlgrid/timestep"
)

// Agent determines the implementation details of an agent or algorithm
//
// An Agent is composed of a Learner, which learns action values, and a
// Policy which chooses actions in each state. The Policy chooses which
// actions are taken, and the Learner uses these actions to update the
// values the Policy reads.
type Agent interface {
	Learner
	Policy
}

// Learner implements a learning algorithm that defines how action
// values are updated.
type Learner interface {
	// Step performs a single update to the learner using the last
	// observed transition
	Step() error

	// Observe records that an action lead to some timestep
	Observe(action int, nextObs timestep.TimeStep)

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep)

	// TdError returns the TD error on a transition
	TdError(t timestep.Transition) float64
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Agents usually have a
// target and behaviour policy, both reading the same action values.
type Policy interface {
	SelectAction(t timestep.TimeStep) int
}

// Greedier is an Agent that can hand out the greedy policy over its
// current action values, used to extract what the agent has learned
type Greedier interface {
	Agent
	Greedy() Policy
}
