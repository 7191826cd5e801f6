// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// TimeStep packages together a single timestep in an environment.
//
// Observation is the index of the state the agent is in after the
// step. Number counts the steps taken since the last Reset, so the
// TimeStep returned by Reset has Number 0.
type TimeStep struct {
	StepType    StepType
	Reward      float64
	Observation int
	Number      int
}

// New returns a new TimeStep
func New(t StepType, r float64, o, n int) TimeStep {
	return TimeStep{t, r, o, n}
}

// First returns whether a TimeStep is the first in an environment
func (t TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t TimeStep) Last() bool {
	return t.StepType == Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  State: %v  |  " +
		"Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.Reward, t.Observation, t.Number)
}

// Transition is a single (s, a, r, s') tuple produced by taking an
// action from the state of one TimeStep
type Transition struct {
	State     int
	Action    int
	Reward    float64
	NextState int
	Last      bool
}

// NewTransition builds the Transition between two consecutive TimeSteps
func NewTransition(step TimeStep, action int, next TimeStep) Transition {
	return Transition{
		State:     step.Observation,
		Action:    action,
		Reward:    next.Reward,
		NextState: next.Observation,
		Last:      next.Last(),
	}
}
