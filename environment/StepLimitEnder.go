package environment

import "sfneuman.com/qlgrid/timestep"

// StepLimit ends episodes at specific timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current episode should be cut off
// because it has run for the maximum number of steps. A TimeStep that
// is already the last of its episode is never cut off.
func (s StepLimit) End(t timestep.TimeStep) bool {
	return !t.Last() && t.Number >= s.episodeSteps
}

// Steps returns the step limit
func (s StepLimit) Steps() int {
	return s.episodeSteps
}
