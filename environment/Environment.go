// Package environment outlines the interfaces and structs needed to
// implement concrete tabular environments
package environment

import (
	"sfneuman.com/qlgrid/timestep"
)

// Environment implements a simulated tabular environment. States and
// actions are identified by their integer index, states being numbered
// row-major over a grid of Dims() cells.
//
// An Environment is stateful: Reset() puts the agent back at the start
// state and Step() moves it. Step() returns whether the resulting
// TimeStep is the last in the episode.
type Environment interface {
	Reset() timestep.TimeStep // Resets between episodes
	Step(action int) (timestep.TimeStep, bool)
	CurrentTimeStep() timestep.TimeStep

	Dims() (r, c int)
	NumActions() int
}

// NumStates returns the number of states in a tabular environment
func NumStates(e Environment) int {
	r, c := e.Dims()
	return r * c
}
