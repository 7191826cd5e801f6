// Package gridworld implements square 2D gridworld environments whose
// cells are neutral, penalising or goal cells
package gridworld

import (
	"fmt"

	"sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/timestep"
	"sfneuman.com/qlgrid/utils/intutils"
)

// GridWorld represents a gridworld environment
//
// Every episode starts in the top-left cell (0, 0). Moving into the
// border of the grid leaves the agent where it is. Entering a cell
// yields the cell's code as reward, and entering a goal cell ends the
// episode.
type GridWorld struct {
	grid        *Grid
	position    State
	currentStep timestep.TimeStep
}

var _ environment.Environment = (*GridWorld)(nil)

// New creates a new gridworld over grid g and returns it along with
// its first timestep
func New(g *Grid) (*GridWorld, timestep.TimeStep) {
	w := &GridWorld{grid: g}
	return w, w.Reset()
}

// Grid returns the grid the GridWorld is played on
func (g *GridWorld) Grid() *Grid {
	return g.grid
}

// Start returns the state every episode starts in
func (g *GridWorld) Start() State {
	return State{}
}

// Transition computes the outcome of taking action a in state s
// without changing the GridWorld. Each coordinate of the next state is
// clipped to the grid independently, so every action is legal in
// every state.
func (g *GridWorld) Transition(s State, a Action) (next State,
	reward float64, terminal bool) {
	dRow, dCol := a.Delta()
	last := g.grid.Size() - 1

	next = State{
		Row: intutils.Clip(s.Row+dRow, 0, last),
		Col: intutils.Clip(s.Col+dCol, 0, last),
	}
	return next, g.grid.Reward(next), g.grid.AtGoal(next)
}

// Reset moves the agent back to the start state. If the start state is
// itself a goal, the returned TimeStep is already the last one.
func (g *GridWorld) Reset() timestep.TimeStep {
	g.position = g.Start()

	stepType := timestep.First
	if g.grid.AtGoal(g.position) {
		stepType = timestep.Last
	}

	g.currentStep = timestep.New(stepType, 0, g.position.Index(g.grid.Size()), 0)
	return g.currentStep
}

// Step takes an action in the environment and returns the next
// timestep and whether it ends the episode. Step panics if the action
// is not one of the GridWorld's actions.
func (g *GridWorld) Step(action int) (timestep.TimeStep, bool) {
	next, reward, terminal := g.Transition(g.position, Action(action))
	g.position = next

	stepType := timestep.Mid
	if terminal {
		stepType = timestep.Last
	}

	g.currentStep = timestep.New(stepType, reward, next.Index(g.grid.Size()),
		g.currentStep.Number+1)
	return g.currentStep, terminal
}

// CurrentTimeStep returns the most recent timestep
func (g *GridWorld) CurrentTimeStep() timestep.TimeStep {
	return g.currentStep
}

// Position returns the current state of the agent
func (g *GridWorld) Position() State {
	return g.position
}

// Dims gets the rows and columns of the GridWorld
func (g *GridWorld) Dims() (r, c int) {
	return g.grid.Size(), g.grid.Size()
}

// NumActions returns the number of actions available in each state
func (g *GridWorld) NumActions() int {
	return NumActions
}

func (g *GridWorld) String() string {
	str := "GridWorld | At: %v  |  Goals: %v  |  Bounds: (%d, %d)"
	n := g.grid.Size()

	return fmt.Sprintf(str, g.position, g.grid.Goals(), n, n)
}
