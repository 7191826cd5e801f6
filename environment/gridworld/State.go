package gridworld

import "fmt"

// State is the position of the agent in a GridWorld
type State struct {
	Row, Col int
}

// Index returns the row-major index of the state in a GridWorld of
// size n
func (s State) Index(n int) int {
	return s.Row*n + s.Col
}

// StateAt converts a row-major index in a GridWorld of size n back
// into a State
func StateAt(index, n int) State {
	return State{Row: index / n, Col: index % n}
}

func (s State) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}
