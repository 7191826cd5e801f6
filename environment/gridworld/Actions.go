package gridworld

import "fmt"

// Action is one of the four moves available in every GridWorld state
type Action int

const (
	Left Action = iota
	Right
	Down
	Up
)

// NumActions is the number of actions in a GridWorld
const NumActions = 4

// Actions lists every Action in index order
var Actions = [NumActions]Action{Left, Right, Down, Up}

// deltas holds the (row, col) displacement of each action
var deltas = [NumActions][2]int{
	{0, -1}, // Left
	{0, 1},  // Right
	{1, 0},  // Down
	{-1, 0}, // Up
}

// Valid returns whether a is one of the four GridWorld actions
func (a Action) Valid() bool {
	return a >= Left && a <= Up
}

// Delta returns the row and column displacement of the action. Delta
// panics if the action is not valid.
func (a Action) Delta() (dRow, dCol int) {
	if !a.Valid() {
		panic(fmt.Sprintf("delta: invalid action %d", int(a)))
	}
	d := deltas[a]
	return d[0], d[1]
}

func (a Action) String() string {
	switch a {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	case Down:
		return "DOWN"
	case Up:
		return "UP"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
