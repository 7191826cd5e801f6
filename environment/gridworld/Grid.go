package gridworld

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/utils/matutils"
)

// Cell is the code of a single grid cell. The code of a cell is also
// the reward for entering it.
type Cell int

const (
	Penalty Cell = -1
	Neutral Cell = 0
	Goal    Cell = 1
)

// Valid returns whether c is a known cell code
func (c Cell) Valid() bool {
	return c == Penalty || c == Neutral || c == Goal
}

var (
	errEmpty  = errors.New("grid has no cells")
	errNoGoal = errors.New("grid has no goal cell, episodes would never end")
)

// Grid is an immutable square matrix of cell codes
type Grid struct {
	n     int
	cells []Cell
}

// NewGrid validates and copies an N x N matrix of cell codes. The
// matrix must be square, contain only the codes -1, 0 and 1 and hold
// at least one goal cell, otherwise a *environment.ConfigurationError
// is returned.
func NewGrid(rows [][]int) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, environment.NewConfigurationError("newGrid", errEmpty)
	}

	cells := make([]Cell, 0, n*n)
	goals := 0
	for i, row := range rows {
		if len(row) != n {
			return nil, environment.NewConfigurationError("newGrid",
				fmt.Errorf("row %d has %d cells, want %d", i, len(row), n))
		}

		for j, code := range row {
			cell := Cell(code)
			if !cell.Valid() {
				return nil, environment.NewConfigurationError("newGrid",
					fmt.Errorf("cell (%d, %d) has code %d, want one of "+
						"-1, 0, 1", i, j, code))
			}
			if cell == Goal {
				goals++
			}
			cells = append(cells, cell)
		}
	}

	if goals == 0 {
		return nil, environment.NewConfigurationError("newGrid", errNoGoal)
	}

	return &Grid{n, cells}, nil
}

// MustGrid is like NewGrid but panics if the grid is invalid
func MustGrid(rows [][]int) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Size returns N, the number of rows and of columns of the grid
func (g *Grid) Size() int {
	return g.n
}

// At returns the code of the cell at state s
func (g *Grid) At(s State) Cell {
	return g.cells[s.Index(g.n)]
}

// Reward returns the reward for entering the cell at state s
func (g *Grid) Reward(s State) float64 {
	return float64(g.At(s))
}

// AtGoal returns whether state s is a goal cell
func (g *Grid) AtGoal(s State) bool {
	return g.At(s) == Goal
}

// Contains returns whether s lies inside the grid
func (g *Grid) Contains(s State) bool {
	return s.Row >= 0 && s.Row < g.n && s.Col >= 0 && s.Col < g.n
}

// Goals returns every goal cell in row-major order
func (g *Grid) Goals() []State {
	var goals []State
	for i, cell := range g.cells {
		if cell == Goal {
			goals = append(goals, StateAt(i, g.n))
		}
	}
	return goals
}

// Dense returns the grid as a gonum matrix
func (g *Grid) Dense() *mat.Dense {
	data := make([]float64, len(g.cells))
	for i, cell := range g.cells {
		data[i] = float64(cell)
	}
	return mat.NewDense(g.n, g.n, data)
}

func (g *Grid) String() string {
	return matutils.Format(g.Dense())
}
