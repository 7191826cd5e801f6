// Package qtable implements tabular action-value functions
package qtable

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"sfneuman.com/qlgrid/utils/matutils"
)

// Table stores one action value per (state, action) pair. Rows are
// states and columns are actions, and every value starts at 0.0.
//
// A Table is not safe for concurrent use. Each learner owns its own.
type Table struct {
	values   *mat.Dense
	tieBreak TieBreak
}

// New returns a new zero-valued Table over states states and actions
// actions, choosing greedy actions with tie break tb
func New(states, actions int, tb TieBreak) *Table {
	return &Table{mat.NewDense(states, actions, nil), tb}
}

// Dims returns the number of states and actions in the table
func (t *Table) Dims() (states, actions int) {
	return t.values.Dims()
}

// At returns the value of taking action a in state s
func (t *Table) At(s, a int) float64 {
	return t.values.At(s, a)
}

// Set sets the value of taking action a in state s
func (t *Table) Set(s, a int, v float64) {
	t.values.Set(s, a, v)
}

// BestValue returns the largest action value in state s
func (t *Table) BestValue(s int) float64 {
	return floats.Max(t.values.RawRowView(s))
}

// BestAction returns the greedy action in state s, breaking ties
// according to the Table's TieBreak
func (t *Table) BestAction(s int) int {
	row := t.values.RowView(s)

	if t.tieBreak == Strict {
		return matutils.MaxVec(row)
	}
	return matutils.MaxVecAbove(row, 0.0)
}

// TieBreak returns the tie breaking rule of the table
func (t *Table) TieBreak() TieBreak {
	return t.tieBreak
}

// Values returns a copy of the action values, one row per state
func (t *Table) Values() *mat.Dense {
	return mat.DenseCopyOf(t.values)
}

// StateValues reshapes the best value of each state into an r x c
// matrix, the layout of the grid the states come from
func (t *Table) StateValues(r, c int) *mat.Dense {
	values := make([]float64, r*c)
	for s := range values {
		values[s] = t.BestValue(s)
	}
	return mat.NewDense(r, c, values)
}

// Equal returns whether two tables hold the same values
func (t *Table) Equal(other *Table) bool {
	return mat.Equal(t.values, other.values)
}

func (t *Table) String() string {
	return matutils.Format(t.values)
}
