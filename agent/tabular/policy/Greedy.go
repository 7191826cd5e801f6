package policy

import "sfneuman.com/qlgrid/agent/tabular/qtable"

// NewGreedy creates a new Greedy policy
func NewGreedy(table *qtable.Table, seed uint64) *EGreedy {
	return NewEGreedy(0.0, table, seed)
}
