// Package report presents trained learners: their action values and
// greedy paths as text, the grid as a coloured terminal drawing, and
// training curves and rankings as HTML charts
package report

import (
	"bytes"
	"fmt"
	"io"

	"sfneuman.com/qlgrid/experiment"
)

// WriteResult writes the action values of a trained learner, followed
// by every state and action along its greedy path, to w. States are
// written by their index in a grid of size n.
func WriteResult(w io.Writer, n int, r experiment.Result) error {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "---------------- Q Table ----------------")
	fmt.Fprintln(&buf, r.Table)

	fmt.Fprintln(&buf, "-------- Agent Road To Target ---------")
	for _, step := range r.Trajectory.Steps {
		fmt.Fprintf(&buf, "state : %d -> action : %v(%d)\n",
			step.State.Index(n), step.Action, int(step.Action))
	}
	fmt.Fprintf(&buf, "final state : %d\n", r.Trajectory.Final.Index(n))
	fmt.Fprintf(&buf, "transitions number : %d\n", r.Trajectory.Len())

	if r.Warning != nil {
		fmt.Fprintf(&buf, "warning : %v\n", r.Warning)
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writeResult: %w", err)
	}
	return nil
}
