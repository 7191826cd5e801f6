package experiment

import (
	"errors"
	"fmt"
)

var (
	// ErrNotIdle is returned when running an experiment that has
	// already been run
	ErrNotIdle = errors.New("experiment is not idle")

	// ErrNonConvergence is wrapped by every NonConvergenceWarning
	ErrNonConvergence = errors.New("greedy policy did not reach a goal")
)

// NonConvergenceWarning reports that the greedy policy of a trained
// learner did not reach a goal within the step limit of a rollout. It
// is a soft error: the partial trajectory is still usable, and usually
// means the learner was trained for too few epochs.
type NonConvergenceWarning struct {
	Limit      int
	Trajectory Trajectory
}

// Error satisifes the error interface
func (w *NonConvergenceWarning) Error() string {
	return fmt.Sprintf("rollout: %v within %d steps, stopped at %v",
		ErrNonConvergence, w.Limit, w.Trajectory.Final)
}

// Is reports ErrNonConvergence as matching every NonConvergenceWarning
func (w *NonConvergenceWarning) Is(target error) bool {
	return target == ErrNonConvergence
}

// IsNonConvergence returns whether or not an error is a
// NonConvergenceWarning
func IsNonConvergence(err error) bool {
	return errors.Is(err, ErrNonConvergence)
}
