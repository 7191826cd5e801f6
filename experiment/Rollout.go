package experiment

import (
	"sfneuman.com/qlgrid/agent"
	"sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/environment/gridworld"
)

// Step is a single state visited by a rollout and the action taken in
// it
type Step struct {
	State  gridworld.State
	Action gridworld.Action
}

// Trajectory is the path followed by a policy from the start state
type Trajectory struct {
	Steps   []Step
	Final   gridworld.State // state the rollout stopped in
	Reached bool            // whether Final is a goal
}

// Len returns the number of steps taken
func (t Trajectory) Len() int {
	return len(t.Steps)
}

// Equal returns whether two trajectories visit the same states with the
// same actions
func (t Trajectory) Equal(other Trajectory) bool {
	if t.Final != other.Final || t.Reached != other.Reached ||
		len(t.Steps) != len(other.Steps) {
		return false
	}
	for i := range t.Steps {
		if t.Steps[i] != other.Steps[i] {
			return false
		}
	}
	return true
}

// Rollout resets env and follows policy p until the episode ends,
// recording every state visited and action taken.
//
// A rollout is cut off after as many steps as env has states. A
// policy that needs more steps than that to reach a goal is walking in
// circles, and Rollout then returns the partial trajectory along with
// a *NonConvergenceWarning.
func Rollout(env environment.Environment, p agent.Policy) (Trajectory,
	error) {
	limit := environment.NewStepLimit(environment.NumStates(env))
	_, cols := env.Dims()

	var t Trajectory
	step := env.Reset()
	for !step.Last() {
		if limit.End(step) {
			t.Final = gridworld.StateAt(step.Observation, cols)
			return t, &NonConvergenceWarning{limit.Steps(), t}
		}

		action := p.SelectAction(step)
		t.Steps = append(t.Steps, Step{
			State:  gridworld.StateAt(step.Observation, cols),
			Action: gridworld.Action(action),
		})
		step, _ = env.Step(action)
	}

	t.Final = gridworld.StateAt(step.Observation, cols)
	t.Reached = true
	return t, nil
}
