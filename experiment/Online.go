package experiment

import (
	"context"
	"errors"
	"fmt"

	"sfneuman.com/qlgrid/agent"
	env "sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/experiment/tracker"
	ts "sfneuman.com/qlgrid/timestep"
)

var _ Experiment = (*Online)(nil)

// Status is the stage of an experiment's lifetime
type Status int

const (
	Idle Status = iota
	Running
	Done
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	default:
		return "Done"
	}
}

// Online is an Experiment that trains an agent online for a fixed
// number of epochs. Every epoch starts from the environment's start
// state and lasts until the environment reports the last step of the
// episode. No early stopping is performed: Run always runs every epoch.
//
// An Online experiment runs once, moving from Idle to Running to Done.
type Online struct {
	env.Environment
	agent.Agent
	maxEpochs    int
	currentEpoch int
	status       Status
	trackers     []tracker.Tracker
}

// NewOnline creates and returns a new online experiment on a given
// environment with a given agent. The epochs parameter determines how
// many episodes the experiment is run for, and the t parameter is a
// slice of tracker.Tracker which determine what data is saved.
func NewOnline(e env.Environment, a agent.Agent, epochs int,
	t ...tracker.Tracker) *Online {
	return &Online{
		Environment: e,
		Agent:       a,
		maxEpochs:   epochs,
		trackers:    t,
	}
}

// Register registers a tracker.Tracker with an Experiment so that data
// generated during the experiment can be tracked and saved
func (o *Online) Register(t tracker.Tracker) {
	o.trackers = append(o.trackers, t)
}

// RunEpisode runs a single episode of the experiment. The episode only
// ends once the environment reaches a last step, so the environment
// must be able to end every episode.
func (o *Online) RunEpisode() error {
	step := o.Environment.Reset()
	o.Agent.ObserveFirst(step)
	o.track(step)

	for !step.Last() {
		// Select action, step in environment
		action := o.Agent.SelectAction(step)
		step, _ = o.Environment.Step(action)
		o.track(step)

		// Observe the timestep and step the agent
		o.Agent.Observe(action, step)
		if err := o.Agent.Step(); err != nil {
			return fmt.Errorf("runEpisode: epoch %d: %w", o.currentEpoch, err)
		}
	}

	o.currentEpoch++
	return nil
}

// Run runs the entire experiment for all epochs. Run returns ErrNotIdle
// if the experiment has already been run.
func (o *Online) Run() error {
	return o.RunContext(context.Background())
}

// RunContext is like Run, but stops between epochs once ctx is done
// and returns the error of ctx. Episodes are never interrupted.
func (o *Online) RunContext(ctx context.Context) error {
	if o.status != Idle {
		return fmt.Errorf("run: %w (%v)", ErrNotIdle, o.status)
	}

	o.status = Running
	defer func() { o.status = Done }()

	for o.currentEpoch < o.maxEpochs {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("run: epoch %d: %w", o.currentEpoch, err)
		}
		if err := o.RunEpisode(); err != nil {
			return fmt.Errorf("run: %w", err)
		}
	}
	return nil
}

// Status returns the stage the experiment is in
func (o *Online) Status() Status {
	return o.status
}

// Epoch returns the number of epochs completed
func (o *Online) Epoch() int {
	return o.currentEpoch
}

// Save saves the data cached by the Trackers to disk
func (o *Online) Save() error {
	var errs []error
	for _, t := range o.trackers {
		if err := t.Save(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// track tracks the current timestep by caching its data in each
// tracker
func (o *Online) track(t ts.TimeStep) {
	for _, tracker := range o.trackers {
		tracker.Track(t)
	}
}
