package experiment

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sfneuman.com/qlgrid/experiment/leaderboard"
	"sfneuman.com/qlgrid/experiment/tracker"
)

// Entry is a single learner taking part in a competition
type Entry struct {
	ID     string // generated if empty
	Config Config

	// Trackers receive the timesteps of this learner's training only
	Trackers []tracker.Tracker
}

// Outcome is the result of a single learner in a competition
type Outcome struct {
	ID     string
	Result Result
}

// Replicate returns n entries of the same configuration with IDs "0"
// to "n-1". Each entry gets its own seed so that the learners explore
// independently.
func Replicate(c Config, n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		conf := c
		conf.Seed = c.Seed + uint64(i)
		entries[i] = Entry{ID: strconv.Itoa(i), Config: conf}
	}
	return entries
}

// Compete trains every entry concurrently, each on its own gridworld
// with its own table and random source, and ranks the learners by the
// length of their greedy trajectories. Outcomes are returned in the
// order of entries.
//
// Every configuration is validated before any learner starts. If a
// learner fails, the remaining learners are abandoned and the first
// error is returned. Learners whose greedy policy does not reach a goal
// are ranked last but do not fail the competition.
//
// Once ctx is done, every learner stops at the end of its current
// epoch and Compete returns the error of ctx.
func Compete(ctx context.Context, entries []Entry,
	logger *log.Logger) (leaderboard.Ranking, []Outcome, error) {
	if len(entries) == 0 {
		return nil, nil, fmt.Errorf("compete: no learners")
	}

	ids := make([]string, len(entries))
	for i, entry := range entries {
		if err := entry.Config.Validate(); err != nil {
			return nil, nil, fmt.Errorf("compete: learner %d: %w", i, err)
		}

		ids[i] = entry.ID
		if ids[i] == "" {
			ids[i] = uuid.NewString()
		}
	}

	board := leaderboard.NewBoard(len(entries), logger)
	outcomes := make([]Outcome, len(entries))
	g, gctx := errgroup.WithContext(ctx)

	for i := range entries {
		i := i
		g.Go(func() error {
			return compete(gctx, ids[i], entries[i], board, &outcomes[i],
				logger)
		})
	}

	ranking, awaitErr := board.Await(gctx, len(entries))
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("compete: %w", err)
	}
	if awaitErr != nil {
		return nil, nil, fmt.Errorf("compete: %w", awaitErr)
	}

	return ranking, outcomes, nil
}

// compete trains a single learner and reports it to r
func compete(ctx context.Context, id string, entry Entry,
	r leaderboard.Reporter, out *Outcome, logger *log.Logger) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := TrainContext(ctx, entry.Config, entry.Trackers...)
	if err != nil {
		return fmt.Errorf("learner %v: %w", id, err)
	}
	*out = Outcome{ID: id, Result: result}

	if result.Warning != nil && logger != nil {
		logger.Printf("learner %v: %v", id, result.Warning)
	}

	return r.Report(ctx, leaderboard.Report{
		LearnerID:  id,
		Steps:      result.Steps(),
		Incomplete: result.Warning != nil,
	})
}
