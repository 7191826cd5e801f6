// Package leaderboard ranks independently trained learners by the
// number of steps their greedy policies take to reach a goal
package leaderboard

import (
	"context"
	"fmt"
	"log"
	"sort"
)

// Report is the result a learner sends once it is trained
type Report struct {
	LearnerID string
	Steps     int

	// Incomplete is set when the learner's greedy policy did not reach
	// a goal, in which case Steps only counts the partial path
	Incomplete bool
}

// Reporter is implemented by every transport able to carry a learner's
// Report to a leaderboard. Reports are fire-and-forget: the learner
// does not wait for the ranking.
type Reporter interface {
	Report(ctx context.Context, r Report) error
}

// Ranking is an ordered list of Reports, best first
type Ranking []Report

// Rank orders reports by ascending steps. Learners that reached a goal
// always rank above learners that did not, and ties keep the order in
// which the reports arrived.
func Rank(reports []Report) Ranking {
	ranking := make(Ranking, len(reports))
	copy(ranking, reports)

	sort.SliceStable(ranking, func(i, j int) bool {
		if ranking[i].Incomplete != ranking[j].Incomplete {
			return !ranking[i].Incomplete
		}
		return ranking[i].Steps < ranking[j].Steps
	})
	return ranking
}

// Winner returns the best Report of the ranking, or false if the
// ranking is empty
func (r Ranking) Winner() (Report, bool) {
	if len(r) == 0 {
		return Report{}, false
	}
	return r[0], true
}

// Board is an in-process leaderboard. Learners running in their own
// goroutines send their Reports to the Board, and a single caller
// waits for them with Await.
type Board struct {
	reports chan Report
	logger  *log.Logger
}

var _ Reporter = (*Board)(nil)

// NewBoard returns a Board that buffers up to capacity Reports, so
// that that many learners can report without waiting for Await. If
// logger is not nil, every Report is logged as it arrives.
func NewBoard(capacity int, logger *log.Logger) *Board {
	return &Board{
		reports: make(chan Report, capacity),
		logger:  logger,
	}
}

// Report sends r to the Board. Report only blocks if the Board's
// buffer is full, and gives up when ctx is done.
func (b *Board) Report(ctx context.Context, r Report) error {
	select {
	case b.reports <- r:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("report: learner %v: %w", r.LearnerID, ctx.Err())
	}
}

// Await blocks until n Reports have arrived and returns their Ranking.
// If ctx is done first, Await returns the error of ctx.
func (b *Board) Await(ctx context.Context, n int) (Ranking, error) {
	reports := make([]Report, 0, n)

	for len(reports) < n {
		select {
		case r := <-b.reports:
			if b.logger != nil {
				b.logger.Printf("learner %v reported %d steps (%d/%d)",
					r.LearnerID, r.Steps, len(reports)+1, n)
			}
			reports = append(reports, r)

		case <-ctx.Done():
			return nil, fmt.Errorf("await: %d of %d reports received: %w",
				len(reports), n, ctx.Err())
		}
	}

	return Rank(reports), nil
}
