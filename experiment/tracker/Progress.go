package tracker

import (
	"time"

	"github.com/samuelfneumann/progressbar"

	ts "sfneuman.com/qlgrid/timestep"
)

// Progress displays a progress bar of the episodes completed in an
// experiment. The bar advances in whole percents so that long
// experiments do not flood the bar with updates.
type Progress struct {
	bar      *progressbar.ProgressBar
	episodes int
	done     int
	percent  int
	closed   bool
}

// NewProgress returns a Progress tracker for an experiment of episodes
// episodes and starts displaying its bar
func NewProgress(episodes, width int) *Progress {
	bar := progressbar.New(width, 100, time.Second, true)
	bar.Display()

	return &Progress{bar: bar, episodes: episodes}
}

// Track advances the progress bar whenever an episode ends
func (p *Progress) Track(t ts.TimeStep) {
	if !t.Last() || p.closed {
		return
	}

	p.done++
	percent := p.done * 100 / p.episodes
	for ; p.percent < percent; p.percent++ {
		p.bar.Increment()
	}
}

// Save closes the progress bar
func (p *Progress) Save() error {
	if !p.closed {
		p.bar.Close()
		p.closed = true
	}
	return nil
}
