package tracker

import (
	"gonum.org/v1/gonum/stat"

	"sfneuman.com/qlgrid/timestep"
)

// EpisodeLength tracks and saves the lengths of episodes in an
// experiment.
// Note that an episode must finish for this Tracker to save its data.
type EpisodeLength struct {
	episodeLengths []int
	filename       string
}

// NewEpisodeLength returns a new EpisodeLength tracker which will save
// its data at the specified location filename. If filename is empty,
// Save does nothing.
func NewEpisodeLength(filename string) *EpisodeLength {
	return &EpisodeLength{filename: filename}
}

// Track caches the episode length if the timestep passed to it is the
// last timestep in the episode
func (e *EpisodeLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.episodeLengths = append(e.episodeLengths, t.Number)
	}
}

// Data returns the lengths of the episodes tracked so far
func (e *EpisodeLength) Data() []int {
	return append([]int(nil), e.episodeLengths...)
}

// Summary returns the mean and standard deviation of the lengths of
// the last window episodes, or of every episode if window <= 0. The
// standard deviation of a single episode is 0.
func (e *EpisodeLength) Summary(window int) (mean, std float64) {
	lengths := e.episodeLengths
	if window > 0 && window < len(lengths) {
		lengths = lengths[len(lengths)-window:]
	}
	switch len(lengths) {
	case 0:
		return 0, 0
	case 1:
		return float64(lengths[0]), 0
	}

	data := make([]float64, len(lengths))
	for i, l := range lengths {
		data[i] = float64(l)
	}
	return stat.MeanStdDev(data, nil)
}

// Save saves the data tracked by the EpisodeLength Tracker to disk
func (e *EpisodeLength) Save() error {
	if e.filename == "" {
		return nil
	}
	return save(e.filename, e.episodeLengths)
}
