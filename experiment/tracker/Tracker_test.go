package tracker

import (
	"path/filepath"
	"reflect"
	"testing"

	ts "sfneuman.com/qlgrid/timestep"
)

// episode returns the timesteps of an episode with the given rewards,
// starting with the timestep returned on reset
func episode(rewards ...float64) []ts.TimeStep {
	steps := []ts.TimeStep{ts.New(ts.First, 0, 0, 0)}
	for i, r := range rewards {
		stepType := ts.Mid
		if i == len(rewards)-1 {
			stepType = ts.Last
		}
		steps = append(steps, ts.New(stepType, r, i+1, i+1))
	}
	return steps
}

func track(t Tracker, episodes ...[]ts.TimeStep) {
	for _, e := range episodes {
		for _, step := range e {
			t.Track(step)
		}
	}
}

func TestEpisodeLength(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "lengths.bin")
	lengths := NewEpisodeLength(filename)

	track(lengths, episode(0, 0, 1), episode(1), episode(0, -1, 0, 0, 1))

	want := []int{3, 1, 5}
	if got := lengths.Data(); !reflect.DeepEqual(got, want) {
		t.Errorf("data: got %v, want %v", got, want)
	}

	mean, _ := lengths.Summary(0)
	if mean != 3 {
		t.Errorf("mean: got %v, want 3", mean)
	}
	mean, std := lengths.Summary(1)
	if mean != 5 || std != 0 {
		t.Errorf("window of 1: got (%v, %v), want (5, 0)", mean, std)
	}

	if err := lengths.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadLengths(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, want) {
		t.Errorf("loaded: got %v, want %v", loaded, want)
	}
}

func TestReturn(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "returns.bin")
	returns := NewReturn(filename)

	track(returns, episode(0, -1, 1), episode(1))

	want := []float64{0, 1}
	if got := returns.Data(); !reflect.DeepEqual(got, want) {
		t.Errorf("data: got %v, want %v", got, want)
	}
	if best := returns.Best(); best != 1 {
		t.Errorf("best: got %v", best)
	}

	if err := returns.Save(); err != nil {
		t.Fatal(err)
	}
	loaded, err := LoadReturns(filename)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, want) {
		t.Errorf("loaded: got %v, want %v", loaded, want)
	}
}

func TestReturnStartOnGoal(t *testing.T) {
	returns := NewReturn("")
	returns.Track(ts.New(ts.Last, 0, 0, 0))
	returns.Track(ts.New(ts.Last, 0, 0, 0))

	if got := returns.Data(); len(got) != 2 {
		t.Errorf("got %v, want two empty episodes", got)
	}
	if err := returns.Save(); err != nil {
		t.Errorf("save without a filename: %v", err)
	}
}

func TestReturnPanicsOnGap(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on non-sequential timesteps")
		}
	}()

	returns := NewReturn("")
	returns.Track(ts.New(ts.First, 0, 0, 0))
	returns.Track(ts.New(ts.Mid, 0, 0, 2))
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := LoadLengths(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected an error")
	}
}

func TestProgress(t *testing.T) {
	progress := NewProgress(4, 10)
	track(progress, episode(0, 1), episode(1), episode(1), episode(0, 0, 1))

	if progress.done != 4 || progress.percent != 100 {
		t.Errorf("got %d episodes at %d%%", progress.done, progress.percent)
	}
	for i := 0; i < 2; i++ {
		if err := progress.Save(); err != nil {
			t.Errorf("save %d: %v", i, err)
		}
	}
}

func TestEpisodeLengthSingleEpisode(t *testing.T) {
	lengths := NewEpisodeLength("")
	track(lengths, episode(0, 0, 0, 1))

	for _, window := range []int{0, 1, 100} {
		mean, std := lengths.Summary(window)
		if mean != 4 || std != 0 {
			t.Errorf("window %d: got (%v, %v), want (4, 0)", window, mean,
				std)
		}
	}
}
