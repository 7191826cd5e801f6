package policy

import (
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/timestep"
)

// constSource is a rand.Source that always returns the same value
type constSource uint64

func (c constSource) Uint64() uint64 { return uint64(c) }
func (c constSource) Seed(uint64)    {}

func TestGreedyPicksBestAction(t *testing.T) {
	table := qtable.New(4, 4, qtable.Legacy)
	table.Set(2, 3, 0.4)
	table.Set(2, 1, 0.2)

	p := NewGreedy(table, 1)
	for i := 0; i < 100; i++ {
		if a := p.SelectAction(timestep.New(timestep.Mid, 0, 2, 1)); a != 3 {
			t.Fatalf("greedy policy picked %d, want 3", a)
		}
		if a := p.ChooseAction(0, 0); a != 0 {
			t.Fatalf("greedy policy on a zero row picked %d, want 0", a)
		}
	}
}

func TestExploitBranch(t *testing.T) {
	table := qtable.New(1, 4, qtable.Legacy)
	table.Set(0, 2, 1)

	// A source this large makes Float64 return a value close to 1,
	// which is never below ε = 0.9
	p := NewEGreedyFromSource(0.9, table, constSource(0xFFFFFFFFFFFFF000))
	for i := 0; i < 10; i++ {
		if a := p.SelectAction(timestep.New(timestep.First, 0, 0, 0)); a != 2 {
			t.Fatalf("exploit branch picked %d, want 2", a)
		}
	}
}

func TestExploreBranch(t *testing.T) {
	table := qtable.New(1, 4, qtable.Legacy)
	table.Set(0, 2, 1)

	// A zero source makes Float64 return 0, always below ε > 0, and
	// Intn return 0
	p := NewEGreedyFromSource(0.1, table, constSource(0))
	for i := 0; i < 10; i++ {
		if a := p.ChooseAction(0, p.Epsilon()); a != 0 {
			t.Fatalf("explore branch picked %d, want 0", a)
		}
	}
}

func TestExplorationIsUniform(t *testing.T) {
	const draws = 40_000

	table := qtable.New(1, 4, qtable.Legacy)
	table.Set(0, 1, 5) // The greedy action must not be favoured
	p := NewEGreedy(1.0, table, 20230917)

	counts := make([]float64, 4)
	for i := 0; i < draws; i++ {
		counts[p.ChooseAction(0, 1.0)]++
	}

	expected := []float64{draws / 4, draws / 4, draws / 4, draws / 4}
	chi2 := stat.ChiSquare(counts, expected)

	// Reject uniformity only at the 0.1% level
	critical := distuv.ChiSquared{K: 3}.Quantile(0.999)
	if chi2 > critical {
		t.Errorf("action counts %v are not uniform: χ² = %.2f > %.2f", counts,
			chi2, critical)
	}
}

func TestExplorationRate(t *testing.T) {
	const draws = 20_000

	table := qtable.New(1, 4, qtable.Legacy)
	table.Set(0, 3, 1)
	p := NewEGreedy(0.4, table, 7)

	greedy := 0
	for i := 0; i < draws; i++ {
		if p.ChooseAction(0, p.Epsilon()) == 3 {
			greedy++
		}
	}

	// P(greedy) = 1 - ε + ε/4 = 0.7
	rate := float64(greedy) / draws
	if rate < 0.68 || rate > 0.72 {
		t.Errorf("greedy rate %.3f, want about 0.7", rate)
	}
}

var _ rand.Source = constSource(0)
