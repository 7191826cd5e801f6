package commands

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/components"

	"sfneuman.com/qlgrid/experiment/leaderboard"
	"sfneuman.com/qlgrid/report"
)

// writeChart renders the training curves of each learner, and the
// ranking if it is not empty, as an HTML page at path
func writeChart(path string, lengths map[string][]int,
	ranking leaderboard.Ranking) error {
	charts := []components.Charter{
		report.EpisodeLengths(lengths, report.DefaultPoints),
	}
	if len(ranking) > 0 {
		charts = append(charts, report.Leaderboard(ranking))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writeChart: %w", err)
	}

	if err := report.Render(f, charts...); err != nil {
		f.Close()
		return fmt.Errorf("writeChart: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writeChart: %w", err)
	}

	Logger.Printf("charts written to %v", path)
	return nil
}

// writePlot saves a PNG plot of the episode returns at path
func writePlot(path string, returns []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writePlot: %w", err)
	}

	if err := report.PlotReturns(f, returns); err != nil {
		f.Close()
		return fmt.Errorf("writePlot: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("writePlot: %w", err)
	}

	Logger.Printf("returns plotted to %v", path)
	return nil
}
