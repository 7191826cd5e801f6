package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/stat"

	"sfneuman.com/qlgrid/experiment/leaderboard"
)

// DefaultPoints is the default number of points drawn per training
// curve
const DefaultPoints = 200

// EpisodeLengths returns a line chart of the episode lengths of each
// learner, keyed by learner ID. Consecutive episodes are averaged so
// that each curve has at most points points.
func EpisodeLengths(lengths map[string][]int, points int) *charts.Line {
	if points <= 0 {
		points = DefaultPoints
	}

	ids := make([]string, 0, len(lengths))
	longest := 0
	for id, data := range lengths {
		ids = append(ids, id)
		if len(data) > longest {
			longest = len(data)
		}
	}
	sort.Strings(ids)

	window := (longest + points - 1) / points
	if window == 0 {
		window = 1
	}

	var epochs []string
	for i := 0; i < longest; i += window {
		epochs = append(epochs, fmt.Sprintf("%d", i))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Episode length",
			Subtitle: fmt.Sprintf("mean over %d epochs", window),
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)
	line.SetXAxis(epochs)

	for _, id := range ids {
		items := make([]opts.LineData, 0, len(epochs))
		for _, mean := range windowMeans(lengths[id], window) {
			items = append(items, opts.LineData{Value: mean})
		}
		line.AddSeries(id, items)
	}
	return line
}

// windowMeans averages data over consecutive windows of the given size
func windowMeans(data []int, window int) []float64 {
	means := make([]float64, 0, (len(data)+window-1)/window)
	values := make([]float64, 0, window)

	for start := 0; start < len(data); start += window {
		values = values[:0]
		for i := start; i < start+window && i < len(data); i++ {
			values = append(values, float64(data[i]))
		}
		means = append(means, stat.Mean(values, nil))
	}
	return means
}

// Leaderboard returns a bar chart of the greedy path lengths of a
// ranking, best learner first
func Leaderboard(r leaderboard.Ranking) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Leaderboard",
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	ids := make([]string, len(r))
	items := make([]opts.BarData, len(r))
	for i, report := range r {
		ids[i] = report.LearnerID
		if report.Incomplete {
			ids[i] += " (incomplete)"
		}
		items[i] = opts.BarData{Value: report.Steps}
	}

	bar.SetXAxis(ids).AddSeries("steps", items)
	return bar
}

// Render renders charts c as a single HTML page to w
func Render(w io.Writer, c ...components.Charter) error {
	page := components.NewPage()
	page.AddCharts(c...)

	if err := page.Render(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
