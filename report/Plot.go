package report

import (
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotReturns draws the return of every episode as a PNG image and
// writes it to w
func PlotReturns(w io.Writer, returns []float64) error {
	p := plot.New()

	p.Title.Text = "Learning Progress"
	p.X.Label.Text = "Episodes"
	p.Y.Label.Text = "Return"

	pts := make(plotter.XYs, len(returns))
	for i := range returns {
		pts[i].X = float64(i)
		pts[i].Y = returns[i]
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return fmt.Errorf("plotReturns: %w", err)
	}
	p.Add(line)
	p.Legend.Add("Return", line)

	img, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("plotReturns: %w", err)
	}
	if _, err := img.WriteTo(w); err != nil {
		return fmt.Errorf("plotReturns: %w", err)
	}
	return nil
}
