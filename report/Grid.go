package report

import (
	"strings"

	"github.com/logrusorgru/aurora"

	"sfneuman.com/qlgrid/environment/gridworld"
	"sfneuman.com/qlgrid/experiment"
)

var glyphs = map[gridworld.Action]string{
	gridworld.Left:  "<",
	gridworld.Right: ">",
	gridworld.Down:  "v",
	gridworld.Up:    "^",
}

// DrawGrid draws grid g with trajectory t on top of it, one line per
// row. Each state on the path shows the action taken there, goals are
// drawn as G, penalties as X and neutral cells as a dot. The final
// state of the trajectory is drawn as @ unless it is a goal.
//
// Colours are only emitted if au was created with colours enabled.
func DrawGrid(au aurora.Aurora, g *gridworld.Grid, t experiment.Trajectory) string {
	path := make(map[gridworld.State]gridworld.Action, t.Len())
	for _, step := range t.Steps {
		path[step.State] = step.Action
	}

	var b strings.Builder
	n := g.Size()
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if col > 0 {
				b.WriteString(" ")
			}
			s := gridworld.State{Row: row, Col: col}
			b.WriteString(cell(au, g, s, path, t).String())
		}
		b.WriteString("\n")
	}
	return b.String()
}

func cell(au aurora.Aurora, g *gridworld.Grid, s gridworld.State,
	path map[gridworld.State]gridworld.Action,
	t experiment.Trajectory) aurora.Value {
	if a, ok := path[s]; ok {
		glyph := glyphs[a]
		if g.At(s) == gridworld.Penalty {
			return au.Bold(au.Red(glyph))
		}
		return au.Bold(au.Cyan(glyph))
	}

	switch g.At(s) {
	case gridworld.Goal:
		return au.Green("G")
	case gridworld.Penalty:
		return au.Red("X")
	}

	if s == t.Final {
		return au.Yellow("@")
	}
	return au.Gray(12, ".")
}
