// Package envconfig provides configuration structs for configuring
// gridworld environments. Environment configurations in this package
// are JSON serializable.
package envconfig

import (
	"fmt"

	"sfneuman.com/qlgrid/environment/gridworld"
	ts "sfneuman.com/qlgrid/timestep"
)

// DefaultGrid is the 6 x 6 grid learners are trained on when no grid
// is configured
var DefaultGrid = [][]int{
	{0, 0, 0, -1, 0, 0},
	{-1, 0, 0, 0, -1, 0},
	{0, 0, -1, 0, 0, -1},
	{0, -1, 1, -1, 0, 0},
	{0, 0, 0, 0, -1, 0},
	{-1, 0, -1, 0, 0, 0},
}

// Config implements a specific configuration of a gridworld
type Config struct {
	Grid [][]int
}

// NewConfig returns a new environment Config for the grid of cell
// codes grid
func NewConfig(grid [][]int) Config {
	return Config{Grid: grid}
}

// Default returns the Config of the default grid
func Default() Config {
	grid := make([][]int, len(DefaultGrid))
	for i, row := range DefaultGrid {
		grid[i] = append([]int(nil), row...)
	}
	return NewConfig(grid)
}

// Validate checks that the configured grid can be trained on
func (c Config) Validate() error {
	_, err := gridworld.NewGrid(c.Grid)
	return err
}

// Create returns the gridworld described by the Config as well as its
// first timestep. Every call returns a new, independent gridworld.
func (c Config) Create() (*gridworld.GridWorld, ts.TimeStep, error) {
	grid, err := gridworld.NewGrid(c.Grid)
	if err != nil {
		return nil, ts.TimeStep{}, fmt.Errorf("create: %w", err)
	}

	env, step := gridworld.New(grid)
	return env, step, nil
}
