// Package commands implements the qlgrid command line interface
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/experiment"
)

// Logger is the logger every command reports progress to
var Logger = log.New(os.Stderr, "qlgrid: ", log.LstdFlags)

// experimentFlags are the flags shared by every command that trains
// learners. Each flag overrides the matching field of the configuration
// file, or of the default configuration if no file is given.
type experimentFlags struct {
	config   string
	alpha    float64
	gamma    float64
	epsilon  float64
	epochs   int
	seed     uint64
	tieBreak string
	chart    string
	noColor  bool
}

func (f *experimentFlags) register(cmd *cobra.Command) {
	def := experiment.DefaultConfig()

	cmd.Flags().StringVarP(&f.config, "config", "c", "",
		"JSON experiment configuration file")
	cmd.Flags().Float64Var(&f.alpha, "alpha", def.AgentConf.Alpha,
		"learning rate in (0, 1]")
	cmd.Flags().Float64Var(&f.gamma, "gamma", def.AgentConf.Gamma,
		"discount factor in [0, 1]")
	cmd.Flags().Float64Var(&f.epsilon, "epsilon", def.AgentConf.Epsilon,
		"exploration probability in [0, 1]")
	cmd.Flags().IntVar(&f.epochs, "epochs", def.MaxEpochs,
		"number of training episodes per learner")
	cmd.Flags().Uint64Var(&f.seed, "seed", def.Seed, "random seed")
	cmd.Flags().StringVar(&f.tieBreak, "tie-break", def.AgentConf.TieBreak.String(),
		"greedy tie break, legacy or strict")
	cmd.Flags().StringVar(&f.chart, "chart", "",
		"write HTML charts of the run to this file")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false,
		"draw the grid without colours")
}

// load returns the configuration of the experiment: the configuration
// file if one was given, with every flag set on the command line
// applied on top
func (f *experimentFlags) load(cmd *cobra.Command) (experiment.Config, error) {
	c := experiment.DefaultConfig()
	if f.config != "" {
		var err error
		if c, err = LoadConfig(f.config); err != nil {
			return experiment.Config{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("alpha") {
		c.AgentConf.Alpha = f.alpha
	}
	if changed("gamma") {
		c.AgentConf.Gamma = f.gamma
	}
	if changed("epsilon") {
		c.AgentConf.Epsilon = f.epsilon
	}
	if changed("epochs") {
		c.MaxEpochs = f.epochs
	}
	if changed("seed") {
		c.Seed = f.seed
	}
	if changed("tie-break") {
		tb, err := qtable.ParseTieBreak(f.tieBreak)
		if err != nil {
			return experiment.Config{}, fmt.Errorf("load: %w", err)
		}
		c.AgentConf.TieBreak = tb
	}

	return c, c.Validate()
}

func (f *experimentFlags) aurora() aurora.Aurora {
	return aurora.NewAurora(!f.noColor)
}

// LoadConfig reads a JSON experiment configuration from the file at
// path. Fields missing from the file keep their default values.
func LoadConfig(path string) (experiment.Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return experiment.Config{}, fmt.Errorf("loadConfig: %w", err)
	}
	defer file.Close()

	return DecodeConfig(file)
}

// DecodeConfig decodes a JSON experiment configuration from r. Fields
// missing from the JSON keep their default values.
func DecodeConfig(r io.Reader) (experiment.Config, error) {
	c := experiment.DefaultConfig()

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return experiment.Config{}, fmt.Errorf("decodeConfig: %w", err)
	}
	return c, nil
}
