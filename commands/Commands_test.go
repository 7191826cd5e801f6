package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sfneuman.com/qlgrid/agent/tabular/qtable"
	"sfneuman.com/qlgrid/environment"
	"sfneuman.com/qlgrid/experiment"
)

const corridorJSON = `{
	"MaxEpochs": 5000,
	"EnvConf": {"Grid": [[0, 0, 0], [0, -1, 0], [0, 0, 1]]},
	"AgentConf": {"Alpha": 0.1, "Gamma": 0.9, "Epsilon": 0.3, "TieBreak": "strict"}
}`

func TestDecodeConfig(t *testing.T) {
	c, err := DecodeConfig(strings.NewReader(corridorJSON))
	if err != nil {
		t.Fatal(err)
	}

	if c.MaxEpochs != 5000 || len(c.EnvConf.Grid) != 3 {
		t.Errorf("got %+v", c)
	}
	if c.AgentConf.TieBreak != qtable.Strict {
		t.Errorf("tie break: got %v", c.AgentConf.TieBreak)
	}
	if c.Seed != experiment.DefaultConfig().Seed {
		t.Errorf("missing seed should keep its default, got %d", c.Seed)
	}
}

func TestDecodeConfigUnknownField(t *testing.T) {
	if _, err := DecodeConfig(strings.NewReader(`{"Epochs": 3}`)); err == nil {
		t.Error("expected an error for an unknown field")
	}
}

func writeConfig(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "corridor.json")
	if err := os.WriteFile(path, []byte(corridorJSON), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestTrainCmd(t *testing.T) {
	dir := t.TempDir()
	chart := filepath.Join(dir, "train.html")
	plot := filepath.Join(dir, "returns.png")

	var out bytes.Buffer
	TrainCmd.SetOut(&out)
	TrainCmd.SetArgs([]string{"--config", writeConfig(t), "--no-color",
		"--tie-break", "legacy", "--chart", chart, "--plot", plot})

	if err := TrainCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"---------------- Q Table ----------------",
		"state : 0 -> action : ",
		"final state : 8",
		"transitions number : 4",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%v", want, out.String())
		}
	}

	for _, path := range []string{chart, plot} {
		if info, err := os.Stat(path); err != nil || info.Size() == 0 {
			t.Errorf("%v was not written: %v", path, err)
		}
	}
}

func TestTrainCmdInvalid(t *testing.T) {
	TrainCmd.SetOut(&bytes.Buffer{})
	TrainCmd.SetArgs([]string{"--config", writeConfig(t), "--alpha", "0"})

	if err := TrainCmd.Execute(); !environment.IsConfiguration(err) {
		t.Errorf("expected a configuration error, got %v", err)
	}
}

func TestGridCmd(t *testing.T) {
	var out bytes.Buffer
	GridCmd.SetOut(&out)
	GridCmd.SetArgs([]string{"--no-color"})

	if err := GridCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	want := strings.Join([]string{
		"@ . . X . .",
		"X . . . X .",
		". . X . . X",
		". X G X . .",
		". . . . X .",
		"X . X . . .",
		"36 states, 4 actions",
	}, "\n")
	if !strings.Contains(out.String(), want) {
		t.Errorf("got:\n%v\nwant:\n%v", out.String(), want)
	}
}

func TestCompeteCmd(t *testing.T) {
	var out bytes.Buffer
	CompeteCmd.SetOut(&out)
	CompeteCmd.SetArgs([]string{"--config", writeConfig(t), "--no-color",
		"--learners", "2", "--verbose"})

	if err := CompeteCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"================ learner 0 ================",
		"================ learner 1 ================",
		"------------- Leaderboard -------------",
		"1. learner ",
		"2. learner ",
		"best solution by learner ",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output does not contain %q:\n%v", want, out.String())
		}
	}
}
