package viz

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avolodin/sortlab/internal/algorithms"
	"github.com/avolodin/sortlab/internal/config"
	"github.com/avolodin/sortlab/internal/dataset"
	"github.com/avolodin/sortlab/internal/playback"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Size = 8
	m, err := New(algorithms.NewRegistry(), dataset.NewGenerator(1, cfg.MinValue, cfg.MaxValue), cfg)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewWiresController(t *testing.T) {
	m := newTestModel(t)
	if m.ctrl.State() != playback.Idle {
		t.Errorf("state = %s, want idle", m.ctrl.State())
	}
	if got := len(m.ctrl.Input()); got != 8 {
		t.Errorf("input len = %d, want 8", got)
	}
}

func TestStepKeyAdvancesAndPauses(t *testing.T) {
	m := newTestModel(t)
	m.handleKey(keyMsg("n"))
	if m.ctrl.State() != playback.Paused {
		t.Errorf("state after step key = %s, want paused", m.ctrl.State())
	}
	if m.ctrl.Cursor() != 1 {
		t.Errorf("cursor = %d, want 1", m.ctrl.Cursor())
	}
}

func TestAlgorithmCycling(t *testing.T) {
	m := newTestModel(t)
	ids := m.algoIDs

	m.handleKey(keyMsg("n"))
	m.cycleAlgorithm(1)
	if m.ctrl.State() != playback.Idle {
		t.Errorf("switching algorithms should reset to idle, got %s", m.ctrl.State())
	}
	if m.algoIdx != 1 {
		t.Errorf("algoIdx = %d, want 1", m.algoIdx)
	}

	// The new producer drives a full manual run to completion.
	for i := 0; i < m.ctrl.StepCount()+64; i++ {
		if m.ctrl.State() == playback.Completed {
			break
		}
		if err := m.ctrl.StepOnce(); err != nil {
			t.Fatal(err)
		}
	}
	if m.ctrl.State() != playback.Completed {
		t.Fatalf("run with %s never completed", ids[m.algoIdx])
	}

	m.cycleAlgorithm(-1)
	if m.algoIdx != 0 {
		t.Errorf("algoIdx = %d, want 0", m.algoIdx)
	}
}

func TestPatternCycling(t *testing.T) {
	m := newTestModel(t)
	before := m.patIdx
	m.cyclePattern()
	if m.patIdx == before {
		t.Error("pattern index did not advance")
	}
	if m.ctrl.State() != playback.Idle {
		t.Errorf("new source should reset to idle, got %s", m.ctrl.State())
	}
}
