package tui

import (
	"math/rand"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/numdrill/internal/audio"
	"github.com/verte-zerg/numdrill/internal/drill"
	"github.com/verte-zerg/numdrill/internal/generator"
	"github.com/verte-zerg/numdrill/internal/model"
)

func newTestModel(digits, trials int) *Model {
	cfg := model.Config{Digits: digits, Trials: trials, Volume: 0.8}
	session := drill.NewSession(cfg, generator.NewWithSource(rand.NewSource(7)))
	return NewModel(session, audio.NopSink{})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestStartKeyBeginsListening(t *testing.T) {
	m := newTestModel(2, 10)
	m.Update(keyRunes("n"))
	if m.session.Status() != drill.StatusListening {
		t.Fatalf("status = %v, want listening", m.session.Status())
	}
}

func TestDigitKeyAppendsInput(t *testing.T) {
	m := newTestModel(2, 10)
	m.Update(keyRunes("n"))
	first := m.session.Target()[:1]
	m.Update(keyRunes(first))
	if m.session.Input() != first {
		t.Fatalf("input = %q, want %q", m.session.Input(), first)
	}
}

func TestDigitKeyIgnoredWhileIdle(t *testing.T) {
	m := newTestModel(2, 10)
	m.Update(keyRunes("5"))
	if m.session.Input() != "" {
		t.Fatalf("input = %q, want empty while idle", m.session.Input())
	}
}

func TestStaleAdvanceMsgIgnored(t *testing.T) {
	m := newTestModel(1, 10)
	m.Update(keyRunes("n"))
	m.Update(keyRunes(m.session.Target()))
	staleEpoch := m.session.Epoch()
	m.Update(tea.KeyMsg{Type: tea.KeyEscape})

	started := m.session.TrialsStarted()
	m.Update(advanceMsg{epoch: staleEpoch})
	if m.session.TrialsStarted() != started {
		t.Fatalf("stale advance mutated session")
	}
}

func TestVolumeKeysClamp(t *testing.T) {
	m := newTestModel(1, 10)
	for i := 0; i < 5; i++ {
		m.Update(keyRunes("+"))
	}
	if got := m.session.Config().Volume; got != 1.0 {
		t.Fatalf("volume = %f, want clamped to 1.0", got)
	}
	for i := 0; i < 15; i++ {
		m.Update(keyRunes("-"))
	}
	if got := m.session.Config().Volume; got != 0.0 {
		t.Fatalf("volume = %f, want clamped to 0.0", got)
	}
}

func TestDigitLevelKeyCycles(t *testing.T) {
	m := newTestModel(1, 10)
	m.Update(keyRunes("d"))
	if got := m.session.Config().Digits; got != 2 {
		t.Fatalf("digits = %d, want 2", got)
	}
	m.Update(keyRunes("d"))
	m.Update(keyRunes("d"))
	if got := m.session.Config().Digits; got != 1 {
		t.Fatalf("digits = %d, want wrap to 1", got)
	}
}

func TestTrialCountKeyCycles(t *testing.T) {
	m := newTestModel(1, 10)
	m.Update(keyRunes("t"))
	if got := m.session.Config().Trials; got != 25 {
		t.Fatalf("trials = %d, want 25", got)
	}
	if m.session.Status() != drill.StatusListening {
		t.Fatalf("trial count change did not restart session")
	}
}

func TestRenderFooterFormats(t *testing.T) {
	m := newTestModel(1, 10)
	m.Update(keyRunes("n"))
	m.Update(keyRunes(m.session.Target()))
	out := m.renderFooter()
	for _, want := range []string{"Trial 1/10", "First-try 1", "100%", "vol 80%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer %q missing %q", out, want)
		}
	}
}

func TestRenderGuideListsNumberWords(t *testing.T) {
	m := newTestModel(1, 10)
	out := m.renderGuide()
	for _, want := range []string{"0 zero", "5 five", "9 nine"} {
		if !strings.Contains(out, want) {
			t.Fatalf("guide %q missing %q", out, want)
		}
	}
}

func TestRenderCellsShowsTypedDigits(t *testing.T) {
	m := newTestModel(3, 10)
	m.Update(keyRunes("n"))
	first := m.session.Target()[:1]
	m.Update(keyRunes(first))
	out := m.renderCells()
	if !strings.Contains(out, first) {
		t.Fatalf("cells %q missing typed digit %q", out, first)
	}
	if !strings.Contains(out, "·") {
		t.Fatalf("cells %q missing empty placeholders", out)
	}
}

func TestViewCompleteShowsSummary(t *testing.T) {
	m := newTestModel(1, 1)
	m.Update(keyRunes("n"))
	m.Update(keyRunes(m.session.Target()))
	m.Update(advanceMsg{epoch: m.session.Epoch()})
	if m.session.Status() != drill.StatusComplete {
		t.Fatalf("status = %v, want complete", m.session.Status())
	}
	out := m.renderComplete()
	for _, want := range []string{"Session complete", "Trials 1", "Accuracy 100%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("complete view missing %q", want)
		}
	}
}
