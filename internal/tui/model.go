// Package tui provides the Bubble Tea drill interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/numdrill/internal/audio"
	"github.com/verte-zerg/numdrill/internal/drill"
	"github.com/verte-zerg/numdrill/internal/model"
)

// advanceMsg fires after the feedback delay, tagged with the scheduling epoch.
type advanceMsg struct{ epoch uint64 }

// voicesMsg reports completion of the async voice probe.
type voicesMsg struct {
	count int
	err   error
}

// Model implements the Bubble Tea drill UI.
type Model struct {
	session *drill.Session
	sink    audio.Sink
	keys    keyMap
	help    help.Model

	width  int
	height int

	voicesProbed bool
	voiceCount   int
}

// NewModel constructs a drill UI model.
func NewModel(session *drill.Session, sink audio.Sink) *Model {
	return &Model{
		session: session,
		sink:    sink,
		keys:    newKeyMap(),
		help:    help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.probeVoices
}

func (m *Model) probeVoices() tea.Msg {
	err := m.sink.Probe()
	return voicesMsg{count: len(m.sink.Voices()), err: err}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case advanceMsg:
		return m, m.apply(drill.Advance{Epoch: msg.epoch})
	case voicesMsg:
		// Voice data may never arrive; the engine default keeps working.
		m.voicesProbed = msg.err == nil
		m.voiceCount = msg.count
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.sink.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Digits):
		return m, m.apply(drill.Digit{Digit: msg.String()[0]})
	case key.Matches(msg, m.keys.Backspace):
		return m, m.apply(drill.Backspace{})
	case key.Matches(msg, m.keys.Clear):
		return m, m.apply(drill.Clear{})
	case key.Matches(msg, m.keys.Replay):
		return m, m.apply(drill.Replay{})
	case key.Matches(msg, m.keys.Start):
		return m, m.apply(drill.Start{})
	case key.Matches(msg, m.keys.Reset):
		return m, m.apply(drill.Reset{})
	case key.Matches(msg, m.keys.Hint):
		return m, m.apply(drill.ShowHint{})
	case key.Matches(msg, m.keys.Guide):
		return m, m.apply(drill.ToggleGuide{})
	case key.Matches(msg, m.keys.DigitLevel):
		next := m.session.Config().Digits%model.MaxDigits + 1
		return m, m.apply(drill.SetDigits{Digits: next})
	case key.Matches(msg, m.keys.Trials):
		return m, m.apply(drill.SetTrials{Trials: nextTrialCount(m.session.Config().Trials)})
	case key.Matches(msg, m.keys.VolumeUp):
		return m, m.adjustVolume(0.1)
	case key.Matches(msg, m.keys.VolumeDown):
		return m, m.adjustVolume(-0.1)
	default:
		return m, nil
	}
}

func nextTrialCount(current int) int {
	for i, n := range model.TrialCounts {
		if n == current {
			return model.TrialCounts[(i+1)%len(model.TrialCounts)]
		}
	}
	return model.TrialCounts[0]
}

func (m *Model) adjustVolume(delta float64) tea.Cmd {
	cmd := m.apply(drill.SetVolume{Volume: m.session.Config().Volume + delta})
	m.sink.SetVolume(m.session.Config().Volume)
	return cmd
}

// apply feeds one event to the session and turns the resulting effects into
// commands. Audio dispatch is fire-and-forget; only the feedback-delay timer
// produces a message.
func (m *Model) apply(ev drill.Event) tea.Cmd {
	effects := m.session.Apply(ev)
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case drill.Speak:
			phrase := eff.Phrase
			cmds = append(cmds, func() tea.Msg {
				m.sink.Speak(phrase)
				return nil
			})
		case drill.PlaySuccess:
			cmds = append(cmds, func() tea.Msg {
				m.sink.Success()
				return nil
			})
		case drill.PlayFailure:
			cmds = append(cmds, func() tea.Msg {
				m.sink.Failure()
				return nil
			})
		case drill.Schedule:
			epoch := eff.Epoch
			cmds = append(cmds, tea.Tick(eff.Delay, func(time.Time) tea.Msg {
				return advanceMsg{epoch: epoch}
			}))
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}
