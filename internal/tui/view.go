package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/numdrill/internal/drill"
	"github.com/verte-zerg/numdrill/internal/stats"
	"github.com/verte-zerg/numdrill/internal/words"
)

// View implements tea.Model.
func (m *Model) View() string {
	body := m.renderBody()
	footer := m.renderFooter()
	if m.width == 0 || m.height == 0 {
		return body + "\n" + footer
	}
	if m.height < 4 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	helpLine := m.help.View(m.keys)
	bodyHeight := m.height - 2
	placed := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	helpPlaced := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, helpLine)
	return placed + "\n" + footerLine + "\n" + helpPlaced
}

func (m *Model) renderBody() string {
	switch m.session.Status() {
	case drill.StatusIdle:
		return m.renderIdle()
	case drill.StatusListening:
		return m.renderListening()
	case drill.StatusCorrect:
		return m.renderCorrect()
	case drill.StatusIncorrect:
		return m.renderIncorrect()
	case drill.StatusComplete:
		return m.renderComplete()
	default:
		return ""
	}
}

func (m *Model) renderIdle() string {
	cfg := m.session.Config()
	lines := []string{
		titleStyle.Render("numdrill"),
		"",
		pendingStyle.Render(fmt.Sprintf("%d-digit numbers, %d trials", cfg.Digits, cfg.Trials)),
		"",
		bannerStyle.Render("Press n to start"),
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderListening() string {
	lines := []string{
		bannerStyle.Render("Listening... type what you heard"),
		"",
		m.renderCells(),
	}
	if m.session.HintShown() {
		lines = append(lines, "", hintStyle.Render(m.session.HintText()))
	}
	if m.session.GuideShown() {
		lines = append(lines, "", m.renderGuide())
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderCells() string {
	target := m.session.Target()
	input := m.session.Input()
	cells := make([]string, 0, len(target))
	for i := 0; i < len(target); i++ {
		if i < len(input) {
			cells = append(cells, cellStyle.Render(string(input[i])))
			continue
		}
		cells = append(cells, emptyCellStyle.Render("·"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

func (m *Model) renderGuide() string {
	var rows []string
	for row := 0; row < 2; row++ {
		parts := make([]string, 0, 5)
		for d := row * 5; d < row*5+5; d++ {
			parts = append(parts, fmt.Sprintf("%d %s", d, words.Verbalize(d)))
		}
		rows = append(rows, guideStyle.Render(strings.Join(parts, "   ")))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderCorrect() string {
	lines := []string{
		correctStyle.Render("Correct!"),
		"",
		titleStyle.Render(m.session.Target()),
		hintStyle.Render(m.session.HintText()),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderIncorrect() string {
	records := m.session.Records()
	response := ""
	if len(records) > 0 {
		response = records[len(records)-1].Response
	}
	lines := []string{
		incorrectStyle.Render("Not quite — listen again"),
		"",
		incorrectStyle.Render(response),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m *Model) renderComplete() string {
	summary := m.session.Summary()
	avg, best, attempts := stats.SessionMetrics(summary.Records)
	acc := stats.Accuracy(summary.FirstTryCorrect, summary.TrialsStarted)
	lines := []string{
		titleStyle.Render("Session complete"),
		"",
		fmt.Sprintf("Trials %d   First-try %d   Accuracy %d%%", summary.TrialsStarted, summary.FirstTryCorrect, acc),
		fmt.Sprintf("Attempts %d   Avg %dms   Best %dms", attempts, avg, best),
	}
	if table := stats.FormatDigitTable(m.session.DigitStats()); len(table) > 0 {
		lines = append(lines, "", guideStyle.Render(strings.Join(table, "\n")))
	}
	lines = append(lines, "", bannerStyle.Render("Press n for a new session"))
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func (m *Model) renderFooter() string {
	cfg := m.session.Config()
	acc := stats.Accuracy(m.session.FirstTryCorrect(), m.session.TrialsStarted())
	segments := []string{
		fmt.Sprintf("Trial %d/%d", m.session.TrialsStarted(), cfg.Trials),
		fmt.Sprintf("First-try %d", m.session.FirstTryCorrect()),
		fmt.Sprintf("%d%%", acc),
		fmt.Sprintf("vol %d%%", int(cfg.Volume*100)),
	}
	if m.voicesProbed {
		segments = append(segments, fmt.Sprintf("%d voices", m.voiceCount))
	}
	footer := strings.Join(segments, " · ")
	if m.width > 0 && runewidth.StringWidth(footer) > m.width {
		footer = runewidth.Truncate(footer, m.width, "…")
	}
	return footerStyle.Render(footer)
}
