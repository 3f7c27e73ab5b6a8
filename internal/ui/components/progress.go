package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"parola/internal/ui/theme"
)

const (
	progressFill  = "█"
	progressEmpty = "░"
	minBarWidth   = 10
)

// ProgressBar displays a horizontal progress bar. During a drill it
// shows the main-round position; the session pins it at full once the
// retry round starts.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	pct := p.Percent
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}

	var b strings.Builder
	if p.Label != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label))
		b.WriteString("  ")
	}

	suffix := ""
	if p.ShowPercent {
		suffix = fmt.Sprintf("  %3d%%", int(pct*100))
	}

	barWidth := p.Width - lipgloss.Width(b.String()) - len(suffix)
	if barWidth < minBarWidth {
		barWidth = minBarWidth
	}

	filled := int(float64(barWidth)*pct + 0.5)
	if filled > barWidth {
		filled = barWidth
	}

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Render(strings.Repeat(progressFill, filled)))
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Border).
		Render(strings.Repeat(progressEmpty, barWidth-filled)))

	if p.ShowPercent {
		b.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(suffix))
	}

	return b.String()
}
