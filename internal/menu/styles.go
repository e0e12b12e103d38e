package menu

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/todo/internal/config"
	"github.com/thenoetrevino/todo/internal/models"
)

// Styles are the lipgloss styles used for menu output
type Styles struct {
	Title     lipgloss.Style
	Prompt    lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Subtle    lipgloss.Style
	Pending   lipgloss.Style
	Completed lipgloss.Style
}

// NewStyles builds styles from a color scheme
func NewStyles(cs config.ColorScheme) Styles {
	return Styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cs.Accent)),
		Prompt:    lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Accent)),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Success)),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cs.Error)),
		Subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Subtle)),
		Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Pending)),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Completed)),
	}
}

// PlainStyles renders text unchanged, for piped output and tests
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:     plain,
		Prompt:    plain,
		Success:   plain,
		Error:     plain,
		Subtle:    plain,
		Pending:   plain,
		Completed: plain,
	}
}

// status picks the style for a task status
func (s Styles) status(st models.Status) lipgloss.Style {
	if st == models.StatusCompleted {
		return s.Completed
	}
	return s.Pending
}
