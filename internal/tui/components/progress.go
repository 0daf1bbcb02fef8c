package components

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Progress renders a labelled ratio bar.
type Progress struct {
	bar   progress.Model
	label string
	total int
}

// NewProgress creates a progress component for the given total.
func NewProgress(label string, total int) Progress {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 30
	return Progress{bar: bar, label: label, total: total}
}

// Ratio is done/total clamped to [0, 1]; an empty total reads as 0.
func (p Progress) Ratio(done int) float64 {
	if p.total <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1.0, float64(done)/float64(p.total)))
}

// View renders the bar for done out of the total.
func (p Progress) View(done int) string {
	label := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("%s %d/%d", p.label, done, p.total))
	return lipgloss.JoinHorizontal(lipgloss.Left, label, " ", p.bar.ViewAs(p.Ratio(done)))
}
