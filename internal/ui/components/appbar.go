package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

const defaultAppbarWidth = 48

// Appbar is a single-line top bar with a title and trailing actions.
type Appbar struct {
	BaseComponent
	title   string
	actions []string
	back    bool
}

// NewAppbar creates an app bar with the given title.
func NewAppbar(title string) *Appbar {
	return &Appbar{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
}

// View renders the app bar.
func (a *Appbar) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the bar across the available width. Material 3
// bars sit on the surface; Material 2 bars use the primary color.
func (a *Appbar) ViewWithContext(ctx RenderContext) string {
	width := ctx.Constraints.width(ctx.ParentWidth, defaultAppbarWidth)

	role := "surface"
	if ctx.Theme.Version == theme.V2 {
		role = "primary"
	}
	style := Background(role)(lipgloss.NewStyle(), ctx)

	title := a.title
	if a.back {
		title = "← " + title
	}
	left := typographyStyle(style, ctx.Theme, "titleLarge").Render(title)
	right := style.Render(strings.Join(a.actions, "  "))

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, left, style.Render(strings.Repeat(" ", gap)), right)
	return a.ComputeStyle(ctx).Inherit(style).Padding(0, 1).Render(bar)
}

// WithAction appends a trailing action label.
func (a *Appbar) WithAction(label string) *Appbar {
	a.actions = append(a.actions, label)
	return a
}

// WithBack shows a back affordance before the title.
func (a *Appbar) WithBack(back bool) *Appbar {
	a.back = back
	return a
}

// Title returns the bar title.
func (a *Appbar) Title() string {
	return a.title
}
