package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

// Snackbar is a brief message with an optional action, drawn on the
// inverse surface.
type Snackbar struct {
	BaseComponent
	message string
	action  string
}

// NewSnackbar creates a snackbar with a message.
func NewSnackbar(message string) *Snackbar {
	return &Snackbar{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

// View renders the snackbar.
func (s *Snackbar) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the snackbar. Material 2 themes have no inverse
// roles, so they use onSurface as background and the accent for the action.
func (s *Snackbar) ViewWithContext(ctx RenderContext) string {
	surfaceRole, textRole, actionRole := "inverseSurface", "inverseOnSurface", "inversePrimary"
	if ctx.Theme.Version == theme.V2 {
		surfaceRole, textRole, actionRole = "onSurface", "surface", "accent"
	}

	base := lipgloss.NewStyle()
	if bg, ok := ctx.Palette.Role(surfaceRole); ok {
		base = base.Background(bg)
	}
	text := base
	if fg, ok := ctx.Palette.Role(textRole); ok {
		text = text.Foreground(fg)
	}
	text = typographyStyle(text, ctx.Theme, "bodyMedium")

	content := text.Render(s.message)
	if s.action != "" {
		action := base
		if fg, ok := ctx.Palette.Role(actionRole); ok {
			action = action.Foreground(fg)
		}
		action = typographyStyle(action, ctx.Theme, "labelLarge").Bold(true)
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, base.Render("   "), action.Render(s.action))
	}
	return s.ComputeStyle(ctx).Inherit(base).Padding(0, 2).Render(content)
}

// WithAction sets the action label.
func (s *Snackbar) WithAction(label string) *Snackbar {
	s.action = label
	return s
}

// Message returns the snackbar message.
func (s *Snackbar) Message() string {
	return s.message
}
