package components

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// maxBadgeCount is the largest count shown before collapsing to "99+".
const maxBadgeCount = 99

// Badge is a small count or dot indicator.
type Badge struct {
	BaseComponent
	text string
}

// NewBadge creates a badge showing text. An empty badge renders as a dot.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

// CountBadge creates a badge for a count, collapsing large counts.
func CountBadge(count int) *Badge {
	if count > maxBadgeCount {
		return NewBadge(strconv.Itoa(maxBadgeCount) + "+")
	}
	return NewBadge(strconv.Itoa(count))
}

// View renders the badge.
func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the badge in the error role, or the notification
// color on Material 2 themes.
func (b *Badge) ViewWithContext(ctx RenderContext) string {
	role := "error"
	if _, ok := ctx.Theme.Color("notification"); ok {
		role = "notification"
	}
	defaults := Background(role)(lipgloss.NewStyle(), ctx)

	if b.text == "" {
		if fg, ok := ctx.Palette.Role(role); ok {
			return lipgloss.NewStyle().Foreground(fg).Render("●")
		}
		return "●"
	}
	defaults = typographyStyle(defaults, ctx.Theme, "labelMedium")
	return b.ComputeStyle(ctx).Inherit(defaults).Padding(0, 1).Render(b.text)
}

// WithAppliers applies theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}
