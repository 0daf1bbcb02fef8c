package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultDividerWidth = 40

// Divider renders a horizontal rule in the theme's outline color.
type Divider struct {
	BaseComponent
	char  string
	width int
}

// NewDivider creates a divider that fills the available width.
func NewDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

// View renders the divider.
func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the divider with layout context.
func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Constraints.width(ctx.ParentWidth, defaultDividerWidth)
	}

	defaults := lipgloss.NewStyle()
	if c, ok := ctx.Palette.Resolve(dividerColor(ctx)); ok {
		defaults = defaults.Foreground(c)
	}
	return d.ComputeStyle(ctx).Inherit(defaults).Render(strings.Repeat(d.char, width))
}

func dividerColor(ctx RenderContext) string {
	if value, ok := ctx.Theme.Color("outlineVariant"); ok {
		return value
	}
	if value, ok := ctx.Theme.Color("text"); ok {
		return withAlpha(value, 0.12)
	}
	return ""
}

// WithChar sets the character used for the divider.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width for the divider.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithAppliers applies theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}
