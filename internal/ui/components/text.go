package components

import "github.com/charmbracelet/lipgloss"

// Text renders content in one of the theme's typescale variants.
type Text struct {
	BaseComponent
	content string
	variant string
	role    string
}

// NewText creates body text in the theme's content color.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		variant:       "bodyMedium",
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	defaults := typographyStyle(lipgloss.NewStyle(), ctx.Theme, t.variant)
	if fg, ok := ctx.Palette.Role(t.colorRole(ctx)); ok {
		defaults = defaults.Foreground(fg)
	}
	// Properties set by appliers win over the variant defaults.
	return t.ComputeStyle(ctx).Inherit(defaults).Render(t.content)
}

func (t *Text) colorRole(ctx RenderContext) string {
	if t.role != "" {
		return t.role
	}
	if _, ok := ctx.Theme.Color("onSurface"); ok {
		return "onSurface"
	}
	return "text"
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// Variant returns the typescale variant.
func (t *Text) Variant() string {
	return t.variant
}

// WithVariant selects a typescale variant such as "titleLarge".
func (t *Text) WithVariant(variant string) *Text {
	t.variant = variant
	return t
}

// WithColor selects the color role used for the text.
func (t *Text) WithColor(role string) *Text {
	t.role = role
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// TitleText creates titleLarge text.
func TitleText(content string) *Text {
	return NewText(content).WithVariant("titleLarge")
}

// LabelText creates labelMedium text in the secondary content color.
func LabelText(content string) *Text {
	return NewText(content).WithVariant("labelMedium").WithColor("onSurfaceVariant")
}
