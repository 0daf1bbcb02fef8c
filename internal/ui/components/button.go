package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button renders a Material button label.
type Button struct {
	BaseComponent
	label    string
	mode     ButtonMode
	disabled bool
	icon     string
}

// NewButton creates a text button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		mode:          ButtonText,
	}
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with colors from ButtonColors.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	content := b.label
	if b.icon != "" {
		content = b.icon + " " + content
	}
	return b.computeStyle(ctx).Render(content)
}

func (b *Button) computeStyle(ctx RenderContext) lipgloss.Style {
	state := StateEnabled
	if b.disabled {
		state = StateDisabled
	}
	table := ButtonColors(ctx.Theme)
	mode := string(b.mode)

	style := typographyStyle(b.ComputeStyle(ctx), ctx.Theme, "labelLarge").Padding(0, 2)
	if bg, ok := ctx.Palette.Resolve(stringLeaf(table, state, mode, KeyBackgroundColor)); ok {
		style = style.Background(bg)
	}
	if fg, ok := ctx.Palette.Resolve(stringLeaf(table, state, mode, KeyColor)); ok {
		style = style.Foreground(fg)
	}
	if border, ok := ctx.Palette.Resolve(stringLeaf(table, state, mode, KeyBorderColor)); ok {
		style = style.Border(borderFor(ctx.Theme)).BorderForeground(border)
	}
	if b.mode == ButtonText && !b.disabled {
		style = style.Underline(true)
	}
	return style
}

// WithMode sets the button mode.
func (b *Button) WithMode(mode ButtonMode) *Button {
	b.mode = mode
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithIcon prefixes the label with a glyph.
func (b *Button) WithIcon(icon string) *Button {
	b.icon = icon
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// Mode returns the button mode.
func (b *Button) Mode() ButtonMode {
	return b.mode
}

// IsDisabled returns true if the button is disabled.
func (b *Button) IsDisabled() bool {
	return b.disabled
}

// ContainedButton creates a filled button.
func ContainedButton(label string) *Button {
	return NewButton(label).WithMode(ButtonContained)
}

// OutlinedButton creates an outlined button.
func OutlinedButton(label string) *Button {
	return NewButton(label).WithMode(ButtonOutlined)
}

// TonalButton creates a contained-tonal button.
func TonalButton(label string) *Button {
	return NewButton(label).WithMode(ButtonContainedTonal)
}
