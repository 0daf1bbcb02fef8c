package components

import "github.com/charmbracelet/lipgloss"

// Chip renders a compact selectable label.
type Chip struct {
	BaseComponent
	label    string
	mode     ChipMode
	selected bool
	disabled bool
}

// NewChip creates a flat, unselected chip.
func NewChip(label string) *Chip {
	return &Chip{
		BaseComponent: NewBaseComponent(),
		label:         label,
		mode:          ChipFlat,
	}
}

// View renders the chip.
func (c *Chip) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the chip with colors from ChipColors.
func (c *Chip) ViewWithContext(ctx RenderContext) string {
	state := StateEnabled
	if c.disabled {
		state = StateDisabled
	}
	selection := Unselected
	content := c.label
	if c.selected {
		selection = Selected
		content = "✓ " + content
	}
	table := ChipColors(ctx.Theme)
	path := []string{state, string(c.mode), selection}

	style := typographyStyle(c.ComputeStyle(ctx), ctx.Theme, "labelLarge").Padding(0, 1)
	if bg, ok := ctx.Palette.Resolve(stringLeaf(table, append(path, KeyBackgroundColor)...)); ok {
		style = style.Background(bg)
	}
	if fg, ok := ctx.Palette.Resolve(stringLeaf(table, append(path, KeyColor)...)); ok {
		style = style.Foreground(fg)
	}
	if border, ok := ctx.Palette.Resolve(stringLeaf(table, append(path, KeyBorderColor)...)); ok {
		style = style.Border(lipgloss.RoundedBorder()).BorderForeground(border)
	}
	return style.Render(content)
}

// WithMode sets the chip mode.
func (c *Chip) WithMode(mode ChipMode) *Chip {
	c.mode = mode
	return c
}

// WithSelected marks the chip selected.
func (c *Chip) WithSelected(selected bool) *Chip {
	c.selected = selected
	return c
}

// WithDisabled sets the disabled state.
func (c *Chip) WithDisabled(disabled bool) *Chip {
	c.disabled = disabled
	return c
}

// IsSelected reports the selection state.
func (c *Chip) IsSelected() bool {
	return c.selected
}
