package components

import (
	"github.com/alexisbeaulieu97/paperkit/internal/ui"
)

// Card is a container whose colors come from CardColors.
type Card struct {
	*Container
	mode   CardMode
	title  string
	footer ui.Renderable
}

// NewCard creates an elevated card.
func NewCard(children ...ui.Renderable) *Card {
	return &Card{
		Container: NewContainer(children...).WithPadding(SymmetricSpacing(0, 1)),
		mode:      CardElevated,
	}
}

// View renders the card.
func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the card in its mode. The title and footer are
// laid out around the children for this render only.
func (c *Card) ViewWithContext(ctx RenderContext) string {
	table := CardColors(ctx.Theme)
	mode := string(c.mode)

	box := *c.Container
	box.children = append([]ui.Renderable(nil), c.Children()...)
	box.layout = VStack(box.children...).WithGap(c.layout.gap)
	if c.title != "" {
		box.Prepend(NewText(c.title).WithVariant("titleMedium"))
	}
	if c.footer != nil {
		box.Add(NewDivider(), c.footer)
	}

	box.background = stringLeaf(table, mode, KeyBackgroundColor)
	box.bordered = true
	box.border = stringLeaf(table, mode, KeyBorderColor)
	if _, ok := ctx.Palette.Resolve(box.border); !ok {
		// Borderless modes still need an edge on a terminal.
		box.border = box.background
	}
	return box.ViewWithContext(ctx)
}

// WithMode sets the card mode.
func (c *Card) WithMode(mode CardMode) *Card {
	c.mode = mode
	return c
}

// WithTitle sets a titleMedium heading above the content.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter adds a footer below a divider.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// Mode returns the card mode.
func (c *Card) Mode() CardMode {
	return c.mode
}
