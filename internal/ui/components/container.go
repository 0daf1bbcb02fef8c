package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/paperkit/internal/ui"
)

// Container is a box around a vertical stack of children. Card and Surface
// build on it.
type Container struct {
	BaseComponent
	children   []ui.Renderable
	layout     *Stack
	bordered   bool
	border     string
	background string
	padding    Spacing
	margin     Spacing
}

// NewContainer creates a new container with default settings.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		children:      children,
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context. Children see
// the width left inside the border and padding.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx)

	if bg, ok := ctx.Palette.Resolve(c.background); ok {
		style = style.Background(bg)
	}
	inner := c.padding.Horizontal()
	if c.bordered {
		style = style.Border(borderFor(ctx.Theme))
		if color, ok := ctx.Palette.Resolve(c.border); ok {
			style = style.BorderForeground(color)
		}
		inner += 2
	}
	style = c.padding.apply(style, false)
	style = c.margin.apply(style, true)

	var content string
	if len(c.children) > 0 {
		childCtx := ctx
		if width := ctx.Constraints.width(ctx.ParentWidth, 0); width > inner {
			childCtx.ParentWidth = width - inner
			if ctx.Constraints.MaxWidth > 0 {
				childCtx.Constraints = WithMaxWidth(width - inner)
			}
		}
		content = c.layout.ViewWithContext(childCtx)
	}

	return style.Render(content)
}

// WithBorder draws a border in the given color value. An empty or
// transparent color keeps the terminal default.
func (c *Container) WithBorder(color string) *Container {
	c.bordered = true
	c.border = color
	return c
}

// WithBackground fills the container with a color value.
func (c *Container) WithBackground(color string) *Container {
	c.background = color
	return c
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithMargin sets the margin.
func (c *Container) WithMargin(margin Spacing) *Container {
	c.margin = margin
	return c
}

// WithStyle sets the container style.
func (c *Container) WithStyle(style lipgloss.Style) *Container {
	c.SetStyle(style)
	return c
}

// WithAppliers applies theme-based style modifiers.
func (c *Container) WithAppliers(appliers ...StyleFunc) *Container {
	c.AddAppliers(appliers...)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// Add appends children to the container.
func (c *Container) Add(children ...ui.Renderable) *Container {
	c.children = append(c.children, children...)
	c.layout.Add(children...)
	return c
}

// Prepend inserts children before the existing ones.
func (c *Container) Prepend(children ...ui.Renderable) *Container {
	all := make([]ui.Renderable, 0, len(children)+len(c.children))
	all = append(all, children...)
	all = append(all, c.children...)
	c.children = all
	c.layout.SetChildren(all)
	return c
}

// Children returns the child renderables.
func (c *Container) Children() []ui.Renderable {
	return c.children
}
