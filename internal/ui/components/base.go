package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/paperkit/internal/ui"
	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

// BaseComponent provides common functionality for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style
}

// StyleFunc applies styling transformations to a lipgloss.Style using the
// theme carried by the render context.
type StyleFunc func(lipgloss.Style, RenderContext) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, ctx)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component in ctx.
func (b *BaseComponent) ComputeStyle(ctx RenderContext) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, ctx)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
// A custom strategy is kept and runs before the new appliers.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	wrapper := func(base lipgloss.Style, ctx RenderContext) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, ctx)
		}
		for _, applier := range appliers {
			base = applier(base, ctx)
		}
		return base
	}
	b.strategy = NewCompositeStrategy(wrapper)
}

// Spacing represents padding or margin around a component, ordered top,
// right, bottom, left.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different horizontal and vertical values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns the total horizontal spacing.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

func (s Spacing) apply(style lipgloss.Style, margin bool) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	if margin {
		return style.Margin(s.Top, s.Right, s.Bottom, s.Left)
	}
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints defines sizing constraints for layout calculations.
// A negative maximum means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithWidth creates constraints with a fixed width.
func WithWidth(width int) Constraints {
	return Constraints{MinWidth: width, MaxWidth: width, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// width picks the width a component should fill, falling back to def.
func (c Constraints) width(parent, def int) int {
	switch {
	case c.MaxWidth > 0:
		return c.MaxWidth
	case c.MinWidth > 0:
		return c.MinWidth
	case parent > 0:
		return parent
	default:
		return def
	}
}

// RenderContext carries the resolved theme and layout information into a
// render. There is no ambient theme: every view receives one explicitly.
type RenderContext struct {
	Theme       theme.Theme
	Palette     Palette
	Constraints Constraints
	ParentWidth int
}

// NewContext builds a context for t with no layout constraints.
func NewContext(t theme.Theme) RenderContext {
	return RenderContext{
		Theme:       t,
		Palette:     NewPalette(t),
		Constraints: Unconstrained(),
	}
}

// DefaultContext renders with the stock Material 3 light theme.
func DefaultContext() RenderContext {
	return NewContext(theme.MD3LightTheme())
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(t theme.Theme) RenderContext {
	r.Theme = t
	r.Palette = NewPalette(t)
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// ContextualRenderable is a component that can receive a render context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

func render(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)
