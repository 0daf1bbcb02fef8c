package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Swatch shows a color role as a filled block followed by its name and value.
type Swatch struct {
	BaseComponent
	role string
}

// NewSwatch creates a swatch for a theme role.
func NewSwatch(role string) *Swatch {
	return &Swatch{BaseComponent: NewBaseComponent(), role: role}
}

// View renders the swatch.
func (s *Swatch) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the swatch. Roles the theme leaves unset render
// an empty block.
func (s *Swatch) ViewWithContext(ctx RenderContext) string {
	block := lipgloss.NewStyle()
	value, _ := ctx.Theme.Color(s.role)
	if c, ok := ctx.Palette.Resolve(value); ok {
		block = block.Background(c)
	} else {
		block = block.Faint(true)
	}

	label := strings.TrimSpace(s.role + " " + value)
	return s.ComputeStyle(ctx).Render(block.Render("    ") + " " + label)
}

// Role returns the swatch's color role.
func (s *Swatch) Role() string {
	return s.role
}

// SwatchList stacks swatches for roles, one per line.
func SwatchList(roles ...string) *Stack {
	stack := VStack()
	for _, role := range roles {
		stack.Add(NewSwatch(role))
	}
	return stack
}
