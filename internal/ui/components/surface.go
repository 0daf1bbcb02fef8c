package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/paperkit/internal/ui"
	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

// Surface is a container tinted for its elevation.
type Surface struct {
	*Container
	elevation int
}

// NewSurface creates a surface at elevation 1.
func NewSurface(children ...ui.Renderable) *Surface {
	return &Surface{
		Container: NewContainer(children...).WithPadding(SymmetricSpacing(0, 1)),
		elevation: 1,
	}
}

// View renders the surface.
func (s *Surface) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the surface with the tint for its elevation.
func (s *Surface) ViewWithContext(ctx RenderContext) string {
	table := SurfaceColors(ctx.Theme)

	box := *s.Container
	box.background = SurfaceBackground(ctx.Theme, s.elevation)
	if fg, ok := ctx.Palette.Resolve(stringLeaf(table, KeyColor)); ok {
		box.AddAppliers(func(style lipgloss.Style, _ RenderContext) lipgloss.Style {
			return style.Foreground(fg)
		})
	}
	return box.ViewWithContext(ctx)
}

// SurfaceBackground picks the surface color at elevation: the elevation
// tokens of Material 3 themes, or the white overlay of adaptive dark
// Material 2 themes. Anything else uses the plain surface.
func SurfaceBackground(t theme.Theme, elevation int) string {
	surface := stringLeaf(SurfaceColors(t), KeyBackgroundColor)
	if elevation <= 0 {
		return surface
	}

	if t.Version == theme.V2 {
		if !t.Dark || t.Mode != theme.ModeAdaptive {
			return surface
		}
		overlay, err := theme.Overlay(float64(elevation), surface)
		if err != nil {
			return surface
		}
		return overlay
	}

	level := min(elevation, theme.ElevationLevels-1)
	if value := t.Colors.Elevation.Level(level); value != "" {
		return value
	}
	return surface
}

// WithElevation sets the elevation. Material 3 caps it at level 5.
func (s *Surface) WithElevation(elevation int) *Surface {
	s.elevation = elevation
	return s
}

// Elevation returns the elevation.
func (s *Surface) Elevation() int {
	return s.elevation
}
