package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/paperkit/internal/color"
	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

var (
	white = color.MustParse("#ffffff")
	black = color.MustParse("#000000")
)

// Palette turns theme color values into terminal colors. Terminals have no
// alpha channel, so translucent values are composited onto the theme
// background first.
type Palette struct {
	theme      theme.Theme
	background color.Color
}

// NewPalette prepares color resolution for t.
func NewPalette(t theme.Theme) Palette {
	fallback := white
	if t.Dark {
		fallback = black
	}
	background := fallback
	if value, ok := t.Color("background"); ok {
		if c, err := color.Parse(value); err == nil {
			background = c.Flatten(fallback)
		}
	}
	return Palette{theme: t, background: background}
}

// Background returns the opaque theme background.
func (p Palette) Background() lipgloss.Color {
	return lipgloss.Color(p.background.Hex())
}

// Resolve converts a color value. Empty, unparseable and fully transparent
// values report false so callers leave the terminal default in place.
func (p Palette) Resolve(value string) (lipgloss.Color, bool) {
	if value == "" || strings.EqualFold(value, color.Transparent) {
		return "", false
	}
	c, err := color.Parse(value)
	if err != nil || c.IsTransparent() {
		return "", false
	}
	return lipgloss.Color(c.Flatten(p.background).Hex()), true
}

// Role resolves a theme role such as "primary" or "elevation.level2".
func (p Palette) Role(role string) (lipgloss.Color, bool) {
	value, ok := p.theme.Color(role)
	if !ok {
		return "", false
	}
	return p.Resolve(value)
}

// On picks the content color for a background role: the matching on-role
// when the theme defines one, otherwise black or white by contrast.
func (p Palette) On(role string) (lipgloss.Color, bool) {
	if len(role) > 0 {
		on := "on" + strings.ToUpper(role[:1]) + role[1:]
		if c, ok := p.Role(on); ok {
			return c, true
		}
	}
	value, ok := p.theme.Color(role)
	if !ok {
		return "", false
	}
	return lipgloss.Color(contrastText(value)), true
}

// contrastText returns black or white, whichever reads better on value.
func contrastText(value string) string {
	c, err := color.Parse(value)
	if err != nil {
		return black.Hex()
	}
	l, _, _ := c.Colorful().Lab()
	if l > 0.6 {
		return black.Hex()
	}
	return white.Hex()
}

// withAlpha re-renders value at alpha, leaving unparseable values alone.
func withAlpha(value string, alpha float64) string {
	c, err := color.Parse(value)
	if err != nil {
		return value
	}
	return c.WithAlpha(alpha).RGBString()
}

// Background applies a role as background with its matching content color.
func Background(role string) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		if bg, ok := ctx.Palette.Role(role); ok {
			s = s.Background(bg)
		}
		if fg, ok := ctx.Palette.On(role); ok {
			s = s.Foreground(fg)
		}
		return s
	}
}

// Foreground applies a role as text color.
func Foreground(role string) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		if fg, ok := ctx.Palette.Role(role); ok {
			s = s.Foreground(fg)
		}
		return s
	}
}

// Outline draws a border in the given role. Rounded corners follow the
// theme roundness.
func Outline(role string) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		s = s.Border(borderFor(ctx.Theme))
		if c, ok := ctx.Palette.Role(role); ok {
			s = s.BorderForeground(c)
		}
		return s
	}
}

// Typography applies a typescale variant. Terminals only have weight, so
// the display and headline scales and any weight of 500 or more render bold.
func Typography(variant string) StyleFunc {
	return func(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
		return typographyStyle(s, ctx.Theme, variant)
	}
}

// Padding sets vertical and horizontal padding in cells.
func Padding(vertical, horizontal int) StyleFunc {
	return func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		return s.Padding(vertical, horizontal)
	}
}

func typographyStyle(s lipgloss.Style, t theme.Theme, variant string) lipgloss.Style {
	font, ok := t.Fonts[variant]
	if !ok {
		return s
	}
	if strings.HasPrefix(variant, "display") || strings.HasPrefix(variant, "headline") {
		s = s.Bold(true)
	}
	if weight, err := strconv.Atoi(strings.TrimSpace(font.Weight)); err == nil && weight >= 500 {
		s = s.Bold(true)
	}
	if weight := strings.TrimSpace(font.Weight); weight == "bold" {
		s = s.Bold(true)
	}
	if font.Size > 0 && font.Size <= 11 {
		s = s.Faint(true)
	}
	return s
}

func borderFor(t theme.Theme) lipgloss.Border {
	if t.Roundness > 0 {
		return lipgloss.RoundedBorder()
	}
	return lipgloss.NormalBorder()
}
