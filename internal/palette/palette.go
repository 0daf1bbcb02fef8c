// Package palette expands a seed color into Material tonal palettes and
// assigns the standard light and dark scheme roles.
//
// Colors are solved in HCT (CAM16 hue and chroma, L* tone), the color space
// Material's tonal palettes are defined in.
package palette

import (
	"image/color"
	"math"

	"cogentcore.org/core/colors/cam/hct"
	"github.com/lucasb-eyer/go-colorful"
)

// Key palette chroma values of a Material core palette.
const (
	minPrimaryChroma     = 48
	secondaryChroma      = 16
	tertiaryChroma       = 24
	tertiaryHueShift     = 60
	neutralChroma        = 4
	neutralVariantChroma = 8
	errorHue             = 25
	errorChroma          = 84
)

var (
	black = colorful.Color{R: 0, G: 0, B: 0}
	white = colorful.Color{R: 1, G: 1, B: 1}
)

// TonalPalette is an HCT hue/chroma pair from which any tone can be produced.
type TonalPalette struct {
	Hue    float64
	Chroma float64
}

// NewTonalPalette normalizes the hue into [0, 360) and the chroma to >= 0.
func NewTonalPalette(hue, chroma float64) TonalPalette {
	if math.IsNaN(hue) || math.IsInf(hue, 0) {
		hue = 0
	}
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	if math.IsNaN(chroma) || chroma < 0 {
		chroma = 0
	}
	return TonalPalette{Hue: hue, Chroma: chroma}
}

// FromColor keeps the HCT hue and chroma of c.
func FromColor(c colorful.Color) TonalPalette {
	h := hct.FromColor(c.Clamped())
	return NewTonalPalette(float64(h.Hue), float64(h.Chroma))
}

// Tone returns the palette color at tone t in [0, 100]. The solver keeps the
// hue and lowers chroma when the requested one is out of the sRGB gamut.
func (p TonalPalette) Tone(tone float64) colorful.Color {
	switch {
	case math.IsNaN(tone) || tone <= 0:
		return black
	case tone >= 100:
		return white
	}
	return fromRGBA(hct.New(float32(p.Hue), float32(p.Chroma), float32(tone)).AsRGBA())
}

func fromRGBA(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// CorePalette holds the six key palettes of a Material color scheme.
type CorePalette struct {
	Primary        TonalPalette
	Secondary      TonalPalette
	Tertiary       TonalPalette
	Neutral        TonalPalette
	NeutralVariant TonalPalette
	Error          TonalPalette
}

// NewCorePalette derives the key palettes from a seed color.
func NewCorePalette(seed colorful.Color) CorePalette {
	key := FromColor(seed)
	return CorePalette{
		Primary:        NewTonalPalette(key.Hue, math.Max(minPrimaryChroma, key.Chroma)),
		Secondary:      NewTonalPalette(key.Hue, secondaryChroma),
		Tertiary:       NewTonalPalette(key.Hue+tertiaryHueShift, tertiaryChroma),
		Neutral:        NewTonalPalette(key.Hue, neutralChroma),
		NeutralVariant: NewTonalPalette(key.Hue, neutralVariantChroma),
		Error:          NewTonalPalette(errorHue, errorChroma),
	}
}

type paletteKey int

const (
	keyPrimary paletteKey = iota
	keySecondary
	keyTertiary
	keyNeutral
	keyNeutralVariant
	keyError
)

func (cp CorePalette) get(key paletteKey) TonalPalette {
	switch key {
	case keySecondary:
		return cp.Secondary
	case keyTertiary:
		return cp.Tertiary
	case keyNeutral:
		return cp.Neutral
	case keyNeutralVariant:
		return cp.NeutralVariant
	case keyError:
		return cp.Error
	default:
		return cp.Primary
	}
}

type roleTone struct {
	name  string
	key   paletteKey
	light float64
	dark  float64
}

var roleTones = []roleTone{
	{"primary", keyPrimary, 40, 80},
	{"onPrimary", keyPrimary, 100, 20},
	{"primaryContainer", keyPrimary, 90, 30},
	{"onPrimaryContainer", keyPrimary, 10, 90},
	{"secondary", keySecondary, 40, 80},
	{"onSecondary", keySecondary, 100, 20},
	{"secondaryContainer", keySecondary, 90, 30},
	{"onSecondaryContainer", keySecondary, 10, 90},
	{"tertiary", keyTertiary, 40, 80},
	{"onTertiary", keyTertiary, 100, 20},
	{"tertiaryContainer", keyTertiary, 90, 30},
	{"onTertiaryContainer", keyTertiary, 10, 90},
	{"error", keyError, 40, 80},
	{"onError", keyError, 100, 20},
	{"errorContainer", keyError, 90, 30},
	{"onErrorContainer", keyError, 10, 90},
	{"background", keyNeutral, 99, 10},
	{"onBackground", keyNeutral, 10, 90},
	{"surface", keyNeutral, 99, 10},
	{"onSurface", keyNeutral, 10, 90},
	{"surfaceVariant", keyNeutralVariant, 90, 30},
	{"onSurfaceVariant", keyNeutralVariant, 30, 80},
	{"outline", keyNeutralVariant, 50, 60},
	{"outlineVariant", keyNeutralVariant, 80, 30},
	{"shadow", keyNeutral, 0, 0},
	{"scrim", keyNeutral, 0, 0},
	{"inverseSurface", keyNeutral, 20, 90},
	{"inverseOnSurface", keyNeutral, 95, 20},
	{"inversePrimary", keyPrimary, 80, 40},
}

// Roles lists the scheme role names in their canonical order.
func Roles() []string {
	names := make([]string, len(roleTones))
	for i, rt := range roleTones {
		names[i] = rt.name
	}
	return names
}

// Scheme maps role names to colors for one variant.
type Scheme struct {
	Dark   bool
	values map[string]colorful.Color
}

// LightScheme assigns the light tones of cp to every role.
func LightScheme(cp CorePalette) Scheme {
	return newScheme(cp, false)
}

// DarkScheme assigns the dark tones of cp to every role.
func DarkScheme(cp CorePalette) Scheme {
	return newScheme(cp, true)
}

func newScheme(cp CorePalette, dark bool) Scheme {
	values := make(map[string]colorful.Color, len(roleTones))
	for _, rt := range roleTones {
		tone := rt.light
		if dark {
			tone = rt.dark
		}
		values[rt.name] = cp.get(rt.key).Tone(tone)
	}
	return Scheme{Dark: dark, values: values}
}

// Get returns the color for role.
func (s Scheme) Get(role string) (colorful.Color, bool) {
	c, ok := s.values[role]
	return c, ok
}

// Each visits every role in canonical order.
func (s Scheme) Each(fn func(role string, c colorful.Color)) {
	for _, rt := range roleTones {
		fn(rt.name, s.values[rt.name])
	}
}
