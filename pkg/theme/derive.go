package theme

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/paperkit/internal/color"
	"github.com/alexisbeaulieu97/paperkit/internal/palette"
)

// elevationMix is the share of primary mixed into surface for levels 1..5.
var elevationMix = [ElevationLevels - 1]float64{0.05, 0.08, 0.11, 0.12, 0.14}

const (
	disabledSurfaceAlpha = 0.12
	disabledContentAlpha = 0.38
	backdropAlpha        = 0.4
	backdropTone         = 20
)

// Pair holds the light and dark variants derived from one seed.
type Pair struct {
	Light Theme
	Dark  Theme
}

// Derive builds MD3 light and dark themes whose colors come from the tonal
// palettes of source. Fonts, roundness and animation are the MD3 defaults.
func Derive(source string) (Pair, error) {
	seed, err := color.Parse(source)
	if err != nil {
		return Pair{}, err
	}

	core := palette.NewCorePalette(seed.Colorful())
	backdrop := color.FromColorful(core.NeutralVariant.Tone(backdropTone)).WithAlpha(backdropAlpha)

	light := MD3LightTheme()
	light.Colors = schemeColors(palette.LightScheme(core), backdrop)

	dark := MD3DarkTheme()
	dark.Colors = schemeColors(palette.DarkScheme(core), backdrop)

	return Pair{Light: light, Dark: dark}, nil
}

func schemeColors(scheme palette.Scheme, backdrop color.Color) Colors {
	var colors Colors
	scheme.Each(func(role string, c colorful.Color) {
		if field, ok := colorFieldIndex[role]; ok {
			*field.value(&colors) = color.FromColorful(c).RGBString()
		}
	})

	surface, _ := scheme.Get("surface")
	primary, _ := scheme.Get("primary")
	onSurface, _ := scheme.Get("onSurface")

	colors.Elevation = ElevationOverlays(color.FromColorful(surface), color.FromColorful(primary))

	content := color.FromColorful(onSurface)
	colors.SurfaceDisabled = content.WithAlpha(disabledSurfaceAlpha).RGBString()
	colors.OnSurfaceDisabled = content.WithAlpha(disabledContentAlpha).RGBString()
	colors.Backdrop = backdrop.RGBString()
	return colors
}

// ElevationOverlays tints surface toward primary for each elevation level.
// Level 0 is always transparent.
func ElevationOverlays(surface, primary color.Color) Elevation {
	e := Elevation{Level0: color.Transparent}
	for i, weight := range elevationMix {
		*e.level(i + 1) = surface.Mix(primary, weight).RGBString()
	}
	return e
}
