// Package color is the color capability behind the theme engine: parsing CSS
// color notations, alpha handling, mixing and the textual rgb() formatting
// used for every token the engine emits.
package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

// Transparent is the sentinel token used for fully transparent colors.
const Transparent = "transparent"

var errEmpty = errors.New("empty color value")

// Color is an sRGB color with straight (non-premultiplied) alpha.
type Color struct {
	rgb   colorful.Color
	alpha float64
}

// Parse reads any CSS color notation (hex, named, rgb(), rgba(), hsl()).
// Failures are reported as *errors.MalformedColorError.
func Parse(input string) (Color, error) {
	value := strings.TrimSpace(input)
	if value == "" {
		return Color{}, paperrors.NewMalformedColorError(input, errEmpty)
	}

	parsed, err := csscolorparser.Parse(value)
	if err != nil {
		return Color{}, paperrors.NewMalformedColorError(input, err)
	}

	c := Color{
		rgb:   colorful.Color{R: parsed.R, G: parsed.G, B: parsed.B},
		alpha: clamp01(parsed.A),
	}
	if !c.rgb.IsValid() || math.IsNaN(c.alpha) {
		return Color{}, paperrors.NewMalformedColorError(input, fmt.Errorf("channel out of range"))
	}
	return c, nil
}

// MustParse is Parse for trusted literals; it panics on malformed input.
func MustParse(input string) Color {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}

// FromColorful wraps an opaque go-colorful color, clamping it into gamut.
func FromColorful(c colorful.Color) Color {
	return Color{rgb: c.Clamped(), alpha: 1}
}

// Colorful returns the color channels without alpha.
func (c Color) Colorful() colorful.Color {
	return c.rgb
}

// Alpha returns the opacity in [0, 1].
func (c Color) Alpha() float64 {
	return c.alpha
}

// WithAlpha returns the same color at the given opacity.
func (c Color) WithAlpha(alpha float64) Color {
	c.alpha = clamp01(alpha)
	return c
}

// IsTransparent reports whether the color has zero opacity.
func (c Color) IsTransparent() bool {
	return c.alpha == 0
}

// Mix blends mixin into c. weight is the share of mixin in the result, and
// alpha differences shift the channel weights the way CSS preprocessors do.
func (c Color) Mix(mixin Color, weight float64) Color {
	p := clamp01(weight)
	w := 2*p - 1
	a := mixin.alpha - c.alpha

	w1 := w
	if w*a != -1 {
		w1 = (w + a) / (1 + w*a)
	}
	w1 = (w1 + 1) / 2

	// BlendRgb walks from c toward mixin, so the mixin share is the step.
	return Color{
		rgb:   c.rgb.BlendRgb(mixin.rgb, w1).Clamped(),
		alpha: clamp01(mixin.alpha*p + c.alpha*(1-p)),
	}
}

// Flatten composites c over an opaque background and returns an opaque color.
func (c Color) Flatten(background Color) Color {
	if c.alpha >= 1 {
		return c
	}
	return Color{rgb: background.rgb.BlendRgb(c.rgb, c.alpha).Clamped(), alpha: 1}
}

// RGBString renders rgb(r, g, b), or rgba(r, g, b, a) for translucent colors.
func (c Color) RGBString() string {
	r, g, b := c.rgb.Clamped().RGB255()
	if c.alpha >= 1 {
		return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(c.alpha))
}

// Hex renders #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return c.rgb.Clamped().Hex()
}

// String implements fmt.Stringer with the rgb() form.
func (c Color) String() string {
	return c.RGBString()
}

// Normalize parses input and re-renders it in rgb() form. The transparent
// sentinel is passed through unchanged.
func Normalize(input string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(input), Transparent) {
		return Transparent, nil
	}
	c, err := Parse(input)
	if err != nil {
		return "", err
	}
	return c.RGBString(), nil
}

func formatAlpha(alpha float64) string {
	rounded := math.Round(alpha*1000) / 1000
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}
