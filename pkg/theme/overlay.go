package theme

import (
	"math"

	"github.com/alexisbeaulieu97/paperkit/internal/color"
)

// overlayPercent is the white overlay applied to MD2 dark surfaces, indexed
// by elevation 1..24.
var overlayPercent = [...]float64{
	1: 5, 2: 7, 3: 8, 4: 9, 5: 10, 6: 11, 7: 11.5, 8: 12,
	9: 12.5, 10: 13, 11: 13.5, 12: 14, 13: 14.25, 14: 14.5, 15: 14.75, 16: 15,
	17: 15.12, 18: 15.24, 19: 15.36, 20: 15.48, 21: 15.6, 22: 15.72, 23: 15.84, 24: 16,
}

var overlayWhite = color.MustParse("#ffffff")

// Overlay lightens an MD2 dark surface for the given elevation. Elevations
// are rounded and clamped into 1..24.
func Overlay(elevation float64, surface string) (string, error) {
	base, err := color.Parse(surface)
	if err != nil {
		return "", err
	}

	level := 1
	if !math.IsNaN(elevation) {
		level = int(math.Max(1, math.Min(24, math.Round(elevation))))
	}
	return base.Mix(overlayWhite, overlayPercent[level]/100).Hex(), nil
}
