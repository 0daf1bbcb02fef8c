package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/paperkit/internal/color"
	"github.com/alexisbeaulieu97/paperkit/internal/palette"
	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

func presentRoles(t Theme) []string {
	var roles []string
	for _, role := range ColorRoles() {
		if _, ok := t.Color(role); ok {
			roles = append(roles, role)
		}
	}
	return roles
}

func TestDeriveProducesParseableColors(t *testing.T) {
	t.Parallel()

	for _, seed := range []string{"#6750a4", "#3f51b5", "rgb(0, 150, 136)", "orange", "hsl(200, 60%, 40%)"} {
		pair, err := Derive(seed)
		require.NoError(t, err, seed)

		for _, variant := range []Theme{pair.Light, pair.Dark} {
			for _, role := range presentRoles(variant) {
				value, _ := variant.Color(role)
				_, err := color.Parse(value)
				assert.NoError(t, err, "%s %s=%s", seed, role, value)
			}
			assert.Equal(t, color.Transparent, variant.Colors.Elevation.Level0)
			for level := 1; level < ElevationLevels; level++ {
				_, err := color.Parse(variant.Colors.Elevation.Level(level))
				assert.NoError(t, err, "%s level%d", seed, level)
			}
		}
	}
}

// The stock MD3 schemes are the published baseline generated from #6750A4.
func TestDeriveBaselineSeedMatchesStockSchemes(t *testing.T) {
	t.Parallel()

	pair, err := Derive("#6750A4")
	require.NoError(t, err)

	for _, tc := range []struct {
		name    string
		derived Theme
		stock   Theme
	}{
		{"light", pair.Light, MD3LightTheme()},
		{"dark", pair.Dark, MD3DarkTheme()},
	} {
		for _, role := range palette.Roles() {
			want, ok := tc.stock.Color(role)
			require.True(t, ok, "%s %s", tc.name, role)
			got, ok := tc.derived.Color(role)
			require.True(t, ok, "%s %s", tc.name, role)

			wr, wg, wb := color.MustParse(want).Colorful().RGB255()
			gr, gg, gb := color.MustParse(got).Colorful().RGB255()
			msg := tc.name + " " + role + ": want " + want + " got " + got
			assert.InDelta(t, int(wr), int(gr), 1, msg)
			assert.InDelta(t, int(wg), int(gg), 1, msg)
			assert.InDelta(t, int(wb), int(gb), 1, msg)
		}
	}
}

func TestDeriveLightAndDarkShareKeySet(t *testing.T) {
	t.Parallel()

	pair, err := Derive("#3f51b5")
	require.NoError(t, err)

	lightRoles := presentRoles(pair.Light)
	assert.Equal(t, lightRoles, presentRoles(pair.Dark))
	assert.Len(t, lightRoles, 32)
	assert.NotContains(t, lightRoles, "accent")
	assert.False(t, pair.Light.Dark)
	assert.True(t, pair.Dark.Dark)
}

func TestDeriveKeepsMD3Defaults(t *testing.T) {
	t.Parallel()

	pair, err := Derive("#00ff00")
	require.NoError(t, err)

	assert.Equal(t, MD3LightTheme().Fonts, pair.Light.Fonts)
	assert.Equal(t, V3, pair.Light.Version)
	assert.Equal(t, 4.0, pair.Dark.Roundness)
	assert.Equal(t, 1.0, pair.Dark.Animation.Scale)
	assert.NotEqual(t, MD3LightTheme().Colors.Primary, pair.Light.Colors.Primary)
}

func TestDeriveElevationLevelsAreDistinct(t *testing.T) {
	t.Parallel()

	pair, err := Derive("#6750a4")
	require.NoError(t, err)

	for _, variant := range []Theme{pair.Light, pair.Dark} {
		seen := map[string]int{}
		for level := 1; level < ElevationLevels; level++ {
			value := variant.Colors.Elevation.Level(level)
			previous, dup := seen[value]
			assert.False(t, dup, "level%d repeats level%d (%s)", level, previous, value)
			seen[value] = level
		}
	}
}

func TestDeriveCustomRoles(t *testing.T) {
	t.Parallel()

	pair, err := Derive("#3f51b5")
	require.NoError(t, err)

	onSurface := color.MustParse(pair.Light.Colors.OnSurface)
	assert.Equal(t, onSurface.WithAlpha(0.12).RGBString(), pair.Light.Colors.SurfaceDisabled)
	assert.Equal(t, onSurface.WithAlpha(0.38).RGBString(), pair.Light.Colors.OnSurfaceDisabled)

	backdrop := color.MustParse(pair.Light.Colors.Backdrop)
	assert.InDelta(t, 0.4, backdrop.Alpha(), 1e-9)
	assert.Equal(t, pair.Light.Colors.Backdrop, pair.Dark.Colors.Backdrop)
}

func TestDeriveExtremeSeeds(t *testing.T) {
	t.Parallel()

	for _, seed := range []string{"#000000", "#ffffff", "#808080"} {
		pair, err := Derive(seed)
		require.NoError(t, err, seed)
		for _, role := range presentRoles(pair.Dark) {
			value, _ := pair.Dark.Color(role)
			assert.NotContains(t, value, "NaN", "%s %s", seed, role)
		}
	}
}

func TestDeriveRejectsMalformedSeed(t *testing.T) {
	t.Parallel()

	for _, seed := range []string{"", "   ", "not-a-color", "#12345z"} {
		pair, err := Derive(seed)
		require.Error(t, err, seed)

		var colorErr *paperrors.MalformedColorError
		assert.ErrorAs(t, err, &colorErr)
		assert.Equal(t, Pair{}, pair)
	}
}

func TestElevationOverlaysStartAtSurface(t *testing.T) {
	t.Parallel()

	surface := color.MustParse("#ffffff")
	primary := color.MustParse("#000000")
	e := ElevationOverlays(surface, primary)

	assert.Equal(t, color.Transparent, e.Level0)
	assert.Equal(t, "rgb(242, 242, 242)", e.Level1)
	assert.Equal(t, "rgb(219, 219, 219)", e.Level5)
	assert.Empty(t, e.Level(6))
}
