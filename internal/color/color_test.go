package color

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

func TestParseNotations(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "hex", input: "#6200ee", want: "rgb(98, 0, 238)"},
		{name: "short hex", input: "#fff", want: "rgb(255, 255, 255)"},
		{name: "named", input: "red", want: "rgb(255, 0, 0)"},
		{name: "rgb function", input: "rgb(28, 27, 31)", want: "rgb(28, 27, 31)"},
		{name: "padded", input: "  #000000  ", want: "rgb(0, 0, 0)"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.RGBString())
			assert.Equal(t, 1.0, c.Alpha())
		})
	}
}

func TestParseRejectsMalformedInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "not-a-color", "#12345z"} {
		_, err := Parse(input)
		require.Error(t, err, input)

		var colorErr *paperrors.MalformedColorError
		require.ErrorAs(t, err, &colorErr)
		assert.Equal(t, input, colorErr.Input)
	}
}

func TestMustParsePanicsOnMalformedInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("#123456") })
}

func TestWithAlphaFormatsRGBA(t *testing.T) {
	t.Parallel()

	onSurface := MustParse("rgb(28, 27, 31)")
	assert.Equal(t, "rgba(28, 27, 31, 0.12)", onSurface.WithAlpha(0.12).RGBString())
	assert.Equal(t, "rgba(28, 27, 31, 0.38)", onSurface.WithAlpha(0.38).RGBString())
	assert.Equal(t, "rgb(28, 27, 31)", onSurface.WithAlpha(3).RGBString())
	assert.True(t, onSurface.WithAlpha(-1).IsTransparent())
}

func TestMixUsesMixinShare(t *testing.T) {
	t.Parallel()

	black := MustParse("#000000")
	white := MustParse("#ffffff")

	assert.Equal(t, "rgb(51, 51, 51)", black.Mix(white, 0.2).RGBString())
	assert.Equal(t, "rgb(128, 128, 128)", black.Mix(white, 0.5).RGBString())
	assert.Equal(t, black.RGBString(), black.Mix(white, 0).RGBString())
	assert.Equal(t, white.RGBString(), black.Mix(white, 1).RGBString())
}

func TestMixBlendsAlpha(t *testing.T) {
	t.Parallel()

	opaque := MustParse("#ff0000")
	clear := MustParse("#0000ff").WithAlpha(0)

	mixed := opaque.Mix(clear, 0.5)
	assert.InDelta(t, 0.5, mixed.Alpha(), 1e-9)
	// the opaque side dominates the channels when alphas differ
	r, _, b := mixed.Colorful().RGB255()
	assert.Equal(t, uint8(255), r)
	assert.Equal(t, uint8(0), b)
}

func TestFlattenCompositesOverBackground(t *testing.T) {
	t.Parallel()

	black := MustParse("#000000").WithAlpha(0.5)
	white := MustParse("#ffffff")

	flat := black.Flatten(white)
	assert.Equal(t, 1.0, flat.Alpha())
	assert.Equal(t, "rgb(128, 128, 128)", flat.RGBString())
	assert.Equal(t, white, white.Flatten(black))
}

func TestHexDropsAlpha(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "#ff0000", MustParse("rgba(255, 0, 0, 0.3)").Hex())
}

func TestFromColorfulClamps(t *testing.T) {
	t.Parallel()

	c := FromColorful(colorful.Color{R: 1.4, G: -0.2, B: 0.5})
	assert.Equal(t, "rgb(255, 0, 128)", c.RGBString())
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	got, err := Normalize("Transparent")
	require.NoError(t, err)
	assert.Equal(t, Transparent, got)

	got, err = Normalize("#fff")
	require.NoError(t, err)
	assert.Equal(t, "rgb(255, 255, 255)", got)

	_, err = Normalize("bogus")
	require.Error(t, err)
}
