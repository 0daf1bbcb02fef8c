package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/paperkit/internal/color"
	"github.com/alexisbeaulieu97/paperkit/pkg/styletree"
	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

func stockThemes(t *testing.T) map[string]theme.Theme {
	t.Helper()
	pair, err := theme.Derive("#3f51b5")
	require.NoError(t, err)
	return map[string]theme.Theme{
		"md3-light":     theme.MD3LightTheme(),
		"md3-dark":      theme.MD3DarkTheme(),
		"md2-light":     theme.MD2LightTheme(),
		"md2-dark":      theme.MD2DarkTheme(),
		"derived-light": pair.Light,
		"derived-dark":  pair.Dark,
	}
}

func TestStyleTableShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		component string
		keys      []string
		level     int
	}{
		{"button", []string{KeyBackgroundColor, KeyColor, KeyBorderColor}, 2},
		{"card", []string{KeyBackgroundColor, KeyBorderColor}, 1},
		{"chip", []string{KeyBackgroundColor, KeyColor, KeyBorderColor}, 3},
		{"surface", []string{KeyBackgroundColor, KeyColor}, 0},
	}

	for name, th := range stockThemes(t) {
		for _, tc := range cases {
			table, ok := StyleTable(tc.component, th)
			require.True(t, ok)
			assert.Equal(t, tc.keys, styletree.UniqueNestedKeys(table), "%s/%s", name, tc.component)
			assert.Equal(t, tc.level, styletree.MaxNestedLevel(table), "%s/%s", name, tc.component)
		}
	}

	_, ok := StyleTable("drawer", theme.MD3LightTheme())
	assert.False(t, ok)
	assert.Equal(t, []string{"button", "card", "chip", "surface"}, StyleTableNames())
}

func TestButtonColorsOrderAndValues(t *testing.T) {
	t.Parallel()

	th := theme.MD3LightTheme()
	table := ButtonColors(th)

	require.Equal(t, []string{StateEnabled, StateDisabled}, table.Keys())
	enabled, ok := table.Subtree(StateEnabled)
	require.True(t, ok)
	modes := make([]string, 0, len(ButtonModes()))
	for _, mode := range ButtonModes() {
		modes = append(modes, string(mode))
	}
	assert.Equal(t, modes, enabled.Keys())

	assert.Equal(t, th.Colors.Primary, stringLeaf(table, StateEnabled, "contained", KeyBackgroundColor))
	assert.Equal(t, th.Colors.OnPrimary, stringLeaf(table, StateEnabled, "contained", KeyColor))
	assert.Equal(t, th.Colors.Elevation.Level1, stringLeaf(table, StateEnabled, "elevated", KeyBackgroundColor))
	assert.Equal(t, th.Colors.Outline, stringLeaf(table, StateEnabled, "outlined", KeyBorderColor))
	assert.Equal(t, color.Transparent, stringLeaf(table, StateEnabled, "text", KeyBackgroundColor))
	assert.Equal(t, th.Colors.SurfaceDisabled, stringLeaf(table, StateDisabled, "contained", KeyBackgroundColor))
	assert.Equal(t, th.Colors.OnSurfaceDisabled, stringLeaf(table, StateDisabled, "text", KeyColor))
}

func TestButtonColorsMD2(t *testing.T) {
	t.Parallel()

	th := theme.MD2LightTheme()
	table := ButtonColors(th)

	assert.Equal(t, "#6200ee", stringLeaf(table, StateEnabled, "contained", KeyBackgroundColor))
	assert.Equal(t, "#ffffff", stringLeaf(table, StateEnabled, "contained", KeyColor))
	assert.Equal(t, "rgba(0, 0, 0, 0.29)", stringLeaf(table, StateEnabled, "outlined", KeyBorderColor))
	assert.Equal(t, th.Colors.Disabled, stringLeaf(table, StateDisabled, "contained", KeyColor))
}

func TestChipAndCardColors(t *testing.T) {
	t.Parallel()

	th := theme.MD3DarkTheme()

	chips := ChipColors(th)
	assert.Equal(t, th.Colors.SecondaryContainer, stringLeaf(chips, StateEnabled, "flat", Selected, KeyBackgroundColor))
	assert.Equal(t, th.Colors.SurfaceVariant, stringLeaf(chips, StateEnabled, "flat", Unselected, KeyBackgroundColor))
	assert.Equal(t, th.Colors.Outline, stringLeaf(chips, StateEnabled, "outlined", Unselected, KeyBorderColor))

	cards := CardColors(th)
	assert.Equal(t, []string{"elevated", "contained", "outlined"}, cards.Keys())
	assert.Equal(t, th.Colors.Elevation.Level1, stringLeaf(cards, "elevated", KeyBackgroundColor))
	assert.Equal(t, th.Colors.Outline, stringLeaf(cards, "outlined", KeyBorderColor))
}

func TestStyleTablesRoundTripThroughYAML(t *testing.T) {
	t.Parallel()

	table := ChipColors(theme.MD3LightTheme())
	data, err := yaml.Marshal(table)
	require.NoError(t, err)

	decoded, err := styletree.FromYAML("chip.yaml", data)
	require.NoError(t, err)
	assert.Equal(t, styletree.UniqueNestedKeys(table), styletree.UniqueNestedKeys(decoded))
	assert.Equal(t, 3, styletree.MaxNestedLevel(decoded))
}
