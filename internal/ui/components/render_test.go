package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

func TestPaletteResolve(t *testing.T) {
	t.Parallel()

	p := NewPalette(theme.MD3LightTheme())

	c, ok := p.Resolve("rgba(103, 80, 164, 1)")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#6750a4"), c)

	// 12% onSurface composited onto the light background.
	c, ok = p.Role("surfaceDisabled")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#e4e0e3"), c)

	_, ok = p.Resolve("transparent")
	assert.False(t, ok)
	_, ok = p.Role("elevation.level0")
	assert.False(t, ok)
	_, ok = p.Resolve("not a color")
	assert.False(t, ok)
	_, ok = p.Role("accent")
	assert.False(t, ok, "MD3 themes leave MD2 roles empty")

	assert.Equal(t, lipgloss.Color("#fffbfe"), p.Background())
}

func TestPaletteOn(t *testing.T) {
	t.Parallel()

	md3 := NewPalette(theme.MD3LightTheme())
	c, ok := md3.On("primary")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#ffffff"), c)

	md2 := NewPalette(theme.MD2LightTheme())
	c, ok = md2.On("primary")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#ffffff"), c, "contrast against a dark primary")

	c, ok = md2.On("accent")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#000000"), c, "contrast against a light accent")

	_, ok = md2.On("tertiary")
	assert.False(t, ok)
}

func TestContextCarriesTheme(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext()
	assert.Equal(t, theme.V3, ctx.Theme.Version)
	assert.False(t, ctx.Theme.Dark)

	dark := ctx.WithTheme(theme.MD3DarkTheme())
	assert.True(t, dark.Theme.Dark)
	assert.NotEqual(t, ctx.Palette.Background(), dark.Palette.Background())
	assert.False(t, ctx.Theme.Dark, "WithTheme returns a copy")
}

func TestButtonRendersLabel(t *testing.T) {
	t.Parallel()

	ctx := NewContext(theme.MD3DarkTheme())
	for _, mode := range ButtonModes() {
		view := NewButton("Save").WithMode(mode).WithIcon("+").ViewWithContext(ctx)
		assert.Contains(t, view, "+ Save", mode)
	}

	outlined := OutlinedButton("Go").ViewWithContext(ctx)
	assert.Equal(t, 3, lipgloss.Height(outlined), "outlined buttons draw a border")
	assert.Equal(t, 1, lipgloss.Height(ContainedButton("Go").ViewWithContext(ctx)))

	disabled := TonalButton("Off").WithDisabled(true)
	assert.True(t, disabled.IsDisabled())
	assert.Equal(t, ButtonContainedTonal, disabled.Mode())
	assert.Contains(t, disabled.View(), "Off")
}

func TestChipSelection(t *testing.T) {
	t.Parallel()

	chip := NewChip("Filter").WithSelected(true)
	assert.True(t, chip.IsSelected())
	assert.Contains(t, chip.View(), "✓ Filter")
	assert.NotContains(t, NewChip("Filter").View(), "✓")

	outlined := NewChip("Tag").WithMode(ChipOutlined).ViewWithContext(NewContext(theme.MD2DarkTheme()))
	assert.Equal(t, 3, lipgloss.Height(outlined))
}

func TestCardLayout(t *testing.T) {
	t.Parallel()

	card := NewCard(NewText("Body")).
		WithTitle("Title").
		WithFooter(NewButton("OK")).
		WithMode(CardOutlined)

	view := card.ViewWithContext(NewContext(theme.MD3LightTheme()).WithConstraints(WithMaxWidth(30)))
	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), 6)
	assert.Contains(t, lines[0], "╭")
	assert.Contains(t, lines[1], "Title")
	assert.Contains(t, view, "Body")
	assert.Contains(t, view, "OK")
	assert.Contains(t, view, strings.Repeat("─", 10))

	// Rendering twice does not accumulate the title or footer.
	assert.Equal(t, view, card.ViewWithContext(NewContext(theme.MD3LightTheme()).WithConstraints(WithMaxWidth(30))))
	assert.Len(t, card.Children(), 1)
	assert.Equal(t, CardOutlined, card.Mode())
}

func TestSquareCornersWithoutRoundness(t *testing.T) {
	t.Parallel()

	th := theme.MD3LightTheme()
	th.Roundness = 0
	view := NewCard(NewText("x")).ViewWithContext(NewContext(th))
	assert.Contains(t, view, "┌")
}

func TestSurfaceBackground(t *testing.T) {
	t.Parallel()

	md3 := theme.MD3LightTheme()
	assert.Equal(t, md3.Colors.Surface, SurfaceBackground(md3, 0))
	assert.Equal(t, "rgb(243, 237, 246)", SurfaceBackground(md3, 2))
	assert.Equal(t, md3.Colors.Elevation.Level5, SurfaceBackground(md3, 12))

	md2Dark := theme.MD2DarkTheme()
	assert.Equal(t, "#1e1e1e", SurfaceBackground(md2Dark, 1))
	assert.Equal(t, "#383838", SurfaceBackground(md2Dark, 24))

	md2Light := theme.MD2LightTheme()
	assert.Equal(t, md2Light.Colors.Surface, SurfaceBackground(md2Light, 8))

	surface := NewSurface(NewText("content")).WithElevation(3)
	assert.Equal(t, 3, surface.Elevation())
	assert.Contains(t, surface.View(), "content")
}

func TestAppbarFillsWidth(t *testing.T) {
	t.Parallel()

	bar := NewAppbar("Inbox").WithAction("search").WithAction("more")
	assert.Equal(t, "Inbox", bar.Title())

	view := bar.View()
	assert.Equal(t, defaultAppbarWidth, lipgloss.Width(view))
	assert.Contains(t, view, "Inbox")
	assert.Contains(t, view, "search  more")

	narrow := bar.WithBack(true).ViewWithContext(DefaultContext().WithConstraints(WithMaxWidth(30)))
	assert.Equal(t, 30, lipgloss.Width(narrow))
	assert.Contains(t, narrow, "← Inbox")
}

func TestBadge(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "7", CountBadge(7).Text())
	assert.Equal(t, "99+", CountBadge(120).Text())
	assert.Contains(t, CountBadge(3).View(), " 3 ")
	assert.Equal(t, "●", NewBadge("").ViewWithContext(NewContext(theme.MD2LightTheme())))
}

func TestSnackbar(t *testing.T) {
	t.Parallel()

	for _, th := range []theme.Theme{theme.MD3LightTheme(), theme.MD2DarkTheme()} {
		view := NewSnackbar("Message archived").WithAction("Undo").ViewWithContext(NewContext(th))
		assert.Contains(t, view, "Message archived")
		assert.Contains(t, view, "Undo")
	}
	assert.Equal(t, "Saved", NewSnackbar("Saved").Message())
}

func TestDividerWidth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, lipgloss.Width(NewDivider().WithWidth(10).View()))
	assert.Equal(t, defaultDividerWidth, lipgloss.Width(NewDivider().View()))

	ctx := DefaultContext()
	ctx.ParentWidth = 20
	assert.Equal(t, 20, lipgloss.Width(NewDivider().WithChar("=").ViewWithContext(ctx)))
	assert.Equal(t, strings.Repeat("=", 20), NewDivider().WithChar("=").ViewWithContext(ctx))
}

func TestTextVariants(t *testing.T) {
	t.Parallel()

	text := TitleText("Heading")
	assert.Equal(t, "titleLarge", text.Variant())
	assert.Equal(t, "Heading", text.Content())
	assert.Contains(t, text.View(), "Heading")

	label := LabelText("hint").WithAppliers(Foreground("primary"), Typography("labelLarge"))
	assert.Contains(t, label.ViewWithContext(NewContext(theme.MD2LightTheme())), "hint")
}

func TestStacks(t *testing.T) {
	t.Parallel()

	row := HStack(NewText("a"), nil, NewText("b")).WithGap(2)
	assert.Contains(t, row.View(), "a  b")

	column := VStack(NewText("a"), NewText("b")).WithGap(1)
	assert.Equal(t, 3, lipgloss.Height(column.View()))
	assert.Len(t, column.Children(), 2)

	assert.Equal(t, "", VStack().View())
}

func TestSwatchList(t *testing.T) {
	t.Parallel()

	ctx := NewContext(theme.MD3LightTheme())
	view := SwatchList("primary", "onPrimary", "accent").ViewWithContext(ctx)
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "primary rgba(103, 80, 164, 1)")
	assert.Contains(t, lines[2], "accent")
	assert.Equal(t, "primary", NewSwatch("primary").Role())
}

func TestAddAppliersKeepsCustomStrategy(t *testing.T) {
	t.Parallel()

	var calls []string
	text := NewText("x")
	text.SetStrategy(strategyFunc(func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		calls = append(calls, "custom")
		return s
	}))
	text.WithAppliers(func(s lipgloss.Style, _ RenderContext) lipgloss.Style {
		calls = append(calls, "applier")
		return s
	})

	text.View()
	assert.Equal(t, []string{"custom", "applier"}, calls)
}

type strategyFunc func(lipgloss.Style, RenderContext) lipgloss.Style

func (f strategyFunc) Apply(s lipgloss.Style, ctx RenderContext) lipgloss.Style {
	return f(s, ctx)
}
