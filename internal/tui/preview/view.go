package preview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/paperkit/internal/ui/components"
	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

const defaultWidth = 72

var (
	md3Roles = []string{
		"primary", "onPrimary", "primaryContainer", "secondary", "secondaryContainer",
		"tertiary", "tertiaryContainer", "error", "surface", "surfaceVariant", "outline",
	}
	md2Roles = []string{"primary", "accent", "background", "surface", "error", "text", "notification"}
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitted {
		return ""
	}

	sections := []string{
		titleStyle.Render(m.title()),
		m.input.View(),
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render("✗ "+m.err.Error()))
	}
	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}
	sections = append(sections, Render(m.theme, m.width), helpStyle.Render(m.help()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) title() string {
	mode := "light"
	if m.dark {
		mode = "dark"
	}
	source := "stock"
	if m.source != "" {
		source = m.source
	}
	return fmt.Sprintf("paperkit • Material %d • %s • %s", m.version, mode, source)
}

func (m Model) help() string {
	if m.input.Focused() {
		return "enter derive • tab light/dark • esc commands • ctrl+c quit"
	}
	return "/ edit seed • tab light/dark • v Material 2/3 • q quit"
}

// Render draws a component sampler for t. It is what the interactive
// previewer shows and what the non-interactive preview prints.
func Render(t theme.Theme, width int) string {
	if width <= 0 {
		width = defaultWidth
	}
	ctx := components.NewContext(t)
	ctx.ParentWidth = width

	buttons := components.HStack().WithGap(1)
	for _, mode := range components.ButtonModes() {
		buttons.Add(components.NewButton(string(mode)).WithMode(mode))
	}
	disabled := components.ContainedButton("disabled").WithDisabled(true)

	chips := components.HStack(
		components.NewChip("Flat"),
		components.NewChip("Selected").WithSelected(true),
		components.NewChip("Outlined").WithMode(components.ChipOutlined),
		components.NewChip("Off").WithDisabled(true),
		components.CountBadge(3),
	).WithGap(1)

	surfaces := components.HStack().WithGap(1)
	for level := 0; level < theme.ElevationLevels; level++ {
		surfaces.Add(components.NewSurface(components.NewText(fmt.Sprintf("lvl %d", level))).WithElevation(level))
	}

	card := components.NewCard(
		components.NewText("Cards group related content and actions."),
	).WithTitle("Card").WithFooter(components.TonalButton("Action"))

	roles := md3Roles
	if t.Version == theme.V2 {
		roles = md2Roles
	}

	page := components.VStack(
		components.NewAppbar("Preview").WithAction("search").WithAction("more"),
		buttons,
		disabled,
		chips,
		surfaces,
		card,
		components.NewSnackbar("Theme applied").WithAction("Undo"),
		components.NewDivider(),
		components.SwatchList(roles...),
	).WithGap(1)

	return page.ViewWithContext(ctx)
}
