package components

import (
	"github.com/alexisbeaulieu97/paperkit/internal/color"
	"github.com/alexisbeaulieu97/paperkit/pkg/styletree"
	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

// Leaf keys shared by every style table.
const (
	KeyBackgroundColor = "backgroundColor"
	KeyColor           = "color"
	KeyBorderColor     = "borderColor"
)

// Interaction states used as the outer level of stateful tables.
const (
	StateEnabled  = "enabled"
	StateDisabled = "disabled"
)

// Selection keys of the chip table.
const (
	Selected   = "selected"
	Unselected = "unselected"
)

// ButtonMode selects a button's visual treatment.
type ButtonMode string

const (
	ButtonElevated       ButtonMode = "elevated"
	ButtonContained      ButtonMode = "contained"
	ButtonContainedTonal ButtonMode = "contained-tonal"
	ButtonOutlined       ButtonMode = "outlined"
	ButtonText           ButtonMode = "text"
)

// ButtonModes lists every button mode in table order.
func ButtonModes() []ButtonMode {
	return []ButtonMode{ButtonElevated, ButtonContained, ButtonContainedTonal, ButtonOutlined, ButtonText}
}

// CardMode selects a card's container treatment.
type CardMode string

const (
	CardElevated  CardMode = "elevated"
	CardContained CardMode = "contained"
	CardOutlined  CardMode = "outlined"
)

// ChipMode selects a chip's treatment.
type ChipMode string

const (
	ChipFlat     ChipMode = "flat"
	ChipOutlined ChipMode = "outlined"
)

// colorSet reads roles from a theme, yielding "" for roles it leaves unset.
type colorSet struct {
	t theme.Theme
}

func (c colorSet) role(name string) string {
	value, _ := c.t.Color(name)
	return value
}

func (c colorSet) alpha(name string, alpha float64) string {
	value := c.role(name)
	if value == "" {
		return ""
	}
	return withAlpha(value, alpha)
}

func leaf(background, content string) *styletree.Tree {
	return styletree.New().
		Set(KeyBackgroundColor, background).
		Set(KeyColor, content)
}

func bordered(background, content, border string) *styletree.Tree {
	return leaf(background, content).Set(KeyBorderColor, border)
}

// ButtonColors is the button style table: state, then mode, then the leaf
// colors.
func ButtonColors(t theme.Theme) *styletree.Tree {
	c := colorSet{t}
	enabled := styletree.New()
	disabled := styletree.New()

	if t.Version == theme.V2 {
		onPrimary := contrastText(c.role("primary"))
		enabled.
			Set(string(ButtonElevated), leaf(c.role("primary"), onPrimary)).
			Set(string(ButtonContained), leaf(c.role("primary"), onPrimary)).
			Set(string(ButtonContainedTonal), leaf(c.alpha("primary", 0.12), c.role("primary"))).
			Set(string(ButtonOutlined), bordered(color.Transparent, c.role("primary"), c.alpha("text", 0.29))).
			Set(string(ButtonText), leaf(color.Transparent, c.role("primary")))
		disabledBackground := c.alpha("text", 0.12)
		disabled.
			Set(string(ButtonElevated), leaf(disabledBackground, c.role("disabled"))).
			Set(string(ButtonContained), leaf(disabledBackground, c.role("disabled"))).
			Set(string(ButtonContainedTonal), leaf(disabledBackground, c.role("disabled"))).
			Set(string(ButtonOutlined), bordered(color.Transparent, c.role("disabled"), c.alpha("text", 0.12))).
			Set(string(ButtonText), leaf(color.Transparent, c.role("disabled")))
	} else {
		enabled.
			Set(string(ButtonElevated), leaf(c.role("elevation.level1"), c.role("primary"))).
			Set(string(ButtonContained), leaf(c.role("primary"), c.role("onPrimary"))).
			Set(string(ButtonContainedTonal), leaf(c.role("secondaryContainer"), c.role("onSecondaryContainer"))).
			Set(string(ButtonOutlined), bordered(color.Transparent, c.role("primary"), c.role("outline"))).
			Set(string(ButtonText), leaf(color.Transparent, c.role("primary")))
		disabled.
			Set(string(ButtonElevated), leaf(c.role("surfaceDisabled"), c.role("onSurfaceDisabled"))).
			Set(string(ButtonContained), leaf(c.role("surfaceDisabled"), c.role("onSurfaceDisabled"))).
			Set(string(ButtonContainedTonal), leaf(c.role("surfaceDisabled"), c.role("onSurfaceDisabled"))).
			Set(string(ButtonOutlined), bordered(color.Transparent, c.role("onSurfaceDisabled"), c.role("surfaceDisabled"))).
			Set(string(ButtonText), leaf(color.Transparent, c.role("onSurfaceDisabled")))
	}

	return styletree.New().Set(StateEnabled, enabled).Set(StateDisabled, disabled)
}

// CardColors maps each card mode to its container colors.
func CardColors(t theme.Theme) *styletree.Tree {
	c := colorSet{t}
	card := func(background, border string) *styletree.Tree {
		return styletree.New().Set(KeyBackgroundColor, background).Set(KeyBorderColor, border)
	}

	if t.Version == theme.V2 {
		return styletree.New().
			Set(string(CardElevated), card(c.role("surface"), color.Transparent)).
			Set(string(CardContained), card(c.role("surface"), color.Transparent)).
			Set(string(CardOutlined), card(c.role("surface"), c.alpha("text", 0.12)))
	}
	return styletree.New().
		Set(string(CardElevated), card(c.role("elevation.level1"), color.Transparent)).
		Set(string(CardContained), card(c.role("surfaceVariant"), color.Transparent)).
		Set(string(CardOutlined), card(c.role("surface"), c.role("outline")))
}

// ChipColors is the chip style table: state, then mode, then selection,
// then the leaf colors.
func ChipColors(t theme.Theme) *styletree.Tree {
	c := colorSet{t}
	selection := func(selected, unselected *styletree.Tree) *styletree.Tree {
		return styletree.New().Set(Selected, selected).Set(Unselected, unselected)
	}

	var enabled, disabled *styletree.Tree
	if t.Version == theme.V2 {
		text := c.role("text")
		enabled = styletree.New().
			Set(string(ChipFlat), selection(
				bordered(c.alpha("primary", 0.12), text, color.Transparent),
				bordered(c.alpha("text", 0.08), text, color.Transparent))).
			Set(string(ChipOutlined), selection(
				bordered(c.alpha("primary", 0.12), text, c.alpha("text", 0.29)),
				bordered(color.Transparent, text, c.alpha("text", 0.29))))
		off := bordered(c.alpha("text", 0.08), c.role("disabled"), color.Transparent)
		offOutlined := bordered(color.Transparent, c.role("disabled"), c.alpha("text", 0.12))
		disabled = styletree.New().
			Set(string(ChipFlat), selection(off, off)).
			Set(string(ChipOutlined), selection(offOutlined, offOutlined))
	} else {
		enabled = styletree.New().
			Set(string(ChipFlat), selection(
				bordered(c.role("secondaryContainer"), c.role("onSecondaryContainer"), color.Transparent),
				bordered(c.role("surfaceVariant"), c.role("onSurfaceVariant"), color.Transparent))).
			Set(string(ChipOutlined), selection(
				bordered(c.role("secondaryContainer"), c.role("onSecondaryContainer"), color.Transparent),
				bordered(color.Transparent, c.role("onSurfaceVariant"), c.role("outline"))))
		off := bordered(c.role("surfaceDisabled"), c.role("onSurfaceDisabled"), color.Transparent)
		offOutlined := bordered(color.Transparent, c.role("onSurfaceDisabled"), c.role("surfaceDisabled"))
		disabled = styletree.New().
			Set(string(ChipFlat), selection(off, off)).
			Set(string(ChipOutlined), selection(offOutlined, offOutlined))
	}

	return styletree.New().Set(StateEnabled, enabled).Set(StateDisabled, disabled)
}

// SurfaceColors is the flat surface table.
func SurfaceColors(t theme.Theme) *styletree.Tree {
	c := colorSet{t}
	if t.Version == theme.V2 {
		return leaf(c.role("surface"), c.role("text"))
	}
	return leaf(c.role("surface"), c.role("onSurface"))
}

// StyleTable returns the table for a component name.
func StyleTable(component string, t theme.Theme) (*styletree.Tree, bool) {
	switch component {
	case "button":
		return ButtonColors(t), true
	case "card":
		return CardColors(t), true
	case "chip":
		return ChipColors(t), true
	case "surface":
		return SurfaceColors(t), true
	default:
		return nil, false
	}
}

// StyleTableNames lists the component names StyleTable knows.
func StyleTableNames() []string {
	return []string{"button", "card", "chip", "surface"}
}

func stringLeaf(tree *styletree.Tree, path ...string) string {
	value, ok := tree.Lookup(path...)
	if !ok {
		return ""
	}
	s, _ := value.(string)
	return s
}
