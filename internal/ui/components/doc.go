// Package components renders Material components to the terminal with
// lipgloss.
//
// # Theme
//
// Every view receives its theme through a RenderContext; there is no
// ambient theme. Build one from a resolved theme.Theme:
//
//	ctx := components.NewContext(theme.MD3DarkTheme())
//	out := components.ContainedButton("Save").ViewWithContext(ctx)
//
// View() renders with the stock Material 3 light theme.
//
// # Style tables
//
// ButtonColors, CardColors, ChipColors and SurfaceColors return the color
// tables components read from as styletree.Tree values, so the same data can
// be inspected with styletree.UniqueNestedKeys and styletree.MaxNestedLevel:
//
//	button: state -> mode -> {backgroundColor, color, borderColor}
//	card:   mode -> {backgroundColor, borderColor}
//	chip:   state -> mode -> selection -> {backgroundColor, color, borderColor}
//	surface: {backgroundColor, color}
//
// # Colors
//
// Palette resolves theme values to terminal colors. Terminals have no
// alpha, so translucent tokens such as surfaceDisabled are composited onto
// the theme background, and fully transparent ones leave the cell unpainted.
//
// # Components
//
// Primitives: Text (typescale variants), Divider, Swatch.
// Layout: Stack (VStack, HStack) and Container.
// Material: Button, Card, Chip, Surface, Appbar, Badge, Snackbar.
//
// Components accept StyleFunc modifiers through WithAppliers:
//
//	text := components.NewText("Hello").WithAppliers(
//		components.Foreground("primary"),
//		components.Typography("headlineSmall"),
//	)
package components
