// Package theme is the Material theme engine.
//
// It ships the stock MD2 and MD3 themes, derives MD3 light and dark themes
// from a single seed color, and merges partial overrides into a base theme:
//
//	pair, err := theme.Derive("#3f51b5")
//	if err != nil {
//		return err
//	}
//	custom := theme.Merge(pair.Dark, theme.PartialTheme{Roundness: &six})
//
// Themes are plain values. Nothing in this package keeps global state; a
// Registry is an explicit value owned by the caller.
package theme
