// Package ui holds the contracts shared by paperkit's terminal views.
package ui

// Renderable is anything that renders itself to a terminal string.
type Renderable interface {
	View() string
}
