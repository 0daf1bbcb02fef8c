// Package preview is the interactive theme previewer: type a seed color,
// derive a scheme and see Material components rendered with it.
package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

const seedCharLimit = 64

// Options seeds the previewer.
type Options struct {
	Version     theme.Version
	Dark        bool
	SourceColor string
	Override    *theme.PartialTheme
}

// Model is the Bubbletea state of the previewer.
type Model struct {
	input    textinput.Model
	version  theme.Version
	dark     bool
	source   string
	override *theme.PartialTheme
	theme    theme.Theme

	err     error
	notice  string
	width   int
	quitted bool
}

// NewModel builds the previewer and resolves the starting theme. A starting
// seed that does not parse is reported in the view, not returned.
func NewModel(opts Options) Model {
	input := textinput.New()
	input.Prompt = "seed › "
	input.Placeholder = "#6750a4, rgb(…), or a color name"
	input.CharLimit = seedCharLimit
	input.SetValue(opts.SourceColor)
	input.Focus()

	version := opts.Version
	if version == 0 {
		version = theme.V3
	}

	m := Model{
		input:    input,
		version:  version,
		dark:     opts.Dark,
		override: opts.Override,
		theme:    theme.Default(version, opts.Dark),
	}
	m.apply(strings.TrimSpace(opts.SourceColor))
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Theme returns the theme currently shown.
func (m Model) Theme() theme.Theme {
	return m.theme
}

// Source returns the applied seed, or "" when showing the stock theme.
func (m Model) Source() string {
	return m.source
}

// Err returns the last resolution error.
func (m Model) Err() error {
	return m.err
}

// Quitted reports whether the user asked to leave.
func (m Model) Quitted() bool {
	return m.quitted
}

// apply resolves the theme for source and the current toggles. On failure
// the previous theme stays on screen and the error is kept for the view.
func (m *Model) apply(source string) {
	resolved, err := theme.Resolve(theme.ResolveOptions{
		Version:     m.version,
		Dark:        m.dark,
		SourceColor: source,
		Override:    m.override,
	})
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.source = source
	m.theme = resolved
}
