package theme

import (
	"sort"
	"strings"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

// Registry holds named themes. It is filled at startup and read afterwards;
// it is not safe for concurrent registration.
type Registry struct {
	themes map[string]Theme
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{themes: make(map[string]Theme)}
}

// DefaultRegistry returns a registry holding the four stock themes.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.themes["md3-light"] = MD3LightTheme()
	r.themes["md3-dark"] = MD3DarkTheme()
	r.themes["md2-light"] = MD2LightTheme()
	r.themes["md2-dark"] = MD2DarkTheme()
	return r
}

// Register stores t under name, replacing any previous entry.
func (r *Registry) Register(name string, t Theme) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return paperrors.NewValidationError("name", "theme name cannot be empty", nil)
	}
	r.themes[name] = t.Clone()
	return nil
}

// Lookup returns a copy of the theme registered under name.
func (r *Registry) Lookup(name string) (Theme, bool) {
	t, ok := r.themes[name]
	if !ok {
		return Theme{}, false
	}
	return t.Clone(), true
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.themes))
	for name := range r.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
