package theme

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// DefaultCSSPrefix is used by CSSVariables when no prefix is given.
const DefaultCSSPrefix = "md"

// CSSVariables renders the theme colors, elevation levels and roundness as
// CSS custom properties on :root.
func CSSVariables(t Theme, prefix string) string {
	if prefix == "" {
		prefix = DefaultCSSPrefix
	}

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, field := range colorFields {
		if value := *field.value(&t.Colors); value != "" {
			fmt.Fprintf(&b, "  --%s-%s: %s;\n", prefix, kebab(field.name), value)
		}
	}
	for level := 0; level < ElevationLevels; level++ {
		if value := t.Colors.Elevation.Level(level); value != "" {
			fmt.Fprintf(&b, "  --%s-elevation-level%d: %s;\n", prefix, level, value)
		}
	}
	fmt.Fprintf(&b, "  --%s-roundness: %spx;\n", prefix, strconv.FormatFloat(t.Roundness, 'f', -1, 64))
	b.WriteString("}\n")
	return b.String()
}

func kebab(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
