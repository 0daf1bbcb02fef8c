package theme

type typescaleEntry struct {
	name          string
	size          float64
	lineHeight    float64
	letterSpacing float64
	weight        string
}

var md3Typescale = []typescaleEntry{
	{"displayLarge", 57, 64, 0, "400"},
	{"displayMedium", 45, 52, 0, "400"},
	{"displaySmall", 36, 44, 0, "400"},
	{"headlineLarge", 32, 40, 0, "400"},
	{"headlineMedium", 28, 36, 0, "400"},
	{"headlineSmall", 24, 32, 0, "400"},
	{"titleLarge", 22, 28, 0, "400"},
	{"titleMedium", 16, 24, 0.15, "500"},
	{"titleSmall", 14, 20, 0.1, "500"},
	{"labelLarge", 14, 20, 0.1, "500"},
	{"labelMedium", 12, 16, 0.5, "500"},
	{"labelSmall", 11, 16, 0.5, "500"},
	{"bodyLarge", 16, 24, 0.15, "400"},
	{"bodyMedium", 14, 20, 0.25, "400"},
	{"bodySmall", 12, 16, 0.4, "400"},
}

var md2Weights = []struct {
	name   string
	weight string
}{
	{"regular", "400"},
	{"medium", "500"},
	{"light", "300"},
	{"thin", "100"},
}

// TypescaleVariants lists the MD3 typescale names in display order.
func TypescaleVariants() []string {
	names := make([]string, len(md3Typescale))
	for i, entry := range md3Typescale {
		names[i] = entry.name
	}
	return names
}

func md3Fonts(family string) Fonts {
	fonts := make(Fonts, len(md3Typescale)+1)
	fonts["default"] = Font{Family: family, Weight: "400"}
	for _, entry := range md3Typescale {
		fonts[entry.name] = Font{
			Family:        family,
			Weight:        entry.weight,
			LetterSpacing: entry.letterSpacing,
			LineHeight:    entry.lineHeight,
			Size:          entry.size,
		}
	}
	return fonts
}

func md2Fonts(family string) Fonts {
	fonts := make(Fonts, len(md2Weights))
	for _, w := range md2Weights {
		fonts[w.name] = Font{Family: family, Weight: w.weight}
	}
	return fonts
}

// FontConfig customizes the stock font table.
type FontConfig struct {
	// Family replaces the font family of every variant.
	Family string
	// Variants are merged into individual variants after Family is applied.
	// Names missing from the stock table are added.
	Variants map[string]PartialFont
}

// ConfigureFonts builds the font table for version with cfg applied.
func ConfigureFonts(version Version, cfg FontConfig) Fonts {
	fonts := md3Fonts(defaultFontFamily)
	if version == V2 {
		fonts = md2Fonts(defaultFontFamily)
	}

	if cfg.Family != "" {
		for name, font := range fonts {
			font.Family = cfg.Family
			fonts[name] = font
		}
	}
	return mergeFonts(fonts, cfg.Variants)
}
