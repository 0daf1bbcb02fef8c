package theme

import (
	"strings"
)

// Version selects the Material design-system generation.
type Version int

const (
	// V2 is Material Design 2.
	V2 Version = 2
	// V3 is Material You / Material Design 3.
	V3 Version = 3
)

// Valid reports whether v is a supported design-system version.
func (v Version) Valid() bool {
	return v == V2 || v == V3
}

// Mode controls how dark surfaces are adapted in MD2 themes.
type Mode string

const (
	ModeExact    Mode = "exact"
	ModeAdaptive Mode = "adaptive"
)

// Theme is the complete set of design tokens consumed by components.
// Themes are values: every operation in this package returns a new Theme.
type Theme struct {
	Dark       bool      `yaml:"dark" json:"dark"`
	Mode       Mode      `yaml:"mode,omitempty" json:"mode,omitempty"`
	Version    Version   `yaml:"version" json:"version"`
	Roundness  float64   `yaml:"roundness" json:"roundness"`
	Animation  Animation `yaml:"animation" json:"animation"`
	Colors     Colors    `yaml:"colors" json:"colors"`
	Fonts      Fonts     `yaml:"fonts" json:"fonts"`
	Extensions Tokens    `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Animation holds animation tokens.
type Animation struct {
	Scale float64 `yaml:"scale" json:"scale"`
}

// Colors holds every color role. MD3 themes fill the scheme roles and the
// elevation map; MD2 themes fill the MD2-only roles instead.
type Colors struct {
	Primary              string `yaml:"primary,omitempty" json:"primary,omitempty"`
	OnPrimary            string `yaml:"onPrimary,omitempty" json:"onPrimary,omitempty"`
	PrimaryContainer     string `yaml:"primaryContainer,omitempty" json:"primaryContainer,omitempty"`
	OnPrimaryContainer   string `yaml:"onPrimaryContainer,omitempty" json:"onPrimaryContainer,omitempty"`
	Secondary            string `yaml:"secondary,omitempty" json:"secondary,omitempty"`
	OnSecondary          string `yaml:"onSecondary,omitempty" json:"onSecondary,omitempty"`
	SecondaryContainer   string `yaml:"secondaryContainer,omitempty" json:"secondaryContainer,omitempty"`
	OnSecondaryContainer string `yaml:"onSecondaryContainer,omitempty" json:"onSecondaryContainer,omitempty"`
	Tertiary             string `yaml:"tertiary,omitempty" json:"tertiary,omitempty"`
	OnTertiary           string `yaml:"onTertiary,omitempty" json:"onTertiary,omitempty"`
	TertiaryContainer    string `yaml:"tertiaryContainer,omitempty" json:"tertiaryContainer,omitempty"`
	OnTertiaryContainer  string `yaml:"onTertiaryContainer,omitempty" json:"onTertiaryContainer,omitempty"`
	Error                string `yaml:"error,omitempty" json:"error,omitempty"`
	OnError              string `yaml:"onError,omitempty" json:"onError,omitempty"`
	ErrorContainer       string `yaml:"errorContainer,omitempty" json:"errorContainer,omitempty"`
	OnErrorContainer     string `yaml:"onErrorContainer,omitempty" json:"onErrorContainer,omitempty"`
	Background           string `yaml:"background,omitempty" json:"background,omitempty"`
	OnBackground         string `yaml:"onBackground,omitempty" json:"onBackground,omitempty"`
	Surface              string `yaml:"surface,omitempty" json:"surface,omitempty"`
	OnSurface            string `yaml:"onSurface,omitempty" json:"onSurface,omitempty"`
	SurfaceVariant       string `yaml:"surfaceVariant,omitempty" json:"surfaceVariant,omitempty"`
	OnSurfaceVariant     string `yaml:"onSurfaceVariant,omitempty" json:"onSurfaceVariant,omitempty"`
	Outline              string `yaml:"outline,omitempty" json:"outline,omitempty"`
	OutlineVariant       string `yaml:"outlineVariant,omitempty" json:"outlineVariant,omitempty"`
	Shadow               string `yaml:"shadow,omitempty" json:"shadow,omitempty"`
	Scrim                string `yaml:"scrim,omitempty" json:"scrim,omitempty"`
	InverseSurface       string `yaml:"inverseSurface,omitempty" json:"inverseSurface,omitempty"`
	InverseOnSurface     string `yaml:"inverseOnSurface,omitempty" json:"inverseOnSurface,omitempty"`
	InversePrimary       string `yaml:"inversePrimary,omitempty" json:"inversePrimary,omitempty"`

	SurfaceDisabled   string `yaml:"surfaceDisabled,omitempty" json:"surfaceDisabled,omitempty"`
	OnSurfaceDisabled string `yaml:"onSurfaceDisabled,omitempty" json:"onSurfaceDisabled,omitempty"`
	Backdrop          string `yaml:"backdrop,omitempty" json:"backdrop,omitempty"`

	// MD2 only.
	Accent       string `yaml:"accent,omitempty" json:"accent,omitempty"`
	Text         string `yaml:"text,omitempty" json:"text,omitempty"`
	Disabled     string `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Placeholder  string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Notification string `yaml:"notification,omitempty" json:"notification,omitempty"`

	Elevation Elevation `yaml:"elevation,omitempty" json:"elevation,omitzero"`
}

// ElevationLevels is the number of elevation levels, level0 included.
const ElevationLevels = 6

// Elevation maps levels 0..5 to surface overlay colors.
type Elevation struct {
	Level0 string `yaml:"level0,omitempty" json:"level0,omitempty"`
	Level1 string `yaml:"level1,omitempty" json:"level1,omitempty"`
	Level2 string `yaml:"level2,omitempty" json:"level2,omitempty"`
	Level3 string `yaml:"level3,omitempty" json:"level3,omitempty"`
	Level4 string `yaml:"level4,omitempty" json:"level4,omitempty"`
	Level5 string `yaml:"level5,omitempty" json:"level5,omitempty"`
}

// Level returns the color at level, or "" for levels outside 0..5.
func (e Elevation) Level(level int) string {
	if p := e.level(level); p != nil {
		return *p
	}
	return ""
}

func (e *Elevation) level(level int) *string {
	switch level {
	case 0:
		return &e.Level0
	case 1:
		return &e.Level1
	case 2:
		return &e.Level2
	case 3:
		return &e.Level3
	case 4:
		return &e.Level4
	case 5:
		return &e.Level5
	default:
		return nil
	}
}

// Font describes one typescale entry.
type Font struct {
	Family        string  `yaml:"fontFamily" json:"fontFamily"`
	Weight        string  `yaml:"fontWeight" json:"fontWeight"`
	LetterSpacing float64 `yaml:"letterSpacing,omitempty" json:"letterSpacing,omitempty"`
	LineHeight    float64 `yaml:"lineHeight,omitempty" json:"lineHeight,omitempty"`
	Size          float64 `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
}

// Fonts maps a typescale or weight name (bodyMedium, regular, ...) to a font.
type Fonts map[string]Font

// Tokens is an open tree of custom tokens nested to any depth.
type Tokens map[string]any

type colorField struct {
	name     string
	value    func(*Colors) *string
	optional func(*PartialColors) **string
}

var colorFields = []colorField{
	{"primary", func(c *Colors) *string { return &c.Primary }, func(p *PartialColors) **string { return &p.Primary }},
	{"onPrimary", func(c *Colors) *string { return &c.OnPrimary }, func(p *PartialColors) **string { return &p.OnPrimary }},
	{"primaryContainer", func(c *Colors) *string { return &c.PrimaryContainer }, func(p *PartialColors) **string { return &p.PrimaryContainer }},
	{"onPrimaryContainer", func(c *Colors) *string { return &c.OnPrimaryContainer }, func(p *PartialColors) **string { return &p.OnPrimaryContainer }},
	{"secondary", func(c *Colors) *string { return &c.Secondary }, func(p *PartialColors) **string { return &p.Secondary }},
	{"onSecondary", func(c *Colors) *string { return &c.OnSecondary }, func(p *PartialColors) **string { return &p.OnSecondary }},
	{"secondaryContainer", func(c *Colors) *string { return &c.SecondaryContainer }, func(p *PartialColors) **string { return &p.SecondaryContainer }},
	{"onSecondaryContainer", func(c *Colors) *string { return &c.OnSecondaryContainer }, func(p *PartialColors) **string { return &p.OnSecondaryContainer }},
	{"tertiary", func(c *Colors) *string { return &c.Tertiary }, func(p *PartialColors) **string { return &p.Tertiary }},
	{"onTertiary", func(c *Colors) *string { return &c.OnTertiary }, func(p *PartialColors) **string { return &p.OnTertiary }},
	{"tertiaryContainer", func(c *Colors) *string { return &c.TertiaryContainer }, func(p *PartialColors) **string { return &p.TertiaryContainer }},
	{"onTertiaryContainer", func(c *Colors) *string { return &c.OnTertiaryContainer }, func(p *PartialColors) **string { return &p.OnTertiaryContainer }},
	{"error", func(c *Colors) *string { return &c.Error }, func(p *PartialColors) **string { return &p.Error }},
	{"onError", func(c *Colors) *string { return &c.OnError }, func(p *PartialColors) **string { return &p.OnError }},
	{"errorContainer", func(c *Colors) *string { return &c.ErrorContainer }, func(p *PartialColors) **string { return &p.ErrorContainer }},
	{"onErrorContainer", func(c *Colors) *string { return &c.OnErrorContainer }, func(p *PartialColors) **string { return &p.OnErrorContainer }},
	{"background", func(c *Colors) *string { return &c.Background }, func(p *PartialColors) **string { return &p.Background }},
	{"onBackground", func(c *Colors) *string { return &c.OnBackground }, func(p *PartialColors) **string { return &p.OnBackground }},
	{"surface", func(c *Colors) *string { return &c.Surface }, func(p *PartialColors) **string { return &p.Surface }},
	{"onSurface", func(c *Colors) *string { return &c.OnSurface }, func(p *PartialColors) **string { return &p.OnSurface }},
	{"surfaceVariant", func(c *Colors) *string { return &c.SurfaceVariant }, func(p *PartialColors) **string { return &p.SurfaceVariant }},
	{"onSurfaceVariant", func(c *Colors) *string { return &c.OnSurfaceVariant }, func(p *PartialColors) **string { return &p.OnSurfaceVariant }},
	{"outline", func(c *Colors) *string { return &c.Outline }, func(p *PartialColors) **string { return &p.Outline }},
	{"outlineVariant", func(c *Colors) *string { return &c.OutlineVariant }, func(p *PartialColors) **string { return &p.OutlineVariant }},
	{"shadow", func(c *Colors) *string { return &c.Shadow }, func(p *PartialColors) **string { return &p.Shadow }},
	{"scrim", func(c *Colors) *string { return &c.Scrim }, func(p *PartialColors) **string { return &p.Scrim }},
	{"inverseSurface", func(c *Colors) *string { return &c.InverseSurface }, func(p *PartialColors) **string { return &p.InverseSurface }},
	{"inverseOnSurface", func(c *Colors) *string { return &c.InverseOnSurface }, func(p *PartialColors) **string { return &p.InverseOnSurface }},
	{"inversePrimary", func(c *Colors) *string { return &c.InversePrimary }, func(p *PartialColors) **string { return &p.InversePrimary }},
	{"surfaceDisabled", func(c *Colors) *string { return &c.SurfaceDisabled }, func(p *PartialColors) **string { return &p.SurfaceDisabled }},
	{"onSurfaceDisabled", func(c *Colors) *string { return &c.OnSurfaceDisabled }, func(p *PartialColors) **string { return &p.OnSurfaceDisabled }},
	{"backdrop", func(c *Colors) *string { return &c.Backdrop }, func(p *PartialColors) **string { return &p.Backdrop }},
	{"accent", func(c *Colors) *string { return &c.Accent }, func(p *PartialColors) **string { return &p.Accent }},
	{"text", func(c *Colors) *string { return &c.Text }, func(p *PartialColors) **string { return &p.Text }},
	{"disabled", func(c *Colors) *string { return &c.Disabled }, func(p *PartialColors) **string { return &p.Disabled }},
	{"placeholder", func(c *Colors) *string { return &c.Placeholder }, func(p *PartialColors) **string { return &p.Placeholder }},
	{"notification", func(c *Colors) *string { return &c.Notification }, func(p *PartialColors) **string { return &p.Notification }},
}

var colorFieldIndex = func() map[string]colorField {
	index := make(map[string]colorField, len(colorFields))
	for _, f := range colorFields {
		index[f.name] = f
	}
	return index
}()

// ColorRoles lists every color role name in canonical order.
func ColorRoles() []string {
	names := make([]string, len(colorFields))
	for i, f := range colorFields {
		names[i] = f.name
	}
	return names
}

// Color looks a role up by name. Elevation levels are addressed as
// "elevation.level0" .. "elevation.level5". Roles the theme leaves empty
// report false.
func (t Theme) Color(role string) (string, bool) {
	if rest, ok := strings.CutPrefix(role, "elevation."); ok {
		level, ok := parseLevel(rest)
		if !ok {
			return "", false
		}
		value := t.Colors.Elevation.Level(level)
		return value, value != ""
	}

	field, ok := colorFieldIndex[role]
	if !ok {
		return "", false
	}
	value := *field.value(&t.Colors)
	return value, value != ""
}

func parseLevel(name string) (int, bool) {
	digits, ok := strings.CutPrefix(name, "level")
	if !ok || len(digits) != 1 || digits[0] < '0' || digits[0] > '5' {
		return 0, false
	}
	return int(digits[0] - '0'), true
}

// Clone returns a deep copy that shares no maps with t.
func (t Theme) Clone() Theme {
	if t.Fonts != nil {
		fonts := make(Fonts, len(t.Fonts))
		for name, font := range t.Fonts {
			fonts[name] = font
		}
		t.Fonts = fonts
	}
	t.Extensions = cloneTokens(t.Extensions)
	return t
}
