package theme

// PartialTheme mirrors Theme with every field optional. A nil field leaves
// the base value untouched during Merge.
type PartialTheme struct {
	Dark       *bool                  `yaml:"dark,omitempty" json:"dark,omitempty"`
	Mode       *Mode                  `yaml:"mode,omitempty" json:"mode,omitempty"`
	Version    *Version               `yaml:"version,omitempty" json:"version,omitempty"`
	Roundness  *float64               `yaml:"roundness,omitempty" json:"roundness,omitempty"`
	Animation  *PartialAnimation      `yaml:"animation,omitempty" json:"animation,omitempty"`
	Colors     *PartialColors         `yaml:"colors,omitempty" json:"colors,omitempty"`
	Fonts      map[string]PartialFont `yaml:"fonts,omitempty" json:"fonts,omitempty"`
	Extensions Tokens                 `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

type PartialAnimation struct {
	Scale *float64 `yaml:"scale,omitempty" json:"scale,omitempty"`
}

type PartialColors struct {
	Primary              *string `yaml:"primary,omitempty" json:"primary,omitempty"`
	OnPrimary            *string `yaml:"onPrimary,omitempty" json:"onPrimary,omitempty"`
	PrimaryContainer     *string `yaml:"primaryContainer,omitempty" json:"primaryContainer,omitempty"`
	OnPrimaryContainer   *string `yaml:"onPrimaryContainer,omitempty" json:"onPrimaryContainer,omitempty"`
	Secondary            *string `yaml:"secondary,omitempty" json:"secondary,omitempty"`
	OnSecondary          *string `yaml:"onSecondary,omitempty" json:"onSecondary,omitempty"`
	SecondaryContainer   *string `yaml:"secondaryContainer,omitempty" json:"secondaryContainer,omitempty"`
	OnSecondaryContainer *string `yaml:"onSecondaryContainer,omitempty" json:"onSecondaryContainer,omitempty"`
	Tertiary             *string `yaml:"tertiary,omitempty" json:"tertiary,omitempty"`
	OnTertiary           *string `yaml:"onTertiary,omitempty" json:"onTertiary,omitempty"`
	TertiaryContainer    *string `yaml:"tertiaryContainer,omitempty" json:"tertiaryContainer,omitempty"`
	OnTertiaryContainer  *string `yaml:"onTertiaryContainer,omitempty" json:"onTertiaryContainer,omitempty"`
	Error                *string `yaml:"error,omitempty" json:"error,omitempty"`
	OnError              *string `yaml:"onError,omitempty" json:"onError,omitempty"`
	ErrorContainer       *string `yaml:"errorContainer,omitempty" json:"errorContainer,omitempty"`
	OnErrorContainer     *string `yaml:"onErrorContainer,omitempty" json:"onErrorContainer,omitempty"`
	Background           *string `yaml:"background,omitempty" json:"background,omitempty"`
	OnBackground         *string `yaml:"onBackground,omitempty" json:"onBackground,omitempty"`
	Surface              *string `yaml:"surface,omitempty" json:"surface,omitempty"`
	OnSurface            *string `yaml:"onSurface,omitempty" json:"onSurface,omitempty"`
	SurfaceVariant       *string `yaml:"surfaceVariant,omitempty" json:"surfaceVariant,omitempty"`
	OnSurfaceVariant     *string `yaml:"onSurfaceVariant,omitempty" json:"onSurfaceVariant,omitempty"`
	Outline              *string `yaml:"outline,omitempty" json:"outline,omitempty"`
	OutlineVariant       *string `yaml:"outlineVariant,omitempty" json:"outlineVariant,omitempty"`
	Shadow               *string `yaml:"shadow,omitempty" json:"shadow,omitempty"`
	Scrim                *string `yaml:"scrim,omitempty" json:"scrim,omitempty"`
	InverseSurface       *string `yaml:"inverseSurface,omitempty" json:"inverseSurface,omitempty"`
	InverseOnSurface     *string `yaml:"inverseOnSurface,omitempty" json:"inverseOnSurface,omitempty"`
	InversePrimary       *string `yaml:"inversePrimary,omitempty" json:"inversePrimary,omitempty"`

	SurfaceDisabled   *string `yaml:"surfaceDisabled,omitempty" json:"surfaceDisabled,omitempty"`
	OnSurfaceDisabled *string `yaml:"onSurfaceDisabled,omitempty" json:"onSurfaceDisabled,omitempty"`
	Backdrop          *string `yaml:"backdrop,omitempty" json:"backdrop,omitempty"`

	Accent       *string `yaml:"accent,omitempty" json:"accent,omitempty"`
	Text         *string `yaml:"text,omitempty" json:"text,omitempty"`
	Disabled     *string `yaml:"disabled,omitempty" json:"disabled,omitempty"`
	Placeholder  *string `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Notification *string `yaml:"notification,omitempty" json:"notification,omitempty"`

	Elevation *PartialElevation `yaml:"elevation,omitempty" json:"elevation,omitempty"`
}

type PartialElevation struct {
	Level0 *string `yaml:"level0,omitempty" json:"level0,omitempty"`
	Level1 *string `yaml:"level1,omitempty" json:"level1,omitempty"`
	Level2 *string `yaml:"level2,omitempty" json:"level2,omitempty"`
	Level3 *string `yaml:"level3,omitempty" json:"level3,omitempty"`
	Level4 *string `yaml:"level4,omitempty" json:"level4,omitempty"`
	Level5 *string `yaml:"level5,omitempty" json:"level5,omitempty"`
}

func (e *PartialElevation) level(level int) **string {
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

type PartialFont struct {
	Family        *string  `yaml:"fontFamily,omitempty" json:"fontFamily,omitempty"`
	Weight        *string  `yaml:"fontWeight,omitempty" json:"fontWeight,omitempty"`
	LetterSpacing *float64 `yaml:"letterSpacing,omitempty" json:"letterSpacing,omitempty"`
	LineHeight    *float64 `yaml:"lineHeight,omitempty" json:"lineHeight,omitempty"`
	Size          *float64 `yaml:"fontSize,omitempty" json:"fontSize,omitempty"`
}

// Merge returns base with every field present in override applied on top.
// Nested structures are merged rather than replaced, and neither argument is
// modified.
func Merge(base Theme, override PartialTheme) Theme {
	result := base.Clone()

	if override.Dark != nil {
		result.Dark = *override.Dark
	}
	if override.Mode != nil {
		result.Mode = *override.Mode
	}
	if override.Version != nil {
		result.Version = *override.Version
	}
	if override.Roundness != nil {
		result.Roundness = *override.Roundness
	}
	if override.Animation != nil && override.Animation.Scale != nil {
		result.Animation.Scale = *override.Animation.Scale
	}
	if override.Colors != nil {
		result.Colors = mergeColors(result.Colors, override.Colors)
	}
	if override.Fonts != nil {
		result.Fonts = mergeFonts(result.Fonts, override.Fonts)
	}
	if override.Extensions != nil {
		result.Extensions = MergeTokens(result.Extensions, override.Extensions)
	}
	return result
}

func mergeColors(base Colors, override *PartialColors) Colors {
	for _, field := range colorFields {
		if value := *field.optional(override); value != nil {
			*field.value(&base) = *value
		}
	}
	if override.Elevation != nil {
		for level := 0; level < ElevationLevels; level++ {
			if value := *override.Elevation.level(level); value != nil {
				*base.Elevation.level(level) = *value
			}
		}
	}
	return base
}

// mergeFonts may write into base; callers pass a map they own.
func mergeFonts(base Fonts, override map[string]PartialFont) Fonts {
	if base == nil && len(override) > 0 {
		base = make(Fonts, len(override))
	}
	for name, partial := range override {
		font := base[name]
		if partial.Family != nil {
			font.Family = *partial.Family
		}
		if partial.Weight != nil {
			font.Weight = *partial.Weight
		}
		if partial.LetterSpacing != nil {
			font.LetterSpacing = *partial.LetterSpacing
		}
		if partial.LineHeight != nil {
			font.LineHeight = *partial.LineHeight
		}
		if partial.Size != nil {
			font.Size = *partial.Size
		}
		base[name] = font
	}
	return base
}

// MergeTokens deep-merges two token trees. Nested maps merge key by key at
// any depth; any other override value replaces the base value. The result
// shares no maps or slices with either input, and nested maps in it are
// always plain map[string]any.
func MergeTokens(base, override Tokens) Tokens {
	if base == nil && override == nil {
		return nil
	}

	result := make(Tokens, len(base)+len(override))
	for key, value := range base {
		result[key] = cloneToken(value)
	}
	for key, value := range override {
		if baseChild, ok := asTokens(result[key]); ok {
			if overrideChild, ok := asTokens(value); ok {
				result[key] = map[string]any(MergeTokens(baseChild, overrideChild))
				continue
			}
		}
		result[key] = cloneToken(value)
	}
	return result
}

func asTokens(value any) (Tokens, bool) {
	switch v := value.(type) {
	case Tokens:
		return v, true
	case map[string]any:
		return Tokens(v), true
	default:
		return nil, false
	}
}

func cloneTokens(tokens Tokens) Tokens {
	if tokens == nil {
		return nil
	}
	clone := make(Tokens, len(tokens))
	for key, value := range tokens {
		clone[key] = cloneToken(value)
	}
	return clone
}

func cloneToken(value any) any {
	switch v := value.(type) {
	case Tokens:
		return map[string]any(cloneTokens(v))
	case map[string]any:
		return map[string]any(cloneTokens(Tokens(v)))
	case []any:
		clone := make([]any, len(v))
		for i, item := range v {
			clone[i] = cloneToken(item)
		}
		return clone
	default:
		return value
	}
}

// Partial lifts t into a PartialTheme with every field populated, so that
// Merge(base, t.Partial()) reproduces t for any base of the same shape.
func (t Theme) Partial() PartialTheme {
	p := PartialTheme{
		Dark:       ptr(t.Dark),
		Mode:       ptr(t.Mode),
		Version:    ptr(t.Version),
		Roundness:  ptr(t.Roundness),
		Animation:  &PartialAnimation{Scale: ptr(t.Animation.Scale)},
		Colors:     &PartialColors{Elevation: &PartialElevation{}},
		Extensions: cloneTokens(t.Extensions),
	}

	for _, field := range colorFields {
		*field.optional(p.Colors) = ptr(*field.value(&t.Colors))
	}
	for level := 0; level < ElevationLevels; level++ {
		*p.Colors.Elevation.level(level) = ptr(t.Colors.Elevation.Level(level))
	}

	if t.Fonts != nil {
		p.Fonts = make(map[string]PartialFont, len(t.Fonts))
		for name, font := range t.Fonts {
			p.Fonts[name] = PartialFont{
				Family:        ptr(font.Family),
				Weight:        ptr(font.Weight),
				LetterSpacing: ptr(font.LetterSpacing),
				LineHeight:    ptr(font.LineHeight),
				Size:          ptr(font.Size),
			}
		}
	}
	return p
}

func ptr[T any](v T) *T {
	return &v
}
