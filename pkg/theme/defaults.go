package theme

import "github.com/alexisbeaulieu97/paperkit/internal/color"

const (
	defaultRoundness      = 4
	defaultAnimationScale = 1.0
	defaultFontFamily     = "System"
)

// MD3LightTheme returns the stock Material 3 light theme.
func MD3LightTheme() Theme {
	return Theme{
		Dark:      false,
		Version:   V3,
		Roundness: defaultRoundness,
		Animation: Animation{Scale: defaultAnimationScale},
		Colors: Colors{
			Primary:              "rgba(103, 80, 164, 1)",
			PrimaryContainer:     "rgba(234, 221, 255, 1)",
			Secondary:            "rgba(98, 91, 113, 1)",
			SecondaryContainer:   "rgba(232, 222, 248, 1)",
			Tertiary:             "rgba(125, 82, 96, 1)",
			TertiaryContainer:    "rgba(255, 216, 228, 1)",
			Surface:              "rgba(255, 251, 254, 1)",
			SurfaceVariant:       "rgba(231, 224, 236, 1)",
			SurfaceDisabled:      "rgba(28, 27, 31, 0.12)",
			Background:           "rgba(255, 251, 254, 1)",
			Error:                "rgba(179, 38, 30, 1)",
			ErrorContainer:       "rgba(249, 222, 220, 1)",
			OnPrimary:            "rgba(255, 255, 255, 1)",
			OnPrimaryContainer:   "rgba(33, 0, 93, 1)",
			OnSecondary:          "rgba(255, 255, 255, 1)",
			OnSecondaryContainer: "rgba(29, 25, 43, 1)",
			OnTertiary:           "rgba(255, 255, 255, 1)",
			OnTertiaryContainer:  "rgba(49, 17, 29, 1)",
			OnSurface:            "rgba(28, 27, 31, 1)",
			OnSurfaceVariant:     "rgba(73, 69, 79, 1)",
			OnSurfaceDisabled:    "rgba(28, 27, 31, 0.38)",
			OnError:              "rgba(255, 255, 255, 1)",
			OnErrorContainer:     "rgba(65, 14, 11, 1)",
			OnBackground:         "rgba(28, 27, 31, 1)",
			Outline:              "rgba(121, 116, 126, 1)",
			OutlineVariant:       "rgba(202, 196, 208, 1)",
			InverseSurface:       "rgba(49, 48, 51, 1)",
			InverseOnSurface:     "rgba(244, 239, 244, 1)",
			InversePrimary:       "rgba(208, 188, 255, 1)",
			Shadow:               "rgba(0, 0, 0, 1)",
			Scrim:                "rgba(0, 0, 0, 1)",
			Backdrop:             "rgba(50, 47, 55, 0.4)",
			Elevation: Elevation{
				Level0: color.Transparent,
				Level1: "rgb(247, 243, 249)",
				Level2: "rgb(243, 237, 246)",
				Level3: "rgb(238, 232, 244)",
				Level4: "rgb(236, 230, 243)",
				Level5: "rgb(233, 227, 241)",
			},
		},
		Fonts: md3Fonts(defaultFontFamily),
	}
}

// MD3DarkTheme returns the stock Material 3 dark theme.
func MD3DarkTheme() Theme {
	t := MD3LightTheme()
	t.Dark = true
	t.Colors = Colors{
		Primary:              "rgba(208, 188, 255, 1)",
		PrimaryContainer:     "rgba(79, 55, 139, 1)",
		Secondary:            "rgba(204, 194, 220, 1)",
		SecondaryContainer:   "rgba(74, 68, 88, 1)",
		Tertiary:             "rgba(239, 184, 200, 1)",
		TertiaryContainer:    "rgba(99, 59, 72, 1)",
		Surface:              "rgba(28, 27, 31, 1)",
		SurfaceVariant:       "rgba(73, 69, 79, 1)",
		SurfaceDisabled:      "rgba(230, 225, 229, 0.12)",
		Background:           "rgba(28, 27, 31, 1)",
		Error:                "rgba(242, 184, 181, 1)",
		ErrorContainer:       "rgba(140, 29, 24, 1)",
		OnPrimary:            "rgba(56, 30, 114, 1)",
		OnPrimaryContainer:   "rgba(234, 221, 255, 1)",
		OnSecondary:          "rgba(51, 45, 65, 1)",
		OnSecondaryContainer: "rgba(232, 222, 248, 1)",
		OnTertiary:           "rgba(73, 37, 50, 1)",
		OnTertiaryContainer:  "rgba(255, 216, 228, 1)",
		OnSurface:            "rgba(230, 225, 229, 1)",
		OnSurfaceVariant:     "rgba(202, 196, 208, 1)",
		OnSurfaceDisabled:    "rgba(230, 225, 229, 0.38)",
		OnError:              "rgba(96, 20, 16, 1)",
		OnErrorContainer:     "rgba(242, 184, 181, 1)",
		OnBackground:         "rgba(230, 225, 229, 1)",
		Outline:              "rgba(147, 143, 153, 1)",
		OutlineVariant:       "rgba(73, 69, 79, 1)",
		InverseSurface:       "rgba(230, 225, 229, 1)",
		InverseOnSurface:     "rgba(49, 48, 51, 1)",
		InversePrimary:       "rgba(103, 80, 164, 1)",
		Shadow:               "rgba(0, 0, 0, 1)",
		Scrim:                "rgba(0, 0, 0, 1)",
		Backdrop:             "rgba(50, 47, 55, 0.4)",
		Elevation: Elevation{
			Level0: color.Transparent,
			Level1: "rgb(37, 35, 42)",
			Level2: "rgb(44, 40, 49)",
			Level3: "rgb(49, 44, 56)",
			Level4: "rgb(51, 46, 58)",
			Level5: "rgb(52, 49, 63)",
		},
	}
	return t
}

// MD2LightTheme returns the stock Material 2 light theme.
func MD2LightTheme() Theme {
	return Theme{
		Dark:      false,
		Version:   V2,
		Roundness: defaultRoundness,
		Animation: Animation{Scale: defaultAnimationScale},
		Colors: Colors{
			Primary:      "#6200ee",
			Accent:       "#03dac4",
			Background:   "#f6f6f6",
			Surface:      "#ffffff",
			Error:        "#B00020",
			Text:         "#000000",
			OnSurface:    "#000000",
			Disabled:     "rgba(0, 0, 0, 0.26)",
			Placeholder:  "rgba(0, 0, 0, 0.54)",
			Backdrop:     "rgba(0, 0, 0, 0.5)",
			Notification: "#f50057",
		},
		Fonts: md2Fonts(defaultFontFamily),
	}
}

// MD2DarkTheme returns the stock Material 2 dark theme. Its surfaces adapt
// to elevation through Overlay.
func MD2DarkTheme() Theme {
	t := MD2LightTheme()
	t.Dark = true
	t.Mode = ModeAdaptive
	t.Colors = Colors{
		Primary:      "#BB86FC",
		Accent:       "#03dac6",
		Background:   "#121212",
		Surface:      "#121212",
		Error:        "#CF6679",
		OnSurface:    "#FFFFFF",
		Text:         "#ffffff",
		Disabled:     "rgba(255, 255, 255, 0.38)",
		Placeholder:  "rgba(255, 255, 255, 0.54)",
		Backdrop:     "rgba(0, 0, 0, 0.5)",
		Notification: "#ff80ab",
	}
	return t
}

// Default selects one of the four stock themes. Unknown versions fall back
// to Material 3.
func Default(version Version, dark bool) Theme {
	switch {
	case version == V2 && dark:
		return MD2DarkTheme()
	case version == V2:
		return MD2LightTheme()
	case dark:
		return MD3DarkTheme()
	default:
		return MD3LightTheme()
	}
}
