package theme

import (
	"fmt"
	"strings"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

// ResolveOptions selects the theme handed to components.
type ResolveOptions struct {
	// Version defaults to V3 when zero.
	Version Version
	Dark    bool
	// SourceColor, when set, replaces the stock colors with derived ones.
	// Only supported for V3.
	SourceColor string
	Override    *PartialTheme
}

// Resolve picks the stock theme for opts, swaps in derived colors when a
// source color is given and applies the override last.
func Resolve(opts ResolveOptions) (Theme, error) {
	version := opts.Version
	if version == 0 {
		version = V3
	}
	if !version.Valid() {
		return Theme{}, paperrors.NewValidationError("version", fmt.Sprintf("unsupported version %d, expected 2 or 3", version), nil)
	}

	base := Default(version, opts.Dark)

	if strings.TrimSpace(opts.SourceColor) != "" {
		if version != V3 {
			return Theme{}, paperrors.NewValidationError("sourceColor", "dynamic colors require version 3", nil)
		}
		pair, err := Derive(opts.SourceColor)
		if err != nil {
			return Theme{}, err
		}
		base = pair.Light
		if opts.Dark {
			base = pair.Dark
		}
	}

	if opts.Override != nil {
		base = Merge(base, *opts.Override)
	}
	return base, nil
}
