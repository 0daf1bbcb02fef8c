package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/paperkit/internal/color"
	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseOverride decodes a YAML (or JSON) override document. Unknown keys
// are rejected and every color present must be a valid CSS color or
// "transparent". path is only used for error reporting.
func ParseOverride(path string, data []byte) (PartialTheme, error) {
	var override PartialTheme

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&override); err != nil && !errors.Is(err, io.EOF) {
		return PartialTheme{}, paperrors.NewParseError(path, extractLine(err), err)
	}

	if err := validateOverrideColors(override.Colors); err != nil {
		return PartialTheme{}, err
	}
	return override, nil
}

func validateOverrideColors(colors *PartialColors) error {
	if colors == nil {
		return nil
	}
	for _, field := range colorFields {
		if value := *field.optional(colors); value != nil {
			if _, err := color.Normalize(*value); err != nil {
				return paperrors.NewValidationError("colors."+field.name, "invalid color value", err)
			}
		}
	}
	if colors.Elevation == nil {
		return nil
	}
	for level := 0; level < ElevationLevels; level++ {
		if value := *colors.Elevation.level(level); value != nil {
			if _, err := color.Normalize(*value); err != nil {
				return paperrors.NewValidationError(fmt.Sprintf("colors.elevation.level%d", level), "invalid color value", err)
			}
		}
	}
	return nil
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
