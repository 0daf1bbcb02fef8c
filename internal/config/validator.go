package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/paperkit/internal/color"
	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	modulePattern   = regexp.MustCompile(`^(?:@[a-z0-9-~][a-z0-9-._~]*/)?[a-z0-9-~][a-z0-9-._~]*$`)
	cssIdentPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)
	lineRegex       = regexp.MustCompile(`line (\d+)`)
)

// Validator returns the shared validator with paperkit's custom tags:
// css_color, module_specifier and css_ident. Field names are reported with
// their config keys.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("mapstructure"), ",")
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			_, err := color.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("module_specifier", func(fl validator.FieldLevel) bool {
			return modulePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("css_ident", func(fl validator.FieldLevel) bool {
			return cssIdentPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks field tags and the rules spanning several fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return paperrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := Validator().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Theme.SourceColor != "" && cfg.Theme.Version != int(theme.V3) {
		return paperrors.NewValidationError(KeyThemeSourceColor, "dynamic colors require theme version 3", nil)
	}
	return nil
}

func convertValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := configKey(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return paperrors.NewValidationError(field, msg, err)
	}
	return paperrors.NewValidationError("config", err.Error(), err)
}

// configKey drops the root struct name from the namespace, turning
// "Config.theme.source_color" into "theme.source_color".
func configKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func extractLine(err error) int {
	matches := lineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}

// ResolveOptions turns the theme section into engine options, reading and
// parsing the override document when one is configured.
func (c ThemeConfig) ResolveOptions() (theme.ResolveOptions, error) {
	opts := theme.ResolveOptions{
		Version:     theme.Version(c.Version),
		Dark:        c.Dark,
		SourceColor: c.SourceColor,
	}

	path := strings.TrimSpace(c.Override)
	if path == "" {
		return opts, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return theme.ResolveOptions{}, paperrors.NewParseError(path, 0, err)
	}
	override, err := theme.ParseOverride(path, data)
	if err != nil {
		return theme.ResolveOptions{}, err
	}
	opts.Override = &override
	return opts, nil
}
