// Package config loads paperkit settings from defaults, an optional
// .paperkit.yaml file, PAPERKIT_* environment variables and command flags.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

const (
	// FileName is the project configuration file searched from the working
	// directory upwards.
	FileName  = ".paperkit.yaml"
	envPrefix = "PAPERKIT"
)

const (
	KeyThemeVersion     = "theme.version"
	KeyThemeDark        = "theme.dark"
	KeyThemeSourceColor = "theme.source_color"
	KeyThemeOverride    = "theme.override"
	KeyThemeFormat      = "theme.format"
	KeyThemeCSSPrefix   = "theme.css_prefix"
	KeyImportsModule    = "imports.module"
	KeyImportsMappings  = "imports.mappings"
	KeyImportsPrefix    = "imports.prefix"
	KeyLogLevel         = "log.level"
	KeyLogHuman         = "log.human_readable"
)

// Defaults for keys that commands also expose as flags.
const (
	DefaultModule       = "react-native-paper"
	DefaultModulePrefix = "lib/module"
	DefaultFormat       = "yaml"
	DefaultLogLevel     = "info"
)

// Config is the merged paperkit configuration.
type Config struct {
	Theme   ThemeConfig   `mapstructure:"theme"`
	Imports ImportsConfig `mapstructure:"imports"`
	Log     LogConfig     `mapstructure:"log"`
}

// ThemeConfig selects the theme commands operate on.
type ThemeConfig struct {
	Version     int    `mapstructure:"version" validate:"oneof=2 3"`
	Dark        bool   `mapstructure:"dark"`
	SourceColor string `mapstructure:"source_color" validate:"omitempty,css_color"`
	Override    string `mapstructure:"override"`
	Format      string `mapstructure:"format" validate:"oneof=yaml json css"`
	CSSPrefix   string `mapstructure:"css_prefix" validate:"omitempty,css_ident"`
}

// ImportsConfig drives the import rewriter.
type ImportsConfig struct {
	Module   string `mapstructure:"module" validate:"required,module_specifier"`
	Mappings string `mapstructure:"mappings"`
	Prefix   string `mapstructure:"prefix"`
}

type LogConfig struct {
	Level         string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	HumanReadable bool   `mapstructure:"human_readable"`
}

// LoadOptions controls where configuration comes from.
type LoadOptions struct {
	// ConfigPath is an explicit config file. It must exist when set.
	ConfigPath string
	// WorkingDir is where the search for FileName starts. Empty disables
	// the search.
	WorkingDir string
	// Flags are bound to config keys; a flag overrides file and environment
	// values only when it was set on the command line.
	Flags *pflag.FlagSet
	// Bindings maps config keys to flag names in Flags.
	Bindings map[string]string
}

// Load layers defaults, the config file, PAPERKIT_* environment variables
// and changed flags, then validates the result.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	path := strings.TrimSpace(opts.ConfigPath)
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, paperrors.NewParseError(path, 0, err)
		}
	} else {
		found, err := findProjectConfig(opts.WorkingDir)
		if err != nil {
			return nil, err
		}
		path = found
	}
	if err := mergeConfigFile(v, path); err != nil {
		return nil, err
	}

	if opts.Flags != nil {
		for key, name := range opts.Bindings {
			flag := opts.Flags.Lookup(name)
			if flag == nil {
				return nil, fmt.Errorf("bind %s: unknown flag %q", key, name)
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("bind %s: %w", key, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, paperrors.NewValidationError("config", err.Error(), err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyThemeVersion, 3)
	v.SetDefault(KeyThemeDark, false)
	v.SetDefault(KeyThemeSourceColor, "")
	v.SetDefault(KeyThemeOverride, "")
	v.SetDefault(KeyThemeFormat, DefaultFormat)
	v.SetDefault(KeyThemeCSSPrefix, "md")
	v.SetDefault(KeyImportsModule, DefaultModule)
	v.SetDefault(KeyImportsMappings, "")
	v.SetDefault(KeyImportsPrefix, DefaultModulePrefix)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogHuman, false)
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return paperrors.NewParseError(path, 0, err)
	}
	if info.IsDir() {
		return paperrors.NewParseError(path, 0, fmt.Errorf("config path is a directory"))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return paperrors.NewParseError(path, 0, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return paperrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func findProjectConfig(startDir string) (string, error) {
	if strings.TrimSpace(startDir) == "" {
		return "", nil
	}
	dir := startDir
	for {
		candidate := filepath.Join(dir, FileName)
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", paperrors.NewParseError(candidate, 0, fmt.Errorf("config path is a directory"))
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", paperrors.NewParseError(candidate, 0, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}
