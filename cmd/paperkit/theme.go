package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paperkit/internal/config"
	"github.com/alexisbeaulieu97/paperkit/internal/tui/preview"
	"github.com/alexisbeaulieu97/paperkit/pkg/theme"
)

// runPreviewProgram is swapped in tests so no terminal is needed.
var runPreviewProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

type themeFlags struct {
	version     int
	dark        bool
	sourceColor string
	override    string
	format      string
	cssPrefix   string
	interactive bool
}

var themeBindings = map[string]string{
	config.KeyThemeVersion:     "version",
	config.KeyThemeDark:        "dark",
	config.KeyThemeSourceColor: "source-color",
	config.KeyThemeOverride:    "override",
}

func addThemeSelectionFlags(cmd *cobra.Command, flags *themeFlags) {
	cmd.Flags().IntVar(&flags.version, "version", 3, "Material Design version (2 or 3)")
	cmd.Flags().BoolVar(&flags.dark, "dark", false, "Use the dark variant")
	cmd.Flags().StringVar(&flags.sourceColor, "source-color", "", "Seed color to derive a Material 3 scheme from")
	cmd.Flags().StringVar(&flags.override, "override", "", "YAML document merged over the resolved theme")
}

func newThemeCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Resolve, derive and preview Material themes",
	}

	cmd.AddCommand(newThemeShowCmd(root))
	cmd.AddCommand(newThemeDeriveCmd(root))
	cmd.AddCommand(newThemeListCmd())
	cmd.AddCommand(newThemePreviewCmd(root))
	return cmd
}

func resolveTheme(app *appContext) (theme.Theme, error) {
	opts, err := app.cfg.Theme.ResolveOptions()
	if err != nil {
		return theme.Theme{}, newCommandError("read theme override", app.cfg.Theme.Override, err, "Check that the override file exists and is valid YAML.")
	}
	t, err := theme.Resolve(opts)
	if err != nil {
		return theme.Theme{}, newCommandError(
			"resolve theme",
			fmt.Sprintf("version %d", opts.Version),
			err,
			"Seed colors need --version 3; colors accept hex, rgb(), hsl() or CSS names.",
		)
	}
	app.log.WithFields(map[string]any{
		"version":      int(t.Version),
		"dark":         t.Dark,
		"source_color": opts.SourceColor,
		"override":     opts.Override != nil,
	}).Debug("theme resolved")
	return t, nil
}

func newThemeShowCmd(root *rootFlags) *cobra.Command {
	flags := &themeFlags{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bindings := map[string]string{
				config.KeyThemeFormat:    "format",
				config.KeyThemeCSSPrefix: "css-prefix",
			}
			for key, name := range themeBindings {
				bindings[key] = name
			}
			app, err := loadAppContext(cmd, root, bindings)
			if err != nil {
				return err
			}

			t, err := resolveTheme(app)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if app.cfg.Theme.Format == "css" {
				_, err = fmt.Fprint(out, theme.CSSVariables(t, app.cfg.Theme.CSSPrefix))
				return err
			}
			return writeStructured(out, app.cfg.Theme.Format, t)
		},
	}

	addThemeSelectionFlags(cmd, flags)
	cmd.Flags().StringVar(&flags.format, "format", config.DefaultFormat, "Output format (yaml, json, css)")
	cmd.Flags().StringVar(&flags.cssPrefix, "css-prefix", theme.DefaultCSSPrefix, "Custom property prefix for --format css")
	return cmd
}

type derivedColors struct {
	Source string       `yaml:"source" json:"source"`
	Light  theme.Colors `yaml:"light" json:"light"`
	Dark   theme.Colors `yaml:"dark" json:"dark"`
}

func newThemeDeriveCmd(root *rootFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "derive <color>",
		Short: "Derive light and dark Material 3 color schemes from a seed color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "json" {
				return newCommandError("derive colors", "format "+format, nil, "Use --format yaml or --format json.")
			}
			app, err := loadAppContext(cmd, root, nil)
			if err != nil {
				return err
			}

			source := strings.TrimSpace(args[0])
			pair, err := theme.Derive(source)
			if err != nil {
				return newCommandError("derive colors", source, err, "Pass a CSS color such as #6750a4, rgb(103, 80, 164) or teal.")
			}
			app.log.WithFields(map[string]any{"source_color": source}).Debug("scheme derived")

			return writeStructured(cmd.OutOrStdout(), format, derivedColors{
				Source: source,
				Light:  pair.Light.Colors,
				Dark:   pair.Dark.Colors,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", config.DefaultFormat, "Output format (yaml, json)")
	return cmd
}

func newThemeListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the built-in themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := theme.DefaultRegistry()

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tVERSION\tDARK\tPRIMARY\tBACKGROUND")
			for _, name := range registry.Names() {
				t, _ := registry.Lookup(name)
				fmt.Fprintf(w, "%s\t%d\t%t\t%s\t%s\n", name, t.Version, t.Dark, t.Colors.Primary, t.Colors.Background)
			}
			return w.Flush()
		},
	}
}

func newThemePreviewCmd(root *rootFlags) *cobra.Command {
	flags := &themeFlags{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render components with the resolved theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(cmd, root, themeBindings)
			if err != nil {
				return err
			}
			opts, err := app.cfg.Theme.ResolveOptions()
			if err != nil {
				return newCommandError("read theme override", app.cfg.Theme.Override, err, "Check that the override file exists and is valid YAML.")
			}

			interactive := flags.interactive
			if !cmd.Flags().Changed("interactive") {
				interactive = isInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
			}

			if interactive {
				app.log.Debug("starting interactive preview")
				model := preview.NewModel(preview.Options{
					Version:     opts.Version,
					Dark:        opts.Dark,
					SourceColor: opts.SourceColor,
					Override:    opts.Override,
				})
				if err := runPreviewProgram(model); err != nil {
					return newCommandError("run preview", "interactive terminal", err, "Retry with --interactive=false to print a static preview.")
				}
				return nil
			}

			t, err := resolveTheme(app)
			if err != nil {
				return err
			}
			width, _ := terminalWidth(cmd.OutOrStdout())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), preview.Render(t, width))
			return err
		},
	}

	addThemeSelectionFlags(cmd, flags)
	cmd.Flags().BoolVar(&flags.interactive, "interactive", false, "Start the interactive previewer (default: when attached to a terminal)")
	return cmd
}
