package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paperkit/internal/ui/components"
	"github.com/alexisbeaulieu97/paperkit/pkg/styletree"
)

type stylesFlags struct {
	themeFlags
	component string
	print     bool
}

func newStylesCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "styles",
		Short: "Inspect component style tables",
	}
	cmd.AddCommand(newStylesInspectCmd(root))
	return cmd
}

func newStylesInspectCmd(root *rootFlags) *cobra.Command {
	flags := &stylesFlags{}

	cmd := &cobra.Command{
		Use:   "inspect [file.yaml]",
		Short: "Report the leaf keys and nesting depth of a style table",
		Long: `Inspect reads a style table from a YAML file, or builds the table of a
built-in component for the resolved theme. Every built-in table is inspected
when neither is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				path := args[0]
				data, err := os.ReadFile(path)
				if err != nil {
					return newCommandError("read style table", path, err, "Check that the file exists.")
				}
				tree, err := styletree.FromYAML(path, data)
				if err != nil {
					return newCommandError("parse style table", path, err, "Style tables are YAML mappings of strings.")
				}
				return reportTree(out, path, tree, flags.print)
			}

			app, err := loadAppContext(cmd, root, themeBindings)
			if err != nil {
				return err
			}
			t, err := resolveTheme(app)
			if err != nil {
				return err
			}

			names := components.StyleTableNames()
			if flags.component != "" {
				names = []string{flags.component}
			}
			for i, name := range names {
				tree, ok := components.StyleTable(name, t)
				if !ok {
					return newCommandError("inspect styles", "component "+name, nil,
						"Use one of "+strings.Join(components.StyleTableNames(), ", ")+".")
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := reportTree(out, name, tree, flags.print); err != nil {
					return err
				}
			}
			return nil
		},
	}

	addThemeSelectionFlags(cmd, &flags.themeFlags)
	cmd.Flags().StringVar(&flags.component, "component", "", "Built-in component table ("+strings.Join(components.StyleTableNames(), ", ")+")")
	cmd.Flags().BoolVar(&flags.print, "print", false, "Also print the table as YAML")
	return cmd
}

func reportTree(w io.Writer, name string, tree *styletree.Tree, print bool) error {
	fmt.Fprintf(w, "%s\n", name)
	fmt.Fprintf(w, "  levels: %d\n", styletree.MaxNestedLevel(tree))
	fmt.Fprintf(w, "  keys:   %s\n", strings.Join(styletree.UniqueNestedKeys(tree), ", "))
	if !print {
		return nil
	}
	return writeYAML(w, tree)
}
