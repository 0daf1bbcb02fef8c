package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/paperkit/internal/config"
	report "github.com/alexisbeaulieu97/paperkit/internal/tui/components"
	"github.com/alexisbeaulieu97/paperkit/pkg/diff"
	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
	"github.com/alexisbeaulieu97/paperkit/pkg/importrewrite"
)

type rewriteFlags struct {
	write    bool
	diff     bool
	mappings string
	module   string
}

func newImportsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "imports",
		Short: "Rewrite barrel imports into per-component imports",
	}

	cmd.AddCommand(newImportsRewriteCmd(root))
	cmd.AddCommand(newImportsMappingsCmd(root))
	return cmd
}

func newImportsRewriteCmd(root *rootFlags) *cobra.Command {
	flags := &rewriteFlags{}

	cmd := &cobra.Command{
		Use:   "rewrite <file>...",
		Short: "Rewrite imports of the entry module in JavaScript or TypeScript files",
		Long: `Rewrite replaces imports of the entry module with deep imports taken from a
mapping table. Without --write or --diff the rewritten source of a single
file is printed to stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 && !flags.write && !flags.diff {
				return newCommandError("rewrite imports", fmt.Sprintf("%d files", len(args)), nil, "Pass --write or --diff when rewriting more than one file.")
			}

			app, err := loadAppContext(cmd, root, map[string]string{
				config.KeyImportsModule:   "module",
				config.KeyImportsMappings: "mappings",
			})
			if err != nil {
				return err
			}

			table, err := loadMappingTable(app.cfg.Imports.Mappings)
			if err != nil {
				return err
			}
			rewriter := importrewrite.Rewriter{Module: app.cfg.Imports.Module, Table: table}

			out := cmd.OutOrStdout()
			results := make([]report.FileResult, 0, len(args))
			for _, path := range args {
				log := app.log.WithFields(map[string]any{"file": path})

				before, err := os.ReadFile(path)
				if err != nil {
					return newCommandError("read source", path, paperrors.NewRewriteError(path, err), "Check that the file exists and is readable.")
				}
				after, stats, err := importrewrite.RewriteSource(before, rewriter)
				if err != nil {
					return newCommandError("rewrite imports", path, paperrors.NewRewriteError(path, err), "Check the --module value.")
				}
				if stats.Truncated {
					log.Warn("source could not be fully tokenized; later imports were left untouched")
				}
				log.WithFields(map[string]any{
					"imports":   stats.Imports,
					"rewritten": stats.Rewritten,
					"mapped":    stats.Mapped,
					"residual":  stats.Residual,
				}).Debug("imports scanned")

				results = append(results, report.FileResult{Path: path, Stats: stats})

				switch {
				case flags.diff:
					if stats.Changed() {
						fmt.Fprint(out, diff.Unified(before, after, "a/"+path, "b/"+path))
					}
				case !flags.write:
					if _, err := out.Write(after); err != nil {
						return err
					}
				}

				if flags.write && stats.Changed() {
					if err := writeFilePreservingMode(path, after); err != nil {
						return newCommandError("write source", path, paperrors.NewRewriteError(path, err), "Check file permissions.")
					}
					log.Info("imports rewritten")
				}
			}

			if flags.write {
				fmt.Fprintln(out, report.NewSummary(results).View())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&flags.write, "write", false, "Rewrite files in place")
	cmd.Flags().BoolVar(&flags.diff, "diff", false, "Print a unified diff instead of the rewritten source")
	cmd.Flags().StringVar(&flags.mappings, "mappings", "", "Mapping table JSON produced by 'paperkit imports mappings'")
	cmd.Flags().StringVar(&flags.module, "module", config.DefaultModule, "Entry module whose imports are rewritten")
	return cmd
}

func loadMappingTable(path string) (importrewrite.Table, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, newCommandError("load mappings", "no mapping table configured", nil, "Generate one with 'paperkit imports mappings <index.js> --output mappings.json' and pass --mappings.")
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, newCommandError("load mappings", path, paperrors.NewParseError(path, 0, err), "Check the --mappings path.")
	}
	defer file.Close()

	table, err := importrewrite.LoadTable(path, file)
	if err != nil {
		return nil, newCommandError("load mappings", path, err, "Regenerate the table with 'paperkit imports mappings'.")
	}
	return table, nil
}

func writeFilePreservingMode(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}

func newImportsMappingsCmd(root *rootFlags) *cobra.Command {
	var prefix, output string

	cmd := &cobra.Command{
		Use:   "mappings <index.js>",
		Short: "Generate a mapping table from the re-exports of a package entry file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadAppContext(cmd, root, map[string]string{config.KeyImportsPrefix: "prefix"})
			if err != nil {
				return err
			}

			index := args[0]
			src, err := os.ReadFile(index)
			if err != nil {
				return newCommandError("read entry file", index, paperrors.NewParseError(index, 0, err), "Point at the package's index.js.")
			}
			table, err := importrewrite.GenerateTable(src, app.cfg.Imports.Prefix)
			if err != nil {
				return newCommandError("generate mappings", index, err, "Check that the file only uses ES module re-exports.")
			}
			app.log.WithFields(map[string]any{"entry": index, "symbols": len(table)}).Debug("mappings generated")

			var buf bytes.Buffer
			if err := table.Encode(&buf); err != nil {
				return err
			}
			if output == "" {
				_, err = io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return newCommandError("write mappings", output, err, "Check that the directory exists and is writable.")
			}
			app.log.WithFields(map[string]any{"output": output}).Info("mapping table written")
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", config.DefaultModulePrefix, "Directory prefix joined to each re-export source")
	cmd.Flags().StringVar(&output, "output", "", "Write the table to a file instead of stdout")
	return cmd
}
