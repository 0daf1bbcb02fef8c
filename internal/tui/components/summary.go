// Package components renders the terminal reports of the import rewriter.
package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/paperkit/pkg/importrewrite"
)

// FileResult is the outcome of rewriting one file.
type FileResult struct {
	Path  string
	Stats importrewrite.Stats
}

// Summary renders a per-file rewrite report followed by totals.
type Summary struct {
	files []FileResult
}

// NewSummary creates a summary over files in the order given.
func NewSummary(files []FileResult) Summary {
	clone := make([]FileResult, len(files))
	copy(clone, files)
	return Summary{files: clone}
}

// Totals sums the statistics of every file.
func (s Summary) Totals() (changed int, total importrewrite.Stats) {
	for _, f := range s.files {
		if f.Stats.Changed() {
			changed++
		}
		total.Imports += f.Stats.Imports
		total.Rewritten += f.Stats.Rewritten
		total.Mapped += f.Stats.Mapped
		total.Residual += f.Stats.Residual
		total.Truncated = total.Truncated || f.Stats.Truncated
	}
	return changed, total
}

// View renders the summary.
func (s Summary) View() string {
	if len(s.files) == 0 {
		return ""
	}

	lines := make([]string, 0, len(s.files)+3)
	for _, f := range s.files {
		lines = append(lines, fileLine(f))
	}

	changed, total := s.Totals()
	lines = append(lines, fmt.Sprintf("Files: %d/%d rewritten", changed, len(s.files)))
	if symbols := total.Mapped + total.Residual; symbols > 0 {
		lines = append(lines, NewProgress("Mapped symbols:", symbols).View(total.Mapped))
	}
	if total.Truncated {
		lines = append(lines, "Some files could not be fully tokenized; imports after the error were left untouched")
	}
	return strings.Join(lines, "\n")
}

func fileLine(f FileResult) string {
	status := "·"
	detail := "unchanged"
	if f.Stats.Changed() {
		status = "✓"
		detail = fmt.Sprintf("%d rewritten, %d mapped, %d residual", f.Stats.Rewritten, f.Stats.Mapped, f.Stats.Residual)
	}
	if f.Stats.Truncated {
		status = "!"
		detail += ", truncated"
	}
	return fmt.Sprintf("  %s %s: %s", status, f.Path, detail)
}
