package importrewrite

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/tdewolff/parse/v2/js"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

const (
	// ExportDefault marks a mapping to the module's default export.
	ExportDefault = "default"
	// ExportNamespace marks a mapping to the whole module object.
	ExportNamespace = "*"
)

// Mapping locates the deep import for one public symbol.
type Mapping struct {
	// Path is relative to the entry module, e.g. "lib/module/components/Button/Button".
	Path string `json:"path"`
	// Name is the export to bind: ExportDefault, ExportNamespace or a named export.
	Name string `json:"name"`
}

func (m Mapping) declaration(module, local string) Declaration {
	decl := Declaration{Source: module + "/" + m.Path}
	switch m.Name {
	case "", ExportDefault:
		decl.Default = local
	case ExportNamespace:
		decl.Namespace = local
	default:
		decl.Specifiers = []Specifier{{Imported: m.Name, Local: local}}
	}
	return decl
}

// Table maps public symbol names to their deep imports.
type Table map[string]Mapping

// LoadTable decodes a JSON mapping table. name is used for error reporting.
func LoadTable(name string, r io.Reader) (Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, paperrors.NewParseError(name, 0, err)
	}

	var table Table
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, paperrors.NewParseError(name, jsonErrorLine(data, err), err)
	}
	for symbol, mapping := range table {
		if strings.TrimSpace(mapping.Path) == "" {
			return nil, paperrors.NewValidationError(symbol, "mapping path cannot be empty", nil)
		}
	}
	return table, nil
}

// Encode writes the table as indented JSON with sorted keys.
func (t Table) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(t)
}

func jsonErrorLine(data []byte, err error) int {
	var offset int64
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &syntaxErr):
		offset = syntaxErr.Offset
	case errors.As(err, &typeErr):
		offset = typeErr.Offset
	default:
		return 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	return bytes.Count(data[:offset], []byte("\n")) + 1
}

// GenerateTable builds a mapping table from the re-exports of an entry
// module:
//
//	export { default as Button } from './components/Button/Button';
//	export { MD3Colors } from './styles/themes/v3/tokens';
//	export * as Colors from './styles/colors';
//
// Bindings imported from a relative path and exported without a source are
// followed back to their import:
//
//	import * as MD2Colors from './styles/themes/v2/colors';
//	export { MD2Colors };
//
// Relative paths are joined to prefix with their extension removed. Type
// exports, bare "export * from" statements and local declarations are
// skipped. When lexing fails midway the symbols found so far are returned
// with the error.
func GenerateTable(indexSrc []byte, prefix string) (Table, error) {
	tokens, lexErr := lex(indexSrc)
	imported := importBindings(tokens)
	table := make(Table)

	for i := 0; i < len(tokens); i++ {
		if tokens[i].tt != js.ExportToken || followsDot(tokens, i) {
			continue
		}
		exports, next, ok := parseReExport(tokens, i+1)
		if !ok {
			continue
		}
		for _, exp := range exports {
			if exp.source == "" {
				binding, ok := imported[exp.export]
				if !ok {
					continue
				}
				exp.export, exp.source = binding.export, binding.source
			}
			table[exp.name] = Mapping{Path: modulePath(prefix, exp.source), Name: exp.export}
		}
		i = next - 1
	}

	if lexErr != nil {
		return table, fmt.Errorf("lex entry module: %w", lexErr)
	}
	return table, nil
}

type importBinding struct {
	export string
	source string
}

// importBindings maps the local names bound by relative, value imports to
// the export they refer to.
func importBindings(tokens []token) map[string]importBinding {
	bindings := make(map[string]importBinding)
	for i := 0; i < len(tokens); i++ {
		if tokens[i].tt != js.ImportToken || followsDot(tokens, i) {
			continue
		}
		stmt, next, ok := parseImport(tokens, i)
		if !ok {
			continue
		}
		i = next - 1

		decl := stmt.Declaration
		if decl.TypeOnly || !strings.HasPrefix(decl.Source, ".") {
			continue
		}
		if decl.Default != "" {
			bindings[decl.Default] = importBinding{export: ExportDefault, source: decl.Source}
		}
		if decl.Namespace != "" {
			bindings[decl.Namespace] = importBinding{export: ExportNamespace, source: decl.Source}
		}
		for _, spec := range decl.Specifiers {
			bindings[spec.LocalName()] = importBinding{export: spec.Imported, source: decl.Source}
		}
	}
	return bindings
}

type reExport struct {
	name string
	// export is the export of source, or the local binding when source is
	// empty.
	export string
	source string
}

func parseReExport(tokens []token, i int) ([]reExport, int, bool) {
	p := &cursor{tokens: tokens, pos: i}

	switch {
	case p.isWord("type"):
		return nil, 0, false
	case p.is(js.MulToken):
		p.pos++
		if !p.is(js.AsToken) {
			return nil, 0, false
		}
		p.pos++
		name, ok := p.bindingName()
		if !ok {
			return nil, 0, false
		}
		source, ok := p.fromClause()
		if !ok {
			return nil, 0, false
		}
		return []reExport{{name: name, export: ExportNamespace, source: source}}, p.pos, true
	case p.is(js.OpenBraceToken):
		specs, ok := p.namedBindings()
		if !ok {
			return nil, 0, false
		}
		// Without a from clause the names are local bindings.
		source := ""
		if p.is(js.FromToken) {
			if source, ok = p.fromClause(); !ok {
				return nil, 0, false
			}
		}
		out := make([]reExport, 0, len(specs))
		for _, spec := range specs {
			out = append(out, reExport{name: spec.LocalName(), export: spec.Imported, source: source})
		}
		return out, p.pos, true
	default:
		return nil, 0, false
	}
}

var sourceExtensions = []string{".tsx", ".ts", ".jsx", ".js", ".mjs", ".cjs"}

func modulePath(prefix, source string) string {
	for _, ext := range sourceExtensions {
		if trimmed, ok := strings.CutSuffix(source, ext); ok {
			source = trimmed
			break
		}
	}
	return path.Join(prefix, source)
}
