// Package importrewrite turns barrel imports of a library entry module into
// per-component deep imports.
//
// The core is Rewriter.Rewrite, a pure function from one import declaration
// to its replacements. ScanImports and RewriteSource adapt it to JavaScript
// and TypeScript source text.
package importrewrite

import (
	"strings"

	"github.com/tdewolff/parse/v2/js"
)

// Specifier is one named binding of an import declaration.
type Specifier struct {
	Imported string
	Local    string
}

// LocalName returns the binding name, defaulting to the imported name.
func (s Specifier) LocalName() string {
	if s.Local == "" {
		return s.Imported
	}
	return s.Local
}

func (s Specifier) String() string {
	return s.format('\'')
}

func (s Specifier) format(quote byte) string {
	imported := nameText(s.Imported, quote)
	if local := s.LocalName(); local != s.Imported {
		return imported + " as " + nameText(local, quote)
	}
	return imported
}

// nameText writes a module export name bare when it is an IdentifierName and
// as a string literal otherwise ("b-c", "not an identifier").
func nameText(name string, quote byte) string {
	if isIdentifierName(name) {
		return name
	}
	if strings.IndexByte(name, quote) >= 0 {
		quote = otherQuote(quote)
	}
	return string(quote) + name + string(quote)
}

func isIdentifierName(name string) bool {
	tokens, err := lex([]byte(name))
	return err == nil && len(tokens) == 1 && js.IsIdentifierName(tokens[0].tt) && string(tokens[0].text) == name
}

func otherQuote(quote byte) byte {
	if quote == '"' {
		return '\''
	}
	return '"'
}

// Declaration is a static import declaration.
type Declaration struct {
	Source     string
	Default    string
	Namespace  string
	Specifiers []Specifier
	TypeOnly   bool
}

// IsSideEffect reports whether the declaration binds nothing.
func (d Declaration) IsSideEffect() bool {
	return d.Default == "" && d.Namespace == "" && len(d.Specifiers) == 0
}

// Format renders the declaration with the given quote character.
func (d Declaration) Format(quote byte) string {
	var b strings.Builder
	b.WriteString("import ")
	if d.TypeOnly {
		b.WriteString("type ")
	}

	var clauses []string
	if d.Default != "" {
		clauses = append(clauses, d.Default)
	}
	if d.Namespace != "" {
		clauses = append(clauses, "* as "+d.Namespace)
	}
	if len(d.Specifiers) > 0 {
		names := make([]string, len(d.Specifiers))
		for i, spec := range d.Specifiers {
			names[i] = spec.format(quote)
		}
		clauses = append(clauses, "{ "+strings.Join(names, ", ")+" }")
	}
	if len(clauses) > 0 {
		b.WriteString(strings.Join(clauses, ", "))
		b.WriteString(" from ")
	}

	b.WriteByte(quote)
	b.WriteString(d.Source)
	b.WriteByte(quote)
	b.WriteByte(';')
	return b.String()
}

func (d Declaration) String() string {
	return d.Format('\'')
}

// Rewriter rewrites imports of Module using Table.
type Rewriter struct {
	Module string
	Table  Table
}

// Rewrite replaces decl with one declaration per mapped symbol and a single
// residual declaration on Module holding every unmapped symbol. The residual
// sits at the position of the first unmapped symbol, or first when decl has
// a default binding, which always stays on Module.
//
// ok is false, and decl should be kept as is, when decl does not import
// Module, is type-only, is a namespace or side-effect import, or maps
// nothing.
func (r Rewriter) Rewrite(decl Declaration) ([]Declaration, bool) {
	if decl.Source != r.Module || decl.TypeOnly || decl.Namespace != "" || len(decl.Specifiers) == 0 {
		return nil, false
	}

	var (
		out      []Declaration
		residual = -1
		mapped   int
	)
	if decl.Default != "" {
		residual = 0
		out = append(out, Declaration{Source: r.Module, Default: decl.Default})
	}

	for _, spec := range decl.Specifiers {
		if mapping, ok := r.Table[spec.Imported]; ok {
			out = append(out, mapping.declaration(r.Module, spec.LocalName()))
			mapped++
			continue
		}
		if residual < 0 {
			residual = len(out)
			out = append(out, Declaration{Source: r.Module})
		}
		out[residual].Specifiers = append(out[residual].Specifiers, Specifier{Imported: spec.Imported, Local: spec.LocalName()})
	}

	if mapped == 0 {
		return nil, false
	}
	return out, true
}
