package importrewrite

import (
	"bytes"
	"io"
	"regexp"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

type token struct {
	tt         js.TokenType
	text       []byte
	start, end int
}

// lex returns the significant tokens of src with their byte spans. On a
// lexer error it returns the tokens read so far along with the error.
func lex(src []byte) ([]token, error) {
	buf := make([]byte, len(src), len(src)+1)
	copy(buf, src)

	input := parse.NewInputBytes(buf)
	lexer := js.NewLexer(input)

	var (
		tokens []token
		prev   js.TokenType
		seen   bool
	)
	for {
		tt, text := lexer.Next()
		if tt == js.ErrorToken {
			if err := lexer.Err(); err != nil && err != io.EOF {
				return tokens, err
			}
			return tokens, nil
		}
		if (tt == js.DivToken || tt == js.DivEqToken) && regexpAllowed(prev, seen) {
			if tt, text = lexer.RegExp(); tt == js.ErrorToken {
				return tokens, lexer.Err()
			}
		}

		switch tt {
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		}

		end := input.Offset()
		tokens = append(tokens, token{tt: tt, text: text, start: end - len(text), end: end})
		prev, seen = tt, true
	}
}

// regexpAllowed reports whether a slash after prev starts a regular
// expression rather than a division.
func regexpAllowed(prev js.TokenType, seen bool) bool {
	if !seen {
		return true
	}
	switch prev {
	case js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken,
		js.StringToken, js.TemplateToken, js.TemplateEndToken, js.RegExpToken,
		js.PrivateIdentifierToken, js.ThisToken, js.SuperToken,
		js.TrueToken, js.FalseToken, js.NullToken, js.IncrToken, js.DecrToken:
		return false
	}
	return !js.IsIdentifier(prev) && !js.IsNumeric(prev)
}

func followsDot(tokens []token, i int) bool {
	return i > 0 && (tokens[i-1].tt == js.DotToken || tokens[i-1].tt == js.OptChainToken)
}

type cursor struct {
	tokens []token
	pos    int
}

func (c *cursor) peek() (token, bool) {
	if c.pos >= len(c.tokens) {
		return token{}, false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) is(tt js.TokenType) bool {
	tok, ok := c.peek()
	return ok && tok.tt == tt
}

func (c *cursor) isWord(word string) bool {
	tok, ok := c.peek()
	return ok && js.IsIdentifierName(tok.tt) && string(tok.text) == word
}

// bindingName consumes an identifier usable as a local binding.
func (c *cursor) bindingName() (string, bool) {
	tok, ok := c.peek()
	if !ok || !js.IsIdentifier(tok.tt) {
		return "", false
	}
	c.pos++
	return string(tok.text), true
}

// exportName consumes an identifier name, reserved words included, or a
// string literal name.
func (c *cursor) exportName() (string, bool) {
	tok, ok := c.peek()
	if !ok {
		return "", false
	}
	switch {
	case js.IsIdentifierName(tok.tt):
		c.pos++
		return string(tok.text), true
	case tok.tt == js.StringToken:
		c.pos++
		return unquote(tok.text), true
	default:
		return "", false
	}
}

// namedBindings consumes "{ a, b as c, }". A specifier carrying its own
// type modifier fails the whole clause.
func (c *cursor) namedBindings() ([]Specifier, bool) {
	if !c.is(js.OpenBraceToken) {
		return nil, false
	}
	c.pos++

	specs := []Specifier{}
	for !c.is(js.CloseBraceToken) {
		if c.isWord("type") && c.pos+1 < len(c.tokens) {
			next := c.tokens[c.pos+1]
			if js.IsIdentifierName(next.tt) && next.tt != js.AsToken {
				return nil, false
			}
		}

		imported, ok := c.exportName()
		if !ok {
			return nil, false
		}
		spec := Specifier{Imported: imported, Local: imported}
		if c.is(js.AsToken) {
			c.pos++
			if spec.Local, ok = c.exportName(); !ok {
				return nil, false
			}
		}
		specs = append(specs, spec)

		if c.is(js.CommaToken) {
			c.pos++
			continue
		}
		if !c.is(js.CloseBraceToken) {
			return nil, false
		}
	}
	c.pos++
	return specs, true
}

// fromClause consumes "from 'source'".
func (c *cursor) fromClause() (string, bool) {
	if !c.is(js.FromToken) {
		return "", false
	}
	c.pos++
	tok, ok := c.peek()
	if !ok || tok.tt != js.StringToken {
		return "", false
	}
	c.pos++
	return unquote(tok.text), true
}

func unquote(text []byte) string {
	if len(text) >= 2 {
		return string(text[1 : len(text)-1])
	}
	return string(text)
}

// ImportStatement is a static import found in source text.
type ImportStatement struct {
	// Start and End delimit the statement, trailing semicolon included.
	Start, End  int
	Declaration Declaration
	// Quote is the quote character of the module specifier.
	Quote byte
	// Attributes is set when the statement carries import attributes
	// (with/assert); such statements are never rewritten.
	Attributes bool
}

// ScanImports returns every static import statement of a JavaScript or
// TypeScript source. Dynamic import() and import.meta are ignored. When the
// lexer fails, the statements found before the failure are returned along
// with the error.
func ScanImports(src []byte) ([]ImportStatement, error) {
	statements, _, err := scanImports(src)
	return statements, err
}

// scanImports also returns the offset lexing reached, len(src) on success.
func scanImports(src []byte) ([]ImportStatement, int, error) {
	tokens, lexErr := lex(src)
	reached := len(src)
	if lexErr != nil {
		reached = 0
		if len(tokens) > 0 {
			reached = tokens[len(tokens)-1].end
		}
	}

	var statements []ImportStatement
	for i := 0; i < len(tokens); i++ {
		if tokens[i].tt != js.ImportToken || followsDot(tokens, i) {
			continue
		}
		stmt, next, ok := parseImport(tokens, i)
		if !ok {
			continue
		}
		statements = append(statements, stmt)
		i = next - 1
	}
	return statements, reached, lexErr
}

// staticImportLine matches a line that starts a static import statement, as
// opposed to import() calls, import.meta or prose.
var staticImportLine = regexp.MustCompile(`(?m)^[ \t]*import(?:[ \t]*[{*'"]|[ \t]+[\p{L}_$][^\n]*\bfrom[ \t]*['"])`)

// hidesImports reports whether text the lexer could not reach may still hold
// static imports. JSX bodies routinely stop the lexer after the import block.
func hidesImports(rest []byte) bool {
	return staticImportLine.Match(rest)
}

func parseImport(tokens []token, i int) (ImportStatement, int, bool) {
	c := &cursor{tokens: tokens, pos: i + 1}
	stmt := ImportStatement{Start: tokens[i].start}
	decl := &stmt.Declaration

	if c.is(js.OpenParenToken) || c.is(js.DotToken) {
		return ImportStatement{}, 0, false
	}

	if tok, ok := c.peek(); ok && tok.tt == js.StringToken {
		c.pos++
		decl.Source = unquote(tok.text)
		stmt.Quote = tok.text[0]
		return finishImport(c, stmt)
	}

	if c.isWord("type") && c.pos+1 < len(tokens) {
		next := tokens[c.pos+1].tt
		if next != js.FromToken && next != js.CommaToken {
			decl.TypeOnly = true
			c.pos++
		}
	}

	if !c.is(js.OpenBraceToken) && !c.is(js.MulToken) {
		name, ok := c.bindingName()
		if !ok {
			return ImportStatement{}, 0, false
		}
		decl.Default = name
		if c.is(js.CommaToken) {
			c.pos++
		} else if !c.is(js.FromToken) {
			return ImportStatement{}, 0, false
		}
	}

	switch {
	case c.is(js.MulToken):
		c.pos++
		if !c.is(js.AsToken) {
			return ImportStatement{}, 0, false
		}
		c.pos++
		name, ok := c.bindingName()
		if !ok {
			return ImportStatement{}, 0, false
		}
		decl.Namespace = name
	case c.is(js.OpenBraceToken):
		specs, ok := c.namedBindings()
		if !ok {
			return ImportStatement{}, 0, false
		}
		decl.Specifiers = specs
	}

	if !c.is(js.FromToken) {
		return ImportStatement{}, 0, false
	}
	sourceTok := c.tokens[min(c.pos+1, len(c.tokens)-1)]
	source, ok := c.fromClause()
	if !ok {
		return ImportStatement{}, 0, false
	}
	decl.Source = source
	stmt.Quote = sourceTok.text[0]
	return finishImport(c, stmt)
}

// finishImport consumes optional import attributes and the semicolon.
func finishImport(c *cursor, stmt ImportStatement) (ImportStatement, int, bool) {
	stmt.End = c.tokens[c.pos-1].end

	if (c.isWord("with") || c.isWord("assert")) && c.pos+1 < len(c.tokens) && c.tokens[c.pos+1].tt == js.OpenBraceToken {
		depth := 0
		for c.pos++; c.pos < len(c.tokens); c.pos++ {
			switch c.tokens[c.pos].tt {
			case js.OpenBraceToken:
				depth++
			case js.CloseBraceToken:
				depth--
			}
			if depth == 0 {
				break
			}
		}
		if c.pos >= len(c.tokens) {
			return ImportStatement{}, 0, false
		}
		stmt.Attributes = true
		stmt.End = c.tokens[c.pos].end
		c.pos++
	}

	if c.is(js.SemicolonToken) {
		stmt.End = c.tokens[c.pos].end
		c.pos++
	}
	return stmt, c.pos, true
}

// Stats summarizes one RewriteSource call.
type Stats struct {
	// Imports counts static import statements of the entry module.
	Imports int
	// Rewritten counts statements that were replaced.
	Rewritten int
	// Mapped counts symbols moved to deep imports.
	Mapped int
	// Residual counts symbols left on the entry module.
	Residual int
	// Truncated is set when lexing stopped early with static imports still
	// ahead; those imports are left untouched.
	Truncated bool
}

// Changed reports whether any statement was rewritten.
func (s Stats) Changed() bool {
	return s.Rewritten > 0
}

// RewriteSource rewrites every import of r.Module in src. Replacement
// declarations are written one per line, keep the original quote style and
// repeat the indentation of the statement they replace.
func RewriteSource(src []byte, r Rewriter) ([]byte, Stats, error) {
	var stats Stats
	if strings.TrimSpace(r.Module) == "" {
		return nil, stats, paperrors.NewValidationError("module", "entry module cannot be empty", nil)
	}

	statements, reached, lexErr := scanImports(src)
	stats.Truncated = lexErr != nil && hidesImports(src[reached:])

	var out bytes.Buffer
	last := 0
	for _, stmt := range statements {
		if stmt.Declaration.Source != r.Module {
			continue
		}
		stats.Imports++
		if stmt.Attributes {
			continue
		}

		replacements, ok := r.Rewrite(stmt.Declaration)
		if !ok {
			continue
		}
		stats.Rewritten++
		for _, decl := range replacements {
			if decl.Source == r.Module {
				stats.Residual += len(decl.Specifiers)
			} else {
				stats.Mapped++
			}
		}

		indent := lineIndent(src, stmt.Start)
		out.Write(src[last:stmt.Start])
		for i, decl := range replacements {
			if i > 0 {
				out.WriteByte('\n')
				out.WriteString(indent)
			}
			out.WriteString(decl.Format(stmt.Quote))
		}
		last = stmt.End
	}

	if stats.Rewritten == 0 {
		return src, stats, nil
	}
	out.Write(src[last:])
	return out.Bytes(), stats, nil
}

func lineIndent(src []byte, offset int) string {
	lineStart := bytes.LastIndexByte(src[:offset], '\n') + 1
	prefix := src[lineStart:offset]
	if len(bytes.TrimLeft(prefix, " \t")) != 0 {
		return ""
	}
	return string(prefix)
}
