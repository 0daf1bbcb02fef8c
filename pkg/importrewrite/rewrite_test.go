package importrewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const paper = "react-native-paper"

func paperTable() Table {
	return Table{
		"Provider":         {Path: "core/Provider", Name: ExportDefault},
		"BottomNavigation": {Path: "components/BottomNavigation/BottomNavigation", Name: ExportDefault},
		"Button":           {Path: "components/Button/Button", Name: ExportDefault},
		"FAB":              {Path: "components/FAB", Name: ExportDefault},
		"Appbar":           {Path: "components/Appbar", Name: ExportDefault},
		"MD2Colors":        {Path: "styles/themes/v2/colors", Name: ExportNamespace},
		"MD3Colors":        {Path: "styles/themes/v3/tokens", Name: "MD3Colors"},
		"InternalTheme":    {Path: "types", Name: "InternalTheme"},
	}
}

func specs(pairs ...string) []Specifier {
	out := make([]Specifier, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, Specifier{Imported: pairs[i], Local: pairs[i+1]})
	}
	return out
}

func TestRewriteGroupsUnmappedSymbols(t *testing.T) {
	t.Parallel()

	r := Rewriter{Module: paper, Table: paperTable()}
	decl := Declaration{
		Source: paper,
		Specifiers: specs(
			"Provider", "PaperProvider",
			"BottomNavigation", "BottomNavigation",
			"Button", "Button",
			"FAB", "FAB",
			"Appbar", "Appbar",
			"MD2Colors", "MD2Colors",
			"MD3Colors", "MD3Colors",
			"NonExistent", "NonExistent",
			"NonExistentSecond", "Stuff",
			"ThemeProvider", "ThemeProvider",
			"withTheme", "withTheme",
			"InternalTheme", "InternalTheme",
		),
	}

	out, ok := r.Rewrite(decl)
	require.True(t, ok)

	var rendered []string
	for _, d := range out {
		rendered = append(rendered, d.String())
	}
	assert.Equal(t, []string{
		"import PaperProvider from 'react-native-paper/core/Provider';",
		"import BottomNavigation from 'react-native-paper/components/BottomNavigation/BottomNavigation';",
		"import Button from 'react-native-paper/components/Button/Button';",
		"import FAB from 'react-native-paper/components/FAB';",
		"import Appbar from 'react-native-paper/components/Appbar';",
		"import * as MD2Colors from 'react-native-paper/styles/themes/v2/colors';",
		"import { MD3Colors } from 'react-native-paper/styles/themes/v3/tokens';",
		"import { NonExistent, NonExistentSecond as Stuff, ThemeProvider, withTheme } from 'react-native-paper';",
		"import { InternalTheme } from 'react-native-paper/types';",
	}, rendered)

	residuals := 0
	for _, d := range out {
		if d.Source == paper {
			residuals++
		}
	}
	assert.Equal(t, 1, residuals)
}

func TestRewriteIsIdempotent(t *testing.T) {
	t.Parallel()

	r := Rewriter{Module: paper, Table: paperTable()}
	out, ok := r.Rewrite(Declaration{Source: paper, Specifiers: specs("Button", "Button", "Other", "Other")})
	require.True(t, ok)

	for _, d := range out {
		again, changed := r.Rewrite(d)
		assert.False(t, changed, d.String())
		assert.Nil(t, again)
	}
}

func TestRewriteLeavesOtherDeclarationsAlone(t *testing.T) {
	t.Parallel()

	r := Rewriter{Module: paper, Table: paperTable()}
	cases := map[string]Declaration{
		"other module":  {Source: "react-native", Specifiers: specs("Button", "Button")},
		"deep path":     {Source: paper + "/components/Button", Default: "Button"},
		"type only":     {Source: paper, TypeOnly: true, Specifiers: specs("Button", "Button")},
		"namespace":     {Source: paper, Namespace: "Paper"},
		"side effect":   {Source: paper},
		"nothing maps":  {Source: paper, Specifiers: specs("Unknown", "Unknown")},
		"default alone": {Source: paper, Default: "Paper"},
	}
	for name, decl := range cases {
		out, ok := r.Rewrite(decl)
		assert.False(t, ok, name)
		assert.Nil(t, out, name)
	}
}

func TestRewriteKeepsDefaultBindingOnResidual(t *testing.T) {
	t.Parallel()

	r := Rewriter{Module: paper, Table: paperTable()}
	out, ok := r.Rewrite(Declaration{Source: paper, Default: "Paper", Specifiers: specs("Button", "Btn", "useTheme", "useTheme")})
	require.True(t, ok)
	require.Len(t, out, 2)

	assert.Equal(t, "import Paper, { useTheme } from 'react-native-paper';", out[0].String())
	assert.Equal(t, "import Btn from 'react-native-paper/components/Button/Button';", out[1].String())
}

func TestRewriteDefaultsMissingLocalName(t *testing.T) {
	t.Parallel()

	r := Rewriter{Module: paper, Table: paperTable()}
	out, ok := r.Rewrite(Declaration{Source: paper, Specifiers: []Specifier{{Imported: "FAB"}, {Imported: "Portal"}}})
	require.True(t, ok)
	assert.Equal(t, "import FAB from 'react-native-paper/components/FAB';", out[0].String())
	assert.Equal(t, "import { Portal } from 'react-native-paper';", out[1].String())
}

func TestRewriteDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	r := Rewriter{Module: paper, Table: paperTable()}
	decl := Declaration{Source: paper, Specifiers: specs("Button", "Button", "Other", "Alias")}
	before := append([]Specifier(nil), decl.Specifiers...)

	_, ok := r.Rewrite(decl)
	require.True(t, ok)
	assert.Equal(t, before, decl.Specifiers)
}

func TestDeclarationFormat(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `import "./polyfill";`, Declaration{Source: "./polyfill"}.Format('"'))
	assert.Equal(t, "import type { Theme } from 'x';", Declaration{Source: "x", TypeOnly: true, Specifiers: specs("Theme", "Theme")}.String())
	assert.Equal(t, "import D, * as NS from 'x';", Declaration{Source: "x", Default: "D", Namespace: "NS"}.String())
	assert.True(t, Declaration{Source: "x"}.IsSideEffect())
}

func TestFormatQuotesStringNames(t *testing.T) {
	t.Parallel()

	decl := Declaration{Source: "m", Specifiers: specs("b-c", "bc", "default", "Thing", "it's", "its")}
	assert.Equal(t, `import { 'b-c' as bc, default as Thing, "it's" as its } from 'm';`, decl.Format('\''))
	assert.Equal(t, `import { "b-c" as bc, default as Thing, "it's" as its } from "m";`, decl.Format('"'))

	mapped := Mapping{Path: "lib/icons", Name: "arrow-left"}.declaration(paper, "ArrowLeft")
	assert.Equal(t, "import { 'arrow-left' as ArrowLeft } from 'react-native-paper/lib/icons';", mapped.String())
}
