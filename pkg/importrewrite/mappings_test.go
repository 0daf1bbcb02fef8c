package importrewrite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paperrors "github.com/alexisbeaulieu97/paperkit/pkg/errors"
)

const indexSource = `import * as Colors from './styles/colors';

export { Colors };
export { default as Provider } from './core/Provider';
export { default as Button } from './components/Button/Button.tsx';
export { MD3Colors, MD3Colors as Palette } from './styles/themes/v3/tokens';
export * as MD2Colors from './styles/themes/v2/colors';
export * from './types';
export type { ThemeProp } from './types';
export default Provider;
`

func TestGenerateTable(t *testing.T) {
	t.Parallel()

	table, err := GenerateTable([]byte(indexSource), "lib/module")
	require.NoError(t, err)

	assert.Equal(t, Table{
		"Provider":  {Path: "lib/module/core/Provider", Name: ExportDefault},
		"Button":    {Path: "lib/module/components/Button/Button", Name: ExportDefault},
		"MD3Colors": {Path: "lib/module/styles/themes/v3/tokens", Name: "MD3Colors"},
		"Palette":   {Path: "lib/module/styles/themes/v3/tokens", Name: "MD3Colors"},
		"MD2Colors": {Path: "lib/module/styles/themes/v2/colors", Name: ExportNamespace},
		"Colors":    {Path: "lib/module/styles/colors", Name: ExportNamespace},
	}, table)
}

func TestGenerateTableFollowsImportedBindings(t *testing.T) {
	t.Parallel()

	src := `export { Early };
import Early from './early';
import * as MD2Colors from './styles/themes/v2/colors';
import { MD3Colors } from './styles/themes/v3/tokens';
import Provider, { ThemeProvider as Themed } from './core/Provider';
import type { ThemeProp } from './types';
import { useState } from 'react';

const local = 1;

export { MD2Colors, MD3Colors as Tokens, Provider, Themed, ThemeProp, useState, local };
export { default as Button } from './components/Button/Button';
`

	table, err := GenerateTable([]byte(src), "lib/module")
	require.NoError(t, err)

	assert.Equal(t, Table{
		"Early":     {Path: "lib/module/early", Name: ExportDefault},
		"MD2Colors": {Path: "lib/module/styles/themes/v2/colors", Name: ExportNamespace},
		"Tokens":    {Path: "lib/module/styles/themes/v3/tokens", Name: "MD3Colors"},
		"Provider":  {Path: "lib/module/core/Provider", Name: ExportDefault},
		"Themed":    {Path: "lib/module/core/Provider", Name: "ThemeProvider"},
		"Button":    {Path: "lib/module/components/Button/Button", Name: ExportDefault},
	}, table)

	out, _, err := RewriteSource([]byte("import { MD2Colors, Themed } from 'react-native-paper';\n"), Rewriter{Module: paper, Table: table})
	require.NoError(t, err)
	assert.Equal(t,
		"import * as MD2Colors from 'react-native-paper/lib/module/styles/themes/v2/colors';\n"+
			"import { ThemeProvider as Themed } from 'react-native-paper/lib/module/core/Provider';\n",
		string(out))
}

func TestGenerateTableWithoutPrefix(t *testing.T) {
	t.Parallel()

	table, err := GenerateTable([]byte(`export { default as FAB } from "./components/FAB";`), "")
	require.NoError(t, err)
	assert.Equal(t, Table{"FAB": {Path: "components/FAB", Name: ExportDefault}}, table)
}

func TestGeneratedTableDrivesRewrite(t *testing.T) {
	t.Parallel()

	table, err := GenerateTable([]byte(indexSource), "lib/module")
	require.NoError(t, err)

	r := Rewriter{Module: paper, Table: table}
	out, _, err := RewriteSource([]byte("import { Button, MD2Colors, Palette } from 'react-native-paper';\n"), r)
	require.NoError(t, err)
	assert.Equal(t,
		"import Button from 'react-native-paper/lib/module/components/Button/Button';\n"+
			"import * as MD2Colors from 'react-native-paper/lib/module/styles/themes/v2/colors';\n"+
			"import { MD3Colors as Palette } from 'react-native-paper/lib/module/styles/themes/v3/tokens';\n",
		string(out))
}

func TestTableEncodeAndLoad(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, paperTable().Encode(&buf))
	assert.Contains(t, buf.String(), `"Appbar": {`)
	assert.Contains(t, buf.String(), `"path": "components/Appbar"`)

	loaded, err := LoadTable("mappings.json", &buf)
	require.NoError(t, err)
	assert.Equal(t, paperTable(), loaded)
}

func TestLoadTableErrors(t *testing.T) {
	t.Parallel()

	_, err := LoadTable("broken.json", strings.NewReader("{\n  \"Button\": {\"path\": \"x\",,}\n}"))
	var parseErr *paperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "broken.json", parseErr.Path)
	assert.Equal(t, 2, parseErr.Line)

	_, err = LoadTable("empty-path.json", strings.NewReader(`{"Button": {"path": " ", "name": "default"}}`))
	var validationErr *paperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Button", validationErr.Field)
}
