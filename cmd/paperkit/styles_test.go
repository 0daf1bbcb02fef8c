package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStylesInspectComponent(t *testing.T) {
	out, _, err := executeCommand(t, "styles", "inspect", "--component", "chip")
	require.NoError(t, err)
	require.Contains(t, out, "chip\n")
	require.Contains(t, out, "levels: 3")
	require.Contains(t, out, "keys:   backgroundColor, color, borderColor")
}

func TestStylesInspectAllComponents(t *testing.T) {
	out, _, err := executeCommand(t, "styles", "inspect", "--version", "2")
	require.NoError(t, err)
	for _, name := range []string{"button\n", "card\n", "chip\n", "surface\n"} {
		require.Contains(t, out, name)
	}
	require.Contains(t, out, "levels: 0")
}

func TestStylesInspectFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "styles.yaml", `container:
  padding: 8
  header:
    color: red
    fontSize: 14
footer:
  color: blue
  margin: 2
`)

	out, _, err := executeCommand(t, "styles", "inspect", path, "--print")
	require.NoError(t, err)
	require.Contains(t, out, "levels: 2")
	require.Contains(t, out, "keys:   color, fontSize, margin")
	require.Contains(t, out, "container:\n")
}

func TestStylesInspectErrors(t *testing.T) {
	_, _, err := executeCommand(t, "styles", "inspect", "--component", "slider")
	require.ErrorContains(t, err, "button, card, chip, surface")

	dir := t.TempDir()
	path := writeFile(t, dir, "broken.yaml", "a: [\n")
	_, _, err = executeCommand(t, "styles", "inspect", path)
	require.ErrorContains(t, err, "Failed to parse style table")
}
