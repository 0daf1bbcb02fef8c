package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	originalVersion := version
	originalCommit := commit
	originalDate := date
	t.Cleanup(func() {
		version = originalVersion
		commit = originalCommit
		date = originalDate
	})

	version = "1.2.3"
	commit = "abcdef1"
	date = "2026-10-03"

	out, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Equal(t, "paperkit 1.2.3\ncommit: abcdef1\nbuilt: 2026-10-03\n", out)
}
