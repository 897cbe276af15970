package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	refType = "book"
	refAuthors = nil
	refYear = ""
	refTitle = ""
	refEdition = ""
	refPlace = ""
	refPub = ""
	asMarkdown = false
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFormatCommand(t *testing.T) {
	resetFlags()
	out, err := execute(t, "format",
		"--author", "Smith, J.",
		"--year", "2020",
		"--title", "Example Title",
		"--place", "London",
		"--publisher", "Pearson",
	)
	require.NoError(t, err)
	assert.Equal(t, "Smith, J. (2020) Example Title. London: Pearson.\n", out)
}

func TestFormatCommand_Markdown(t *testing.T) {
	resetFlags()
	out, err := execute(t, "format",
		"--author", "Smith, J.",
		"--year", "2020",
		"--title", "Example Title",
		"--markdown",
	)
	require.NoError(t, err)
	assert.Equal(t, "Smith, J. (2020) *Example Title*.\n", out)
}

func TestFormatCommand_MissingRequired(t *testing.T) {
	resetFlags()
	_, err := execute(t, "format", "--title", "Example Title")
	assert.Error(t, err)
}

func TestFormatCommand_UnknownType(t *testing.T) {
	resetFlags()
	_, err := execute(t, "format",
		"--type", "mixtape",
		"--author", "Smith, J.",
		"--year", "2020",
		"--title", "Example Title",
	)
	assert.Error(t, err)
}

func TestTypesCommand(t *testing.T) {
	resetFlags()
	out, err := execute(t, "types")
	require.NoError(t, err)
	assert.Contains(t, out, "book")
	assert.Contains(t, out, "thesis")
	assert.Contains(t, out, "--journal")
}
