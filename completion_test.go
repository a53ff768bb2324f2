package ecp

import (
	"bytes"
	"errors"
	"testing"

	"github.com/napalu/ecp/completion"
	"github.com/napalu/ecp/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionData(t *testing.T) {
	app := newTestApp()
	app.commands[0].subcommands[0].Subcommand(NewCommand("deeper"))

	data := CompletionData(app)

	assert.Equal(t, []string{"cargo", "git", "plain", "cargo run", "cargo build"}, data.Commands)
	assert.Equal(t, map[string]string{
		"cargo":     "Rust's package manager",
		"cargo run": "Run a binary",
	}, data.CommandDescriptions)
	assert.Equal(t, []completion.FlagPair{
		{Long: "release", Short: "r", Description: "Build in release mode"},
		{Long: "locked", Description: "Require Cargo.lock"},
	}, data.CommandFlags["cargo run"])
	assert.Equal(t, []completion.FlagPair{
		{Long: "verbose", Short: "v"},
		{Long: "über", Short: "ü"},
	}, data.CommandFlags["git"])
	assert.NotContains(t, data.CommandFlags, "cargo")
	assert.NotContains(t, data.CommandFlags, "plain")
}

func TestCompletionData_NilApp(t *testing.T) {
	data := CompletionData(nil)
	assert.Empty(t, data.Commands)
	assert.NotNil(t, data.CommandFlags)
}

func TestPrintCompletion(t *testing.T) {
	for _, shell := range completion.Shells {
		t.Run(shell, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PrintCompletion(newTestApp(), shell, &buf))
			assert.Contains(t, buf.String(), "cargo")
			assert.Contains(t, buf.String(), "release")
		})
	}

	var buf bytes.Buffer
	err := PrintCompletion(newTestApp(), "tcsh", &buf)
	assert.True(t, errors.Is(err, errs.ErrUnsupportedShell))
	assert.Empty(t, buf.String())

	err = PrintCompletion(nil, "bash", &buf)
	assert.True(t, errors.Is(err, errs.ErrNilApp))
}
