package ecp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommand_Set(t *testing.T) {
	release := NewFlag("release").Short('r')
	locked := NewFlag("locked")
	run := NewCommand("run")

	cmd := NewCommand("cargo").Set(
		WithCommandDescription("Rust's package manager"),
		WithSubcommands(run, nil),
		WithFlags(release, nil, locked))

	assert.Equal(t, "Rust's package manager", cmd.GetDescription())
	assert.Equal(t, []*Command{run}, cmd.GetSubcommands())
	assert.Equal(t, []*Flag{release, locked}, cmd.GetFlags())
}

func TestCommand_WithOverwriteSubcommands(t *testing.T) {
	cmd := NewCommand("parent").Set(
		WithSubcommands(NewCommand("old")),
	)

	WithOverwriteSubcommands(
		NewCommand("new"),
	)(cmd)

	assert.Equal(t, 1, len(cmd.GetSubcommands()), "should have one subcommand")
	assert.Equal(t, "new", cmd.GetSubcommands()[0].GetName(), "should have overwritten subcommand")
}

func TestCommand_SetParses(t *testing.T) {
	app := NewApp("ecp").Command(NewCommand("git").Set(WithFlags(NewFlag("verbose").Short('v'))))

	p, err := NewParserWith(WithRelaxedSubcommands(true))
	assert.NoError(t, err)
	result, err := p.Parse(app, []string{"ecp", "git", "-v"})
	assert.NoError(t, err)
	assert.True(t, result.HasFlag("verbose"))
}
