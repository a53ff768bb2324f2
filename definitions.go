package ecp

import (
	"io"
	"log/slog"

	"github.com/napalu/ecp/i18n"
	"github.com/napalu/ecp/input"
	"golang.org/x/text/language"
)

// Flag defines an option recognized in its long form (--release) or its optional
// single-character short form (-r).
type Flag struct {
	long        string
	short       rune
	hasShort    bool
	description string
}

// Command defines a named, invocable unit. Subcommands are Commands nested in the
// subcommands of their parent; the parser only ever resolves one level of subcommands.
type Command struct {
	name        string
	description string
	subcommands []*Command
	flags       []*Flag
}

// App is the root of a definition tree. The tree must not be modified once it has been
// handed to a Parser.
type App struct {
	name        string
	version     string
	description string
	commands    []*Command
}

// ParseResult is the outcome of a successful parse. It holds copies of every matched name and
// does not reference the definition tree.
type ParseResult struct {
	command       string
	subcommand    string
	hasSubcommand bool
	flags         []string
	values        []string
}

// Parser resolves raw tokens against an App. A Parser is not modified by parsing and can be
// shared between goroutines.
type Parser struct {
	stderr             io.Writer
	stdout             io.Writer
	exit               ExitFunc
	source             input.ArgSource
	bundle             *i18n.Bundle
	lang               language.Tag
	logger             *slog.Logger
	validate           bool
	relaxedSubcommands bool
	renderer           Renderer
	terminalWidth      int
}

// ConfigureParserFunc is used when configuring a Parser with NewParserWith
type ConfigureParserFunc func(p *Parser, err *error)

// ExitFunc terminates the process with the given status. It is called by Run on failure.
type ExitFunc func(code int)

// Renderer produces the per-command and per-flag lines of the usage text
type Renderer interface {
	CommandUsage(c *Command) string
	FlagUsage(f *Flag) string
}

// PrettyPrintConfig is used to print the command tree in PrintUsage
type PrettyPrintConfig struct {
	// NewCommandPrefix precedes top-level commands
	NewCommandPrefix string
	// DefaultPrefix precedes sub-commands which have sub-commands of their own
	DefaultPrefix string
	// TerminalPrefix precedes sub-commands without sub-commands
	TerminalPrefix string
	// OuterLevelBindPrefix is repeated once per level below the top-level command
	OuterLevelBindPrefix string
	// FlagPrefix is repeated once per level (plus one) in front of flag lines
	FlagPrefix string
}

const (
	// commandPos is the index of the command token, index 0 being the program name
	commandPos = 1
	// subcommandPos is the index of the optional subcommand token
	subcommandPos = 2
	// minArgs is the number of tokens needed to name a command
	minArgs = 2
	// flagPrefix is stripped (repeatedly) from flag tokens
	flagPrefix = '-'
	// defaultTerminalWidth is used when the width of stdout cannot be determined
	defaultTerminalWidth = 80
)
