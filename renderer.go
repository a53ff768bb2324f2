package ecp

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/ecp/input"
	"github.com/napalu/ecp/internal/messages"
)

// DefaultPrettyPrintConfig is the tree layout used by PrintUsage
var DefaultPrettyPrintConfig = PrettyPrintConfig{
	NewCommandPrefix:     " +",
	DefaultPrefix:        " │",
	TerminalPrefix:       " └",
	OuterLevelBindPrefix: "─",
	FlagPrefix:           "   ",
}

// DefaultRenderer is the Renderer used by a Parser unless WithRenderer replaces it. Fixed
// words are translated in the parser's language.
type DefaultRenderer struct {
	parser *Parser
}

// NewRenderer returns a DefaultRenderer bound to parser
func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// CommandUsage renders the name of a command followed by its quoted description, if any
func (r *DefaultRenderer) CommandUsage(c *Command) string {
	usage := c.name
	if c.description != "" {
		usage += " \"" + c.description + "\""
	}

	return usage
}

// FlagUsage renders the long form of a flag, its short form if set and its quoted description
func (r *DefaultRenderer) FlagUsage(f *Flag) string {
	usage := "--" + f.long
	if f.hasShort {
		usage += " " + r.parser.tr(messages.MsgOrKey) + " -" + string(f.short)
	}
	if f.description != "" {
		usage += " \"" + f.description + "\""
	}

	return usage
}

// PrintUsage writes the header, the usage line and the command tree of app to writer
// (the configured stdout when writer is nil), wrapping lines at the terminal width.
func (p *Parser) PrintUsage(app *App, writer io.Writer) {
	p.PrintUsageUsing(app, writer, &DefaultPrettyPrintConfig)
}

// PrintUsageUsing is PrintUsage with a custom tree layout
func (p *Parser) PrintUsageUsing(app *App, writer io.Writer, config *PrettyPrintConfig) {
	if writer == nil {
		writer = p.stdout
	}
	width := p.width()

	header := app.name
	if app.version != "" {
		header += " " + p.tr(messages.MsgVersionKey) + " " + app.version
	}
	_, _ = fmt.Fprintln(writer, header)
	if app.description != "" {
		_, _ = fmt.Fprintln(writer, wrapLine(app.description, width, ""))
	}

	_, _ = fmt.Fprintf(writer, "\n%s: %s %s %s %s %s\n", p.tr(messages.MsgUsageKey), app.name,
		p.tr(messages.MsgCommandArgKey), p.tr(messages.MsgSubcommandArgKey),
		p.tr(messages.MsgFlagsArgKey), p.tr(messages.MsgValuesArgKey))

	if len(app.commands) == 0 {
		return
	}

	_, _ = fmt.Fprintf(writer, "\n%s:\n", p.tr(messages.MsgCommandsKey))
	p.PrintCommandsUsing(app, writer, config)
}

// PrintCommandsUsing writes the command tree with the flags of every command.
// PrettyPrintConfig.NewCommandPrefix precedes top-level commands, PrettyPrintConfig.TerminalPrefix
// commands without subcommands and PrettyPrintConfig.DefaultPrefix all others.
// PrettyPrintConfig.OuterLevelBindPrefix is repeated once per level below the top-level command.
func (p *Parser) PrintCommandsUsing(app *App, writer io.Writer, config *PrettyPrintConfig) {
	width := p.width()

	for _, cmd := range app.commands {
		cmd.Visit(func(c *Command, level int) bool {
			start := config.DefaultPrefix
			switch {
			case level == 0:
				start = config.NewCommandPrefix
			case len(c.subcommands) == 0:
				start = config.TerminalPrefix
			}

			prefix := start + strings.Repeat(config.OuterLevelBindPrefix, level) + " "
			line := prefix + p.renderer.CommandUsage(c)
			if _, err := fmt.Fprintln(writer, wrapLine(line, width, strings.Repeat(" ", len([]rune(prefix))))); err != nil {
				return false
			}

			flagIndent := strings.Repeat(config.FlagPrefix, level+1)
			for _, flag := range c.flags {
				line := flagIndent + p.renderer.FlagUsage(flag)
				_, _ = fmt.Fprintln(writer, wrapLine(line, width, flagIndent+"  "))
			}

			return true
		}, 0)
	}
}

func (p *Parser) tr(key string) string {
	return p.bundle.TL(p.lang, key)
}

func (p *Parser) width() int {
	if p.terminalWidth > 0 {
		return p.terminalWidth
	}

	return input.TerminalWidth(nil, defaultTerminalWidth)
}

// wrapLine breaks line at spaces so that no part exceeds width runes where possible.
// Continuation lines start with indent.
func wrapLine(line string, width int, indent string) string {
	if width <= 0 || len([]rune(line)) <= width {
		return line
	}

	var sb strings.Builder
	current := []rune{}
	for _, word := range strings.SplitAfter(line, " ") {
		w := []rune(word)
		if len(current)+len(w) > width && len(strings.TrimSpace(string(current))) > 0 {
			sb.WriteString(strings.TrimRight(string(current), " "))
			sb.WriteString("\n")
			current = []rune(indent)
		}
		current = append(current, w...)
	}
	sb.WriteString(strings.TrimRight(string(current), " "))

	return sb.String()
}
