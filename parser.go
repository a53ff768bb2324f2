package ecp

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/napalu/ecp/errs"
	"github.com/napalu/ecp/i18n"
	"github.com/napalu/ecp/input"
)

// NewParser returns a Parser reading the process arguments, reporting to os.Stderr and
// exiting through os.Exit.
func NewParser() *Parser {
	bundle := i18n.Default()
	p := &Parser{
		stderr: os.Stderr,
		stdout: os.Stdout,
		exit:   os.Exit,
		source: input.OSArgs{},
		bundle: bundle,
		lang:   bundle.GetDefaultLanguage(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	p.renderer = NewRenderer(p)

	return p
}

// Parse resolves args against app. args[0] is the program name, args[1] the command and the
// optional args[2] a subcommand of that command. Flags are matched against the subcommand, or
// against the command when no subcommand was given. Parse performs no I/O.
//
// The returned error carries one of the kinds in package errs: errs.ErrInvalidInput when no
// command is given, errs.ErrInvalidCommand for an unknown command or subcommand,
// errs.ErrInvalidFlag when the matched scope declares flags but none was recognized, and
// errs.ErrInvalidDefinition when validation is enabled and app is not valid.
func (p *Parser) Parse(app *App, args []string) (*ParseResult, error) {
	if app == nil {
		return nil, errs.ErrUnknown.Wrap(errs.ErrNilApp)
	}

	if p.validate {
		if err := app.Validate(); err != nil {
			return nil, err
		}
	}

	if len(args) < minArgs {
		return nil, errs.ErrInvalidInput.Wrap(errs.ErrNotEnoughArguments.WithArgs(len(args)))
	}

	cmd, err := p.resolveCommand(app, args)
	if err != nil {
		return nil, err
	}

	sub, err := p.resolveSubcommand(cmd, args)
	if err != nil {
		return nil, err
	}

	scope, scopePath := cmd, cmd.name
	if sub != nil {
		scope, scopePath = sub, cmd.name+" "+sub.name
	}

	flags, err := p.resolveFlags(scope, scopePath, args)
	if err != nil {
		return nil, err
	}

	result := &ParseResult{
		command: cmd.name,
		flags:   flags,
		values:  extractValues(args, sub != nil, len(flags)),
	}
	if sub != nil {
		result.subcommand = sub.name
		result.hasSubcommand = true
	}

	p.logger.Debug("parsed arguments",
		"command", result.command,
		"subcommand", result.subcommand,
		"flags", result.flags,
		"values", result.values)

	return result, nil
}

// TryRun parses the tokens supplied by the configured argument source. Failures of the source
// are reported as errs.ErrIo.
func (p *Parser) TryRun(app *App) (*ParseResult, error) {
	args, err := p.source.Args()
	if err != nil {
		if !errors.Is(err, errs.ErrIo) {
			err = errs.ErrIo.Wrap(err)
		}
		return nil, err
	}

	return p.Parse(app, args)
}

// Run is TryRun for programs which cannot continue without a valid command line: on failure
// the translated error message is written to the configured stderr and the exit function is
// called with status 1. Run returns nil if the exit function returns.
func (p *Parser) Run(app *App) *ParseResult {
	result, err := p.TryRun(app)
	if err != nil {
		_, _ = fmt.Fprintln(p.stderr, p.ErrorMessage(err))
		p.exit(1)
		return nil
	}

	return result
}

// ErrorMessage renders err in the language of the parser
func (p *Parser) ErrorMessage(err error) string {
	return p.bundle.TranslateError(p.lang, err)
}

// GetBundle returns the translation bundle used by the parser
func (p *Parser) GetBundle() *i18n.Bundle {
	return p.bundle
}
