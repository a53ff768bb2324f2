package ecp

import (
	"io"
	"log/slog"

	"github.com/napalu/ecp/errs"
	"github.com/napalu/ecp/i18n"
	"github.com/napalu/ecp/input"
	"golang.org/x/text/language"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithLanguage(language.German),
//		WithRelaxedSubcommands(true),
//		WithLogger(slog.Default()))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	p := NewParser()

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// WithStderr sets the writer Run reports errors to
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if w != nil {
			p.stderr = w
		}
	}
}

// WithStdout sets the writer used by PrintUsage when no writer is given
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if w != nil {
			p.stdout = w
		}
	}
}

// WithExitFunc replaces os.Exit as called by Run
func WithExitFunc(exit ExitFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if exit != nil {
			p.exit = exit
		}
	}
}

// WithArgSource sets where TryRun and Run obtain their tokens
func WithArgSource(source input.ArgSource) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if source != nil {
			p.source = source
		}
	}
}

// WithBundle replaces the translation bundle. The language of the parser is reset to the
// default language of the bundle when the bundle does not support it.
func WithBundle(bundle *i18n.Bundle) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if bundle == nil {
			return
		}
		p.bundle = bundle
		if !bundle.HasLanguage(p.lang) {
			p.lang = bundle.GetDefaultLanguage()
		}
	}
}

// WithLanguage sets the language of error messages and usage text. Regional variants resolve
// to the closest supported language (de-CH uses de).
func WithLanguage(lang language.Tag) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		matched, ok := p.bundle.Match(lang)
		if !ok {
			*err = errs.ErrLanguageUnavailable.WithArgs(lang.String())
			return
		}
		p.lang = matched
	}
}

// WithLogger enables debug tracing of the resolution steps
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithValidation runs App.Validate before every parse
func WithValidation(validate bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.validate = validate
	}
}

// WithRelaxedSubcommands stops treating the token following the command as a subcommand when
// it looks like a flag or when the command has no subcommands. This allows flags declared on
// a command with subcommands to be given right after the command.
func WithRelaxedSubcommands(relaxed bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.relaxedSubcommands = relaxed
	}
}

// WithRenderer replaces the renderer used by PrintUsage
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if renderer != nil {
			p.renderer = renderer
		}
	}
}

// WithTerminalWidth fixes the width PrintUsage wraps descriptions at. Zero detects the width
// of the terminal.
func WithTerminalWidth(width int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		if width >= 0 {
			p.terminalWidth = width
		}
	}
}
