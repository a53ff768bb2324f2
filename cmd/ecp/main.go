// Command ecp parses a command line against an application defined in a YAML file and prints
// how it was resolved. It can also print the usage of the definition and generate or install
// shell completion scripts for it.
//
//	ecp --definition cargo.yaml -- cargo run -r --locked port 8080
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/napalu/ecp"
	"github.com/napalu/ecp/completion"
	"github.com/napalu/ecp/i18n"
	"github.com/napalu/ecp/input"
	"github.com/napalu/ecp/schema"
	"github.com/spf13/pflag"
	"golang.org/x/text/language"
)

type options struct {
	definition string
	lang       string
	validate   bool
	relaxed    bool
	usage      bool
	completion string
	install    string
	stdin      bool
	verbose    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	flagSet := pflag.NewFlagSet("ecp", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&opts.definition, "definition", "d", "", "path to the YAML application definition")
	flagSet.StringVarP(&opts.lang, "lang", "l", "", "language of messages (en, de, fr)")
	flagSet.BoolVar(&opts.validate, "validate", false, "validate the definition before parsing")
	flagSet.BoolVar(&opts.relaxed, "relaxed", false, "do not treat a flag after the command as a subcommand")
	flagSet.BoolVar(&opts.usage, "usage", false, "print the usage of the definition")
	flagSet.StringVar(&opts.completion, "completion", "", "print the completion script for SHELL ("+strings.Join(completion.Shells, ", ")+")")
	flagSet.StringVar(&opts.install, "install", "", "with --completion, write the script to DIR (\"user\" for the shell's completion directory)")
	flagSet.BoolVar(&opts.stdin, "stdin", false, "read the tokens to parse from standard input")
	flagSet.BoolVarP(&opts.verbose, "verbose", "v", false, "log each resolution step")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	bundle := i18n.Default()
	lang := bundle.GetDefaultLanguage()
	if opts.lang != "" {
		tag, err := language.Parse(opts.lang)
		if err != nil {
			fmt.Fprintf(stderr, "invalid language %q: %v\n", opts.lang, err)
			return 1
		}
		lang = tag
	}

	if opts.definition == "" {
		fmt.Fprintln(stderr, "--definition is required")
		flagSet.PrintDefaults()
		return 1
	}

	app, err := schema.LoadFile(opts.definition)
	if err != nil {
		fmt.Fprintln(stderr, bundle.TranslateError(lang, err))
		return 1
	}
	logger.Debug("loaded definition", "path", opts.definition, "app", app.GetName())

	var source input.ArgSource = input.StaticArgs(append([]string{app.GetName()}, flagSet.Args()...))
	if opts.stdin {
		source = input.ReaderArgs{Reader: stdin, Program: app.GetName()}
	}

	parser, err := ecp.NewParserWith(
		ecp.WithLanguage(lang),
		ecp.WithValidation(opts.validate),
		ecp.WithRelaxedSubcommands(opts.relaxed),
		ecp.WithLogger(logger),
		ecp.WithStdout(stdout),
		ecp.WithStderr(stderr),
		ecp.WithArgSource(source))
	if err != nil {
		fmt.Fprintln(stderr, bundle.TranslateError(bundle.GetDefaultLanguage(), err))
		return 1
	}

	switch {
	case opts.usage:
		parser.PrintUsage(app, stdout)
		return 0
	case opts.completion != "":
		if err := printCompletion(app, opts, stdout, logger); err != nil {
			fmt.Fprintln(stderr, parser.ErrorMessage(err))
			return 1
		}
		return 0
	}

	result, err := parser.TryRun(app)
	if err != nil {
		fmt.Fprintln(stderr, parser.ErrorMessage(err))
		return 1
	}
	printResult(stdout, result)

	return 0
}

func printCompletion(app *ecp.App, opts options, stdout io.Writer, logger *slog.Logger) error {
	if opts.install == "" {
		return ecp.PrintCompletion(app, opts.completion, stdout)
	}

	manager, err := completion.NewManager(opts.completion, app.GetName())
	if err != nil {
		return err
	}
	manager.Accept(ecp.CompletionData(app))

	var path string
	if opts.install == "user" {
		path, err = manager.Save()
	} else {
		path, err = manager.SaveTo(opts.install)
	}
	if err != nil {
		return err
	}
	logger.Info("installed completion script", "shell", opts.completion, "path", path)
	fmt.Fprintln(stdout, path)

	return nil
}

func printResult(w io.Writer, result *ecp.ParseResult) {
	fmt.Fprintf(w, "command: %s\n", result.Command())
	if sub, ok := result.Subcommand(); ok {
		fmt.Fprintf(w, "subcommand: %s\n", sub)
	}
	fmt.Fprintf(w, "flags: %s\n", strings.Join(slices.Collect(result.Flags()), ", "))
	fmt.Fprintf(w, "values: %s\n", strings.Join(slices.Collect(result.Values()), ", "))
}
