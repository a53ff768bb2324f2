package ecp

import (
	"io"
	"strings"

	"github.com/napalu/ecp/completion"
	"github.com/napalu/ecp/errs"
)

// CompletionData collects the command paths, flags and descriptions of app for the completion
// generators. Only the two levels the parser resolves (command and subcommand) are included.
func CompletionData(app *App) completion.CompletionData {
	data := completion.CompletionData{
		CommandFlags:        make(map[string][]completion.FlagPair),
		CommandDescriptions: make(map[string]string),
	}
	if app == nil {
		return data
	}

	index, _ := app.scopeIndex()
	for pair := index.Oldest(); pair != nil; pair = pair.Next() {
		path := pair.Key.(string)
		if strings.Count(path, " ") > 1 {
			continue
		}

		cmd := pair.Value.(*Command)
		data.Commands = append(data.Commands, path)
		if cmd.description != "" {
			data.CommandDescriptions[path] = cmd.description
		}
		for _, flag := range cmd.flags {
			fp := completion.FlagPair{
				Long:        flag.long,
				Description: flag.description,
			}
			if flag.hasShort {
				fp.Short = string(flag.short)
			}
			data.CommandFlags[path] = append(data.CommandFlags[path], fp)
		}
	}

	return data
}

// PrintCompletion writes the completion script of app for shell to w. The app name is used as
// the program name the script registers for.
func PrintCompletion(app *App, shell string, w io.Writer) error {
	if app == nil {
		return errs.ErrUnknown.Wrap(errs.ErrNilApp)
	}

	generator := completion.GetGenerator(shell)
	if generator == nil {
		return errs.ErrUnsupportedShell.WithArgs(shell)
	}

	_, err := io.WriteString(w, generator.Generate(app.name, CompletionData(app)))
	return err
}
