package ecp

import (
	"slices"
	"strings"

	"github.com/napalu/ecp/errs"
)

func (p *Parser) resolveCommand(app *App, args []string) (*Command, error) {
	name := args[commandPos]

	cmd, found := app.findCommand(name)
	if !found {
		return nil, errs.ErrInvalidCommand.Wrap(errs.ErrCommandNotFound.WithArgs(name))
	}
	p.logger.Debug("resolved command", "command", name)

	return cmd, nil
}

// resolveSubcommand only looks at the subcommands of cmd. A missing token means no subcommand.
func (p *Parser) resolveSubcommand(cmd *Command, args []string) (*Command, error) {
	if len(args) <= subcommandPos {
		return nil, nil
	}

	name := args[subcommandPos]
	if p.relaxedSubcommands && (len(cmd.subcommands) == 0 || isFlag(name)) {
		p.logger.Debug("token is not a subcommand candidate", "command", cmd.name, "token", name)
		return nil, nil
	}

	sub, found := cmd.findSubcommand(name)
	if !found {
		return nil, errs.ErrInvalidCommand.Wrap(errs.ErrSubcommandNotFound.WithArgs(name))
	}
	p.logger.Debug("resolved subcommand", "command", cmd.name, "subcommand", name)

	return sub, nil
}

// resolveFlags scans every token, program name included. Tokens which look like flags but
// are unknown to scope are skipped. A scope without flags never fails.
func (p *Parser) resolveFlags(scope *Command, scopePath string, args []string) ([]string, error) {
	if len(scope.flags) == 0 {
		return []string{}, nil
	}

	found := make([]string, 0, len(scope.flags))
	for _, arg := range args {
		if !isFlag(arg) {
			continue
		}

		name := strings.TrimLeft(arg, string(flagPrefix))
		if flag, ok := findFlag(scope, name); ok {
			found = append(found, flag.long)
			continue
		}
		p.logger.Debug("ignoring unknown flag", "scope", scopePath, "token", arg)
	}

	if len(found) == 0 {
		return nil, errs.ErrInvalidFlag.Wrap(errs.ErrNoFlagsRecognized.WithArgs(scopePath))
	}

	return found, nil
}

// extractValues skips the program name, the command, the subcommand (if any) and one token per
// recognized flag. Flags placed after a value shift the window.
func extractValues(args []string, hasSubcommand bool, flagCount int) []string {
	skip := minArgs + flagCount
	if hasSubcommand {
		skip++
	}

	if skip >= len(args) {
		return []string{}
	}

	return slices.Clone(args[skip:])
}

func findFlag(scope *Command, name string) (*Flag, bool) {
	if name == "" {
		return nil, false
	}

	for _, flag := range scope.flags {
		if flag.matches(name) {
			return flag, true
		}
	}

	return nil, false
}

func isFlag(arg string) bool {
	return len(arg) > 0 && arg[0] == flagPrefix
}
