package ecp

import "slices"

// NewApp creates the root of a definition tree
func NewApp(name string) *App {
	return &App{
		name: name,
	}
}

// Version sets the version shown in the usage header
func (a *App) Version(version string) *App {
	a.version = version
	return a
}

// Description sets the help text of the application
func (a *App) Description(description string) *App {
	a.description = description
	return a
}

// Command appends a top-level command
func (a *App) Command(command *Command) *App {
	a.commands = append(a.commands, command)
	return a
}

// GetName returns the name of the application
func (a *App) GetName() string {
	return a.name
}

// GetVersion returns the version of the application
func (a *App) GetVersion() string {
	return a.version
}

// GetDescription returns the help text of the application
func (a *App) GetDescription() string {
	return a.description
}

// GetCommands returns a copy of the top-level command list
func (a *App) GetCommands() []*Command {
	return slices.Clone(a.commands)
}

// Parse resolves args using a Parser with default settings. See Parser.Parse.
func (a *App) Parse(args []string) (*ParseResult, error) {
	return NewParser().Parse(a, args)
}

// TryRun parses the process arguments using a Parser with default settings. See Parser.TryRun.
func (a *App) TryRun() (*ParseResult, error) {
	return NewParser().TryRun(a)
}

// Run parses the process arguments using a Parser with default settings. On failure the error
// is printed to stderr and the process exits with status 1. See Parser.Run.
func (a *App) Run() *ParseResult {
	return NewParser().Run(a)
}

func (a *App) findCommand(name string) (*Command, bool) {
	for _, cmd := range a.commands {
		if cmd.name == name {
			return cmd, true
		}
	}

	return nil, false
}
