package ecp

// ConfigureCommandFunc is used when configuring a Command with Command.Set
type ConfigureCommandFunc func(command *Command)

// Set is a helper config function that allows setting multiple configuration functions on a command.
// It returns the command so it can be used inside a builder chain.
func (c *Command) Set(configs ...ConfigureCommandFunc) *Command {
	for _, config := range configs {
		config(c)
	}

	return c
}

// WithCommandDescription sets the description for the command. This description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.description = description
	}
}

// WithSubcommands appends subcommands to a command, keeping their order
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		for _, sub := range subcommands {
			if sub != nil {
				command.subcommands = append(command.subcommands, sub)
			}
		}
	}
}

// WithOverwriteSubcommands allows replacing a Command's subcommands.
func WithOverwriteSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		command.subcommands = nil
		WithSubcommands(subcommands...)(command)
	}
}

// WithFlags appends flags to a command, keeping their order. The first flag matching a token wins.
func WithFlags(flags ...*Flag) ConfigureCommandFunc {
	return func(command *Command) {
		for _, flag := range flags {
			if flag != nil {
				command.flags = append(command.flags, flag)
			}
		}
	}
}
