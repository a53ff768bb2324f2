package ecp

import "slices"

// NewCommand creates a Command invoked by name. The same type is used for subcommands.
func NewCommand(name string) *Command {
	return &Command{
		name: name,
	}
}

// Description sets the help text of the command
func (c *Command) Description(description string) *Command {
	c.description = description
	return c
}

// Subcommand appends a subcommand. Only one level of subcommands is resolved when parsing.
func (c *Command) Subcommand(subcommand *Command) *Command {
	c.subcommands = append(c.subcommands, subcommand)
	return c
}

// Flag appends a flag to the flags of this command
func (c *Command) Flag(flag *Flag) *Command {
	c.flags = append(c.flags, flag)
	return c
}

// GetName returns the name of the command
func (c *Command) GetName() string {
	return c.name
}

// GetDescription returns the help text of the command
func (c *Command) GetDescription() string {
	return c.description
}

// GetSubcommands returns a copy of the subcommand list
func (c *Command) GetSubcommands() []*Command {
	return slices.Clone(c.subcommands)
}

// GetFlags returns a copy of the flag list
func (c *Command) GetFlags() []*Flag {
	return slices.Clone(c.flags)
}

// Visit traverses a command and its subcommands from top to bottom. Returning false from the
// visitor skips the subcommands of the visited command.
func (c *Command) Visit(visitor func(cmd *Command, level int) bool, level int) {
	if visitor != nil && !visitor(c, level) {
		return
	}

	for _, sub := range c.subcommands {
		sub.Visit(visitor, level+1)
	}
}

func (c *Command) findSubcommand(name string) (*Command, bool) {
	for _, sub := range c.subcommands {
		if sub.name == name {
			return sub, true
		}
	}

	return nil, false
}
