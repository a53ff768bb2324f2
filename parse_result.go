package ecp

import (
	"iter"
	"slices"
)

// Command returns the matched top-level command
func (r *ParseResult) Command() string {
	return r.command
}

// Subcommand returns the matched subcommand and whether one was given
func (r *ParseResult) Subcommand() (string, bool) {
	return r.subcommand, r.hasSubcommand
}

// Flags iterates over the long names of the recognized flags, in the order they appeared.
// A flag given by its short form is reported by its long name.
func (r *ParseResult) Flags() iter.Seq[string] {
	return slices.Values(r.flags)
}

// Values iterates over the positional values in their original order
func (r *ParseResult) Values() iter.Seq[string] {
	return slices.Values(r.values)
}

// HasFlag reports whether the flag with the given long name was recognized
func (r *ParseResult) HasFlag(long string) bool {
	return slices.Contains(r.flags, long)
}
