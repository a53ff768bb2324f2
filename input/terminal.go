package input

import (
	"os"

	"golang.org/x/term"
)

// Terminal queries the terminal attached to a file descriptor
type Terminal interface {
	IsTerminal(fd int) bool
	GetSize(fd int) (width, height int, err error)
}

// DefaultTerminal implements real terminal operations
type DefaultTerminal struct{}

// IsTerminal checks if fd is attached to a terminal
func (t *DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

// GetSize returns the dimensions of the terminal attached to fd
func (t *DefaultTerminal) GetSize(fd int) (int, int, error) {
	return term.GetSize(fd)
}

// TerminalWidth returns the width of the terminal attached to stdout, or fallback when stdout
// is not a terminal.
func TerminalWidth(terminal Terminal, fallback int) int {
	if terminal == nil {
		terminal = &DefaultTerminal{}
	}

	fd := int(os.Stdout.Fd())
	if !terminal.IsTerminal(fd) {
		return fallback
	}

	width, _, err := terminal.GetSize(fd)
	if err != nil || width <= 0 {
		return fallback
	}

	return width
}
