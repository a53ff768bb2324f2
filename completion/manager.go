package completion

import (
	"os"
	"path/filepath"

	"github.com/napalu/ecp/errs"
)

// Manager generates a completion script for one shell and writes it where the shell
// looks for user completions
type Manager struct {
	Shell       string
	ProgramName string
	Paths       CompletionPaths
	generator   Generator
	script      string
}

// NewManager creates a Manager for shell. The completion directories are resolved
// relative to the user's home directory.
func NewManager(shell, programName string) (*Manager, error) {
	generator := GetGenerator(shell)
	if generator == nil {
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}

	paths, err := getCompletionPaths(shell)
	if err != nil {
		return nil, err
	}

	return &Manager{
		Shell:       shell,
		ProgramName: filepath.Base(programName),
		Paths:       paths,
		generator:   generator,
	}, nil
}

// Accept generates and stores the completion script from the provided data
func (m *Manager) Accept(data CompletionData) {
	m.script = m.generator.Generate(m.ProgramName, data)
}

// Script returns the script generated by the last call to Accept
func (m *Manager) Script() string {
	return m.script
}

// Save writes the generated script to the shell's completion directory and returns
// the path of the written file
func (m *Manager) Save() (string, error) {
	if m.script == "" {
		return "", errs.ErrNoCompletionScript
	}

	dir, err := m.ensureCompletionPath()
	if err != nil {
		return "", err
	}

	return m.write(dir)
}

// SaveTo writes the generated script to dir, creating it if needed
func (m *Manager) SaveTo(dir string) (string, error) {
	if m.script == "" {
		return "", errs.ErrNoCompletionScript
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errs.ErrCompletionFile.WithArgs(dir).Wrap(err)
	}

	return m.write(dir)
}

func (m *Manager) write(dir string) (string, error) {
	path := filepath.Join(dir, m.FileName())
	if err := os.WriteFile(path, []byte(m.script), 0644); err != nil {
		return "", errs.ErrCompletionFile.WithArgs(path).Wrap(err)
	}

	if err := ensurePermission(path, 0644); err != nil {
		return "", errs.ErrCompletionFile.WithArgs(path).Wrap(err)
	}

	return path, nil
}

func (m *Manager) ensureCompletionPath() (string, error) {
	perm := os.FileMode(0755)
	err := os.MkdirAll(m.Paths.Primary, perm)
	if err == nil {
		if err = ensurePermission(m.Paths.Primary, perm); err == nil {
			return m.Paths.Primary, nil
		}
	}

	if m.Paths.Fallback != "" {
		if err = os.MkdirAll(m.Paths.Fallback, perm); err == nil {
			if err = ensurePermission(m.Paths.Fallback, perm); err == nil {
				return m.Paths.Fallback, nil
			}
		}
	}

	return "", errs.ErrCompletionFile.WithArgs(m.Paths.Primary).Wrap(err)
}

// FileName returns the name the shell expects for the program's completion file
func (m *Manager) FileName() string {
	conventions := fileConventions(m.Shell)
	return conventions.Prefix + m.ProgramName + conventions.Extension
}

func fileConventions(shell string) CompletionFileInfo {
	switch shell {
	case "zsh":
		return CompletionFileInfo{
			Prefix:  "_",
			Comment: "Zsh completion files should start with _ (e.g., _git)",
		}
	case "fish":
		return CompletionFileInfo{
			Extension: ".fish",
			Comment:   "Fish completion files must end in .fish",
		}
	case "powershell":
		return CompletionFileInfo{
			Extension: ".ps1",
			Comment:   "PowerShell completion files must end in .ps1",
		}
	default:
		return CompletionFileInfo{
			Comment: "Bash completion files are typically just the command name",
		}
	}
}
