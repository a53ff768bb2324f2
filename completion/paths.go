package completion

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/napalu/ecp/errs"
)

func ensurePermission(path string, perm os.FileMode) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	if runtime.GOOS == "windows" {
		return nil
	}

	actualPerm := info.Mode().Perm()
	if actualPerm != perm {
		if err := os.Chmod(path, perm); err != nil {
			return fmt.Errorf("failed to set permissions on %s from %o to %o: %w",
				path, actualPerm, perm, err)
		}
	}

	return nil
}

func isPowerShellCore() bool {
	_, err := exec.LookPath("pwsh")
	return err == nil
}

// unixCompletionPaths returns the user-local directories shared by linux and darwin
func unixCompletionPaths(home, shell string) (CompletionPaths, bool) {
	switch shell {
	case "bash":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".local", "share", "bash-completion", "completions"),
			Fallback: filepath.Join(home, ".bash_completion.d"),
			Comment:  "XDG-compatible user-local bash completions directory",
		}, true
	case "zsh":
		return CompletionPaths{
			Primary:  filepath.Join(home, ".zsh", "completion"),
			Fallback: filepath.Join(home, ".zfunc"),
			Comment:  "User-local zsh completions directory",
		}, true
	case "fish":
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "fish", "completions"),
			Fallback:  filepath.Join(home, ".local", "share", "fish", "completions"),
			Extension: ".fish",
			Comment:   "Fish user completions directory",
		}, true
	default:
		return CompletionPaths{}, false
	}
}

func completionPathsFor(goos, home, shell string) (CompletionPaths, error) {
	if shell != "powershell" {
		if paths, ok := unixCompletionPaths(home, shell); ok {
			return paths, nil
		}
		return CompletionPaths{}, errs.ErrUnsupportedShell.WithArgs(shell)
	}

	switch goos {
	case "windows":
		if isPowerShellCore() {
			return CompletionPaths{
				Primary:   filepath.Join(home, "Documents", "PowerShell", "Completions"),
				Fallback:  filepath.Join(home, ".config", "powershell", "Completions"),
				Extension: ".ps1",
				Comment:   "PowerShell Core user completions directory",
			}, nil
		}
		return CompletionPaths{
			Primary:   filepath.Join(home, "Documents", "WindowsPowerShell", "Completions"),
			Fallback:  filepath.Join(home, ".config", "WindowsPowerShell", "Completions"),
			Extension: ".ps1",
			Comment:   "Windows PowerShell user completions directory",
		}, nil
	case "darwin":
		return CompletionPaths{
			Primary:   filepath.Join(home, "Library", "PowerShell", "Completions"),
			Fallback:  filepath.Join(home, ".config", "powershell", "Completions"),
			Extension: ".ps1",
			Comment:   "PowerShell Core user completions directory",
		}, nil
	default:
		return CompletionPaths{
			Primary:   filepath.Join(home, ".config", "powershell", "Completions"),
			Fallback:  filepath.Join(home, ".local", "share", "powershell", "Completions"),
			Extension: ".ps1",
			Comment:   "PowerShell Core user completions directory",
		}, nil
	}
}

func getCompletionPaths(shell string) (CompletionPaths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return CompletionPaths{}, fmt.Errorf("couldn't get user home directory: %w", err)
	}

	return completionPathsFor(runtime.GOOS, home, shell)
}
