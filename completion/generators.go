package completion

type Generator interface {
	Generate(programName string, data CompletionData) string
}

// Shells lists the supported shells
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// GetGenerator returns the generator for shell, or nil when the shell is not supported
func GetGenerator(shell string) Generator {
	switch shell {
	case "bash":
		return &BashGenerator{}
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	default:
		return nil
	}
}
