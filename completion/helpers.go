package completion

import (
	"strings"

	"github.com/iancoleman/strcase"
)

// functionName turns a program name into an identifier usable as a shell function name
func functionName(programName string) string {
	name := strcase.ToSnake(programName)
	name = strings.Map(func(r rune) rune {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			return r
		}
		return '_'
	}, name)

	return "__" + name + "_completion"
}

func splitPath(path string) (parent, sub string, isSub bool) {
	parent, sub, isSub = strings.Cut(path, " ")
	return
}

func flagWords(flags []FlagPair) []string {
	words := make([]string, 0, len(flags)*2)
	for _, flag := range flags {
		words = append(words, "--"+flag.Long)
		if flag.Short != "" {
			words = append(words, "-"+flag.Short)
		}
	}

	return words
}

// escapeSingleQuoted escapes s for use inside a single-quoted POSIX shell string
func escapeSingleQuoted(s string) string {
	return strings.ReplaceAll(s, "'", `'\''`)
}

func escapeZshDescribe(s string) string {
	return strings.ReplaceAll(escapeSingleQuoted(s), ":", `\:`)
}

func escapeFish(desc string) string {
	desc = strings.ReplaceAll(desc, `\`, `\\`)
	return strings.ReplaceAll(desc, "'", `\'`)
}

func escapePowerShell(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
