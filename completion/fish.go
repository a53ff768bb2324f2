package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	// commands (file completion is always disabled)
	for _, cmd := range data.TopLevel() {
		script.WriteString(fmt.Sprintf(
			"complete -c %s -f -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
			programName, escapeFish(cmd), escapeFish(data.CommandDescriptions[cmd])))
	}

	for _, cmd := range data.TopLevel() {
		subs := data.SubcommandsOf(cmd)
		for _, sub := range subs {
			script.WriteString(fmt.Sprintf(
				"complete -c %s -f -n '__fish_seen_subcommand_from %s; and not __fish_seen_subcommand_from %s' -a '%s' -d '%s'\n",
				programName, escapeFish(cmd), escapeFish(strings.Join(subs, " ")), escapeFish(sub),
				escapeFish(data.CommandDescriptions[cmd+" "+sub])))
		}
	}

	for _, cmd := range data.Commands {
		condition := ""
		if parent, sub, isSub := splitPath(cmd); isSub {
			condition = fmt.Sprintf("__fish_seen_subcommand_from %s; and __fish_seen_subcommand_from %s",
				escapeFish(parent), escapeFish(sub))
		} else if subs := data.SubcommandsOf(cmd); len(subs) > 0 {
			condition = fmt.Sprintf("__fish_seen_subcommand_from %s; and not __fish_seen_subcommand_from %s",
				escapeFish(cmd), escapeFish(strings.Join(subs, " ")))
		} else {
			condition = "__fish_seen_subcommand_from " + escapeFish(cmd)
		}

		for _, flag := range data.CommandFlags[cmd] {
			line := fmt.Sprintf("complete -c %s -f -n '%s' -l %s", programName, condition, flag.Long)
			if flag.Short != "" {
				line = fmt.Sprintf("%s -s %s", line, flag.Short)
			}
			script.WriteString(fmt.Sprintf("%s -d '%s'\n", line, escapeFish(flag.Description)))
		}
	}

	return script.String()
}
