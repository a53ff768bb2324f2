package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#!/bin/bash

%s() {
    local cur cmd path
    cur="${COMP_WORDS[COMP_CWORD]}"
    cmd=""
    path=""

    if (( COMP_CWORD > 1 )); then
        cmd="${COMP_WORDS[1]}"
        path="${cmd}"
    fi
    if (( COMP_CWORD > 2 )) && [[ "${COMP_WORDS[2]}" != -* ]]; then
        path="${cmd} ${COMP_WORDS[2]}"
    fi

    if [[ "$cur" == -* ]]; then
        local flags=""
        case "${path}" in`, fn))

	for _, cmd := range data.Commands {
		if flags, ok := data.CommandFlags[cmd]; ok && len(flags) > 0 {
			script.WriteString(fmt.Sprintf(`
            '%s')
                flags="%s"
                ;;`, escapeSingleQuoted(cmd), strings.Join(flagWords(flags), " ")))
		}
	}

	script.WriteString(`
        esac
        COMPREPLY=( $(compgen -W "${flags}" -- "$cur") )
        return
    fi

    if (( COMP_CWORD == 1 )); then
        COMPREPLY=( $(compgen -W "`)
	script.WriteString(strings.Join(data.TopLevel(), " "))
	script.WriteString(`" -- "$cur") )
        return
    fi

    if (( COMP_CWORD == 2 )); then
        case "${cmd}" in`)

	for _, cmd := range data.TopLevel() {
		if subs := data.SubcommandsOf(cmd); len(subs) > 0 {
			script.WriteString(fmt.Sprintf(`
            '%s')
                COMPREPLY=( $(compgen -W "%s" -- "$cur") )
                ;;`, escapeSingleQuoted(cmd), strings.Join(subs, " ")))
		}
	}

	script.WriteString(fmt.Sprintf(`
        esac
    fi
}

complete -F %s %s
`, fn, programName))

	return script.String()
}
