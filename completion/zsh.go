package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

%s() {
    local -a commands subcommands flags
    local path

    if (( CURRENT == 2 )); then
        commands=(`, programName, fn))

	for _, cmd := range data.TopLevel() {
		script.WriteString(fmt.Sprintf(`
            '%s:%s'`, escapeZshDescribe(cmd), escapeZshDescribe(data.CommandDescriptions[cmd])))
	}

	script.WriteString(`
        )
        _describe 'command' commands
        return
    fi

    path="${words[2]}"
    if (( CURRENT > 3 )) && [[ "${words[3]}" != -* ]]; then
        path="${words[2]} ${words[3]}"
    fi

    if (( CURRENT == 3 )) && [[ "${words[CURRENT]}" != -* ]]; then
        case "${words[2]}" in`)

	for _, cmd := range data.TopLevel() {
		subs := data.SubcommandsOf(cmd)
		if len(subs) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
            '%s')
                subcommands=(`, escapeSingleQuoted(cmd)))
		for _, sub := range subs {
			script.WriteString(fmt.Sprintf(`
                    '%s:%s'`, escapeZshDescribe(sub), escapeZshDescribe(data.CommandDescriptions[cmd+" "+sub])))
		}
		script.WriteString(`
                )
                _describe 'subcommand' subcommands
                return
                ;;`)
	}

	script.WriteString(`
        esac
    fi

    case "${path}" in`)

	for _, cmd := range data.Commands {
		flags, ok := data.CommandFlags[cmd]
		if !ok || len(flags) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
        '%s')
            flags=(`, escapeSingleQuoted(cmd)))
		for _, flag := range flags {
			desc := escapeZshDescribe(flag.Description)
			script.WriteString(fmt.Sprintf(`
                '--%s:%s'`, escapeZshDescribe(flag.Long), desc))
			if flag.Short != "" {
				script.WriteString(fmt.Sprintf(`
                '-%s:%s'`, escapeZshDescribe(flag.Short), desc))
			}
		}
		script.WriteString(`
            )
            ;;`)
	}

	script.WriteString(fmt.Sprintf(`
    esac

    if (( ${#flags} )); then
        _describe 'flag' flags
    fi
}

%s "$@"
`, fn))

	return script.String()
}
