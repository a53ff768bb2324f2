package completion

import (
	"fmt"
	"strings"
)

type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	script.WriteString(fmt.Sprintf(`Register-ArgumentCompleter -Native -CommandName '%s' -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $commands = @{
        '' = @(%s)`, escapePowerShell(programName), quotePowerShell(data.TopLevel())))

	for _, cmd := range data.TopLevel() {
		if subs := data.SubcommandsOf(cmd); len(subs) > 0 {
			script.WriteString(fmt.Sprintf(`
        '%s' = @(%s)`, escapePowerShell(cmd), quotePowerShell(subs)))
		}
	}

	script.WriteString(`
    }

    $flags = @{`)

	for _, cmd := range data.Commands {
		if flags, ok := data.CommandFlags[cmd]; ok && len(flags) > 0 {
			script.WriteString(fmt.Sprintf(`
        '%s' = @(%s)`, escapePowerShell(cmd), quotePowerShell(flagWords(flags))))
		}
	}

	script.WriteString(`
    }

    $descriptions = @{`)

	for _, cmd := range data.Commands {
		if desc := data.CommandDescriptions[cmd]; desc != "" {
			script.WriteString(fmt.Sprintf(`
        '%s' = '%s'`, escapePowerShell(cmd), escapePowerShell(desc)))
		}
	}

	script.WriteString(`
    }

    $words = @($commandAst.CommandElements | Select-Object -Skip 1 | ForEach-Object { $_.ToString() })
    if ($wordToComplete -ne '' -and $words.Count -gt 0) {
        $words = @($words | Select-Object -First ($words.Count - 1))
    }

    $path = ''
    if ($words.Count -ge 1) { $path = $words[0] }
    if ($words.Count -ge 2 -and -not $words[1].StartsWith('-')) { $path = "$($words[0]) $($words[1])" }

    $candidates = @()
    if ($wordToComplete.StartsWith('-')) {
        $candidates = $flags[$path]
    } elseif ($words.Count -eq 0) {
        $candidates = $commands['']
    } elseif ($words.Count -eq 1) {
        $candidates = $commands[$words[0]]
    }

    $candidates | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
        $tooltip = $_
        $key = if ($words.Count -eq 0) { $_ } else { "$($words[0]) $_" }
        if ($descriptions.ContainsKey($key)) { $tooltip = $descriptions[$key] }
        [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $tooltip)
    }
}
`)

	return script.String()
}

func quotePowerShell(words []string) string {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = "'" + escapePowerShell(w) + "'"
	}

	return strings.Join(quoted, ", ")
}
