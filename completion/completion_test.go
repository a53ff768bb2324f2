package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func getTestCompletionData() CompletionData {
	return CompletionData{
		Commands: []string{"cargo", "git", "cargo run", "cargo build"},
		CommandFlags: map[string][]FlagPair{
			"cargo run": {
				{Long: "release", Short: "r", Description: "Build in release mode"},
				{Long: "locked", Description: "Require Cargo.lock"},
			},
			"git": {
				{Long: "verbose", Short: "v", Description: "Be verbose"},
			},
		},
		CommandDescriptions: map[string]string{
			"cargo":     "Rust's package manager",
			"cargo run": "Run a binary",
		},
	}
}

func TestCompletionData_Levels(t *testing.T) {
	data := getTestCompletionData()

	assert.Equal(t, []string{"cargo", "git"}, data.TopLevel())
	assert.Equal(t, []string{"run", "build"}, data.SubcommandsOf("cargo"))
	assert.Empty(t, data.SubcommandsOf("git"))
}

func TestBashCompletion(t *testing.T) {
	result := (&BashGenerator{}).Generate("mytool", getTestCompletionData())

	expectations := []string{
		"#!/bin/bash",
		"__mytool_completion() {",
		`'cargo run')`,
		`flags="--release -r --locked"`,
		`flags="--verbose -v"`,
		`COMPREPLY=( $(compgen -W "cargo git" -- "$cur") )`,
		`COMPREPLY=( $(compgen -W "run build" -- "$cur") )`,
		"complete -F __mytool_completion mytool",
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestZshCompletion(t *testing.T) {
	result := (&ZshGenerator{}).Generate("mytool", getTestCompletionData())

	expectations := []string{
		"#compdef mytool",
		"__mytool_completion() {",
		`'cargo:Rust'\''s package manager'`,
		`'git:'`,
		`'run:Run a binary'`,
		`_describe 'subcommand' subcommands`,
		`'--release:Build in release mode'`,
		`'-r:Build in release mode'`,
		`'--locked:Require Cargo.lock'`,
		`__mytool_completion "$@"`,
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestFishCompletion(t *testing.T) {
	result := (&FishGenerator{}).Generate("mytool", getTestCompletionData())

	expectations := []string{
		`complete -c mytool -f -n '__fish_use_subcommand' -a 'cargo' -d 'Rust\'s package manager'`,
		`complete -c mytool -f -n '__fish_seen_subcommand_from cargo; and not __fish_seen_subcommand_from run build' -a 'run' -d 'Run a binary'`,
		`complete -c mytool -f -n '__fish_seen_subcommand_from cargo; and __fish_seen_subcommand_from run' -l release -s r -d 'Build in release mode'`,
		`complete -c mytool -f -n '__fish_seen_subcommand_from cargo; and __fish_seen_subcommand_from run' -l locked -d 'Require Cargo.lock'`,
		`complete -c mytool -f -n '__fish_seen_subcommand_from git' -l verbose -s v -d 'Be verbose'`,
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestPowerShellCompletion(t *testing.T) {
	result := (&PowerShellGenerator{}).Generate("mytool", getTestCompletionData())

	expectations := []string{
		"Register-ArgumentCompleter -Native -CommandName 'mytool'",
		`'' = @('cargo', 'git')`,
		`'cargo' = @('run', 'build')`,
		`'cargo run' = @('--release', '-r', '--locked')`,
		`'git' = @('--verbose', '-v')`,
		`'cargo' = 'Rust''s package manager'`,
		"[System.Management.Automation.CompletionResult]::new(",
	}
	for _, expected := range expectations {
		assert.Contains(t, result, expected)
	}
}

func TestGetGenerator(t *testing.T) {
	for _, shell := range Shells {
		assert.NotNil(t, GetGenerator(shell), shell)
	}
	assert.Nil(t, GetGenerator("tcsh"))
}

func TestFunctionName(t *testing.T) {
	tests := []struct {
		program string
		want    string
	}{
		{"mytool", "__mytool_completion"},
		{"my-tool", "__my_tool_completion"},
		{"MyTool", "__my_tool_completion"},
		{"my tool", "__my_tool_completion"},
	}

	for _, tt := range tests {
		t.Run(tt.program, func(t *testing.T) {
			assert.Equal(t, tt.want, functionName(tt.program))
		})
	}
}

func TestEscaping(t *testing.T) {
	assert.Equal(t, `it'\''s`, escapeSingleQuoted("it's"))
	assert.Equal(t, `a\:b`, escapeZshDescribe("a:b"))
	assert.Equal(t, `it\'s \\ x`, escapeFish(`it's \ x`))
	assert.Equal(t, "it''s", escapePowerShell("it's"))
}
