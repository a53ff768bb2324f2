package ecp_test

import (
	"fmt"
	"os"
	"slices"

	"github.com/napalu/ecp"
	"github.com/napalu/ecp/errs"
	"github.com/napalu/ecp/input"
)

func newCargoApp() *ecp.App {
	return ecp.NewApp("ecp").
		Version("1.0.0").
		Command(ecp.NewCommand("cargo").
			Description("Rust's package manager").
			Subcommand(ecp.NewCommand("run").
				Flag(ecp.NewFlag("release").Short('r')).
				Flag(ecp.NewFlag("locked"))))
}

func ExampleApp_Parse() {
	result, err := newCargoApp().Parse([]string{"ecp", "cargo", "run", "-r", "--locked", "port", "8080"})
	if err != nil {
		fmt.Println(err)
		return
	}

	sub, _ := result.Subcommand()
	fmt.Println(result.Command(), sub)
	fmt.Println(slices.Collect(result.Flags()))
	fmt.Println(slices.Collect(result.Values()))
	// Output:
	// cargo run
	// [release locked]
	// [port 8080]
}

func ExampleParser_Parse_error() {
	_, err := ecp.NewParser().Parse(newCargoApp(), []string{"ecp", "unknowncmd"})

	fmt.Println(errs.KindOf(err))
	fmt.Println(err)
	// Output:
	// InvalidCommand
	// Error: invalid command: command not found: unknowncmd
}

func ExampleParser_Run() {
	p, _ := ecp.NewParserWith(
		ecp.WithArgSource(input.StringArgs("ecp cargo run")),
		ecp.WithStderr(os.Stdout),
		ecp.WithExitFunc(func(code int) { fmt.Println("exit", code) }))

	p.Run(newCargoApp())
	// Output:
	// Error: invalid flag: no known flag given for cargo run
	// exit 1
}
