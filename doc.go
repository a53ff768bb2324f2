/*
Package ecp is a small declarative command-line parser.

A program describes its command surface once, as an App holding Commands which in turn hold
Subcommands and Flags, and then hands the raw process arguments to a Parser:

	app := ecp.NewApp("Rust").
		Version("0.1.0").
		Command(ecp.NewCommand("cargo").
			Description("Rust's package manager").
			Subcommand(ecp.NewCommand("run").
				Flag(ecp.NewFlag("release").Short('r')).
				Flag(ecp.NewFlag("locked"))))

	result := app.Run() // prints the error and exits with status 1 on failure

	result.Command()    // "cargo"
	result.Subcommand() // "run", true
	for flag := range result.Flags() {
		// canonical long names, e.g. "release" for -r
	}

The expected token layout is: program name, command, optional subcommand, then flags and
values. Flags are tokens starting with one or more '-' and are matched against the flags of
the subcommand if one was given, otherwise against the flags of the command. Values are the
tokens remaining after the command, the subcommand and as many tokens as flags were
recognized; flags are therefore expected to directly follow the command or subcommand.

Parse never performs I/O and may be called concurrently against the same App. Run and
TryRun obtain their tokens from an input.ArgSource (the process arguments by default).
*/
package ecp
