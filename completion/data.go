// Package completion generates shell completion scripts for a definition tree and installs
// them in the per-user completion directory of the shell.
package completion

// FlagPair represents the long and short form of the same flag
type FlagPair struct {
	Long        string
	Short       string
	Description string
}

// CompletionData holds everything the generators need. Commands lists command paths in
// definition order: top-level names ("cargo") and subcommand paths ("cargo run").
// CommandFlags and CommandDescriptions are keyed by command path.
type CompletionData struct {
	Commands            []string
	CommandFlags        map[string][]FlagPair
	CommandDescriptions map[string]string
}

// CompletionPaths holds information about completion script locations
type CompletionPaths struct {
	Primary   string // Main completion path
	Fallback  string // Alternative path if primary isn't available
	Extension string // File extension for completion script (if any)
	Comment   string // Documentation about the path choice
}

// CompletionFileInfo holds shell-specific naming conventions
type CompletionFileInfo struct {
	Prefix    string // Some shells require specific prefixes
	Extension string // File extension if required
	Comment   string // Documentation about the naming convention
}

// TopLevel returns the paths without a subcommand, in order
func (d CompletionData) TopLevel() []string {
	var cmds []string
	for _, cmd := range d.Commands {
		if _, _, isSub := splitPath(cmd); !isSub {
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

// SubcommandsOf returns the subcommand names of parent, in order
func (d CompletionData) SubcommandsOf(parent string) []string {
	var subs []string
	for _, cmd := range d.Commands {
		if p, sub, isSub := splitPath(cmd); isSub && p == parent {
			subs = append(subs, sub)
		}
	}

	return subs
}
