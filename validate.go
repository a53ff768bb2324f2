package ecp

import (
	"github.com/ef-ds/deque"
	"github.com/napalu/ecp/errs"
	orderedmap "github.com/wk8/go-ordered-map"
)

// Validate checks the definition tree once it is complete: command names must be non-empty and
// unique among siblings, flag long names must be non-empty and unique within their command, and
// no two flags of a command may be reachable by the same single-character token. The first
// problem found is returned wrapped in errs.ErrInvalidDefinition.
//
// Building never validates; call Validate once after construction or enable it per parse with
// WithValidation.
func (a *App) Validate() error {
	index, err := a.scopeIndex()
	if err != nil {
		return err
	}

	for pair := index.Oldest(); pair != nil; pair = pair.Next() {
		if err := validateFlags(pair.Value.(*Command), pair.Key.(string)); err != nil {
			return err
		}
	}

	return nil
}

type scopeNode struct {
	cmd  *Command
	path string
}

// scopeIndex walks the tree breadth-first and maps each command path ("cargo run") to its
// command, in walk order. Commands with an empty or already indexed path are left out and the
// first such problem is returned along with the index.
func (a *App) scopeIndex() (*orderedmap.OrderedMap, error) {
	index := orderedmap.New()
	pending := deque.New()
	var firstErr error

	enqueue := func(cmds []*Command, parent string) {
		for _, cmd := range cmds {
			if cmd.name == "" {
				if firstErr == nil {
					firstErr = errs.ErrInvalidDefinition.Wrap(errs.ErrEmptyName.WithArgs(scopeLabel(a, parent)))
				}
				continue
			}

			path := cmd.name
			if parent != "" {
				path = parent + " " + cmd.name
			}
			if _, exists := index.Get(path); exists {
				if firstErr == nil {
					firstErr = errs.ErrInvalidDefinition.Wrap(errs.ErrDuplicateCommand.WithArgs(cmd.name, scopeLabel(a, parent)))
				}
				continue
			}

			index.Set(path, cmd)
			pending.PushBack(scopeNode{cmd: cmd, path: path})
		}
	}

	enqueue(a.commands, "")
	for pending.Len() > 0 {
		v, _ := pending.PopFront()
		node := v.(scopeNode)
		enqueue(node.cmd.subcommands, node.path)
	}

	return index, firstErr
}

func validateFlags(cmd *Command, path string) error {
	longs := orderedmap.New()
	singles := make(map[rune]*Flag)

	claim := func(r rune, flag *Flag) error {
		if other, exists := singles[r]; exists && other != flag {
			return errs.ErrInvalidDefinition.Wrap(errs.ErrShortFlagConflict.WithArgs(r, flag.long, other.long, path))
		}
		singles[r] = flag
		return nil
	}

	for _, flag := range cmd.flags {
		if flag.long == "" {
			return errs.ErrInvalidDefinition.Wrap(errs.ErrEmptyName.WithArgs(path))
		}
		if _, exists := longs.Get(flag.long); exists {
			return errs.ErrInvalidDefinition.Wrap(errs.ErrDuplicateFlag.WithArgs(flag.long, path))
		}
		longs.Set(flag.long, flag)

		// a one-character long name is reachable as -c as well
		if runes := []rune(flag.long); len(runes) == 1 {
			if err := claim(runes[0], flag); err != nil {
				return err
			}
		}
		if flag.hasShort {
			if err := claim(flag.short, flag); err != nil {
				return err
			}
		}
	}

	return nil
}

func scopeLabel(a *App, path string) string {
	if path != "" {
		return path
	}
	if a.name != "" {
		return a.name
	}

	return "/"
}
