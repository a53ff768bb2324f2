// Package input provides the sources a Parser reads its tokens from when it is not handed
// them explicitly, and the terminal queries used when rendering usage.
package input

import (
	"io"
	"os"
	"slices"

	"github.com/google/shlex"
	"github.com/napalu/ecp/errs"
)

// ArgSource supplies the raw tokens to parse, index 0 being the program name
type ArgSource interface {
	Args() ([]string, error)
}

// ArgSourceFunc adapts a function to ArgSource
type ArgSourceFunc func() ([]string, error)

// Args calls f
func (f ArgSourceFunc) Args() ([]string, error) {
	return f()
}

// OSArgs reads the arguments of the current process
type OSArgs struct{}

// Args returns a copy of os.Args
func (OSArgs) Args() ([]string, error) {
	return slices.Clone(os.Args), nil
}

// StaticArgs is a fixed token list
type StaticArgs []string

// Args returns a copy of the tokens
func (s StaticArgs) Args() ([]string, error) {
	return slices.Clone([]string(s)), nil
}

// StringArgs is a complete command line, program name included, split with shell quoting rules
type StringArgs string

// Args splits the command line into tokens
func (s StringArgs) Args() ([]string, error) {
	tokens, err := shlex.Split(string(s))
	if err != nil {
		return nil, errs.ErrIo.Wrap(errs.ErrSplitArguments.Wrap(err))
	}

	return tokens, nil
}

// ReaderArgs reads everything from Reader and splits it with shell quoting rules. When Program
// is set it is prepended as the program token.
type ReaderArgs struct {
	Reader  io.Reader
	Program string
}

// Args reads and splits the tokens
func (r ReaderArgs) Args() ([]string, error) {
	data, err := io.ReadAll(r.Reader)
	if err != nil {
		return nil, errs.ErrIo.Wrap(errs.ErrReadArguments.Wrap(err))
	}

	tokens, err := shlex.Split(string(data))
	if err != nil {
		return nil, errs.ErrIo.Wrap(errs.ErrSplitArguments.Wrap(err))
	}

	if r.Program != "" {
		tokens = append([]string{r.Program}, tokens...)
	}

	return tokens, nil
}
