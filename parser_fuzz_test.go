package ecp

import (
	"slices"
	"testing"

	"github.com/google/shlex"
	"github.com/napalu/ecp/errs"
	"github.com/stretchr/testify/assert"
)

func FuzzParse(f *testing.F) {
	f.Add("ecp cargo run -r --locked port 8080")
	f.Add("ecp cargo")
	f.Add("ecp")
	f.Add("ecp git -")
	f.Add("ecp cargo run --")
	f.Add("ecp cargo build -ü -j")
	f.Add("-- cargo run -r")
	f.Add("ecp 漢字 -r")
	f.Fuzz(func(t *testing.T, rawArgs string) {
		args, err := shlex.Split(rawArgs)
		if err != nil {
			return
		}

		app := newTestApp()
		for _, relaxed := range []bool{false, true} {
			p, err := NewParserWith(WithRelaxedSubcommands(relaxed))
			if err != nil {
				t.Fatal(err)
			}

			result, err := p.Parse(app, args)
			if err != nil {
				assert.Nil(t, result)
				assert.NotEqual(t, errs.KindUnknown, errs.KindOf(err))
				assert.NotEmpty(t, p.ErrorMessage(err))
				continue
			}

			assert.GreaterOrEqual(t, len(args), 2)
			assert.Equal(t, args[1], result.Command())
			if sub, ok := result.Subcommand(); ok {
				assert.Equal(t, args[2], sub)
			}

			// flags are only reported when the input holds flag-shaped tokens
			for flag := range result.Flags() {
				assert.True(t, slices.ContainsFunc(args, func(arg string) bool {
					return isFlag(arg)
				}), flag)
			}

			again, err := p.Parse(app, args)
			assert.NoError(t, err)
			assert.Equal(t, result, again)
		}
	})
}
