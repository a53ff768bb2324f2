// Package schema loads application definitions from YAML documents so a command surface can be
// described outside Go code.
//
// A definition looks like this:
//
//	name: ecp
//	version: 1.0.0
//	commands:
//	  - name: cargo
//	    description: Rust's package manager
//	    subcommands:
//	      - name: run
//	        flags:
//	          - long: release
//	            short: r
//	          - long: locked
package schema

import (
	"errors"
	"io"
	"os"

	"github.com/napalu/ecp"
	"github.com/napalu/ecp/errs"
	"gopkg.in/yaml.v3"
)

// Definition is the document form of an ecp.App
type Definition struct {
	Name        string              `yaml:"name"`
	Version     string              `yaml:"version,omitempty"`
	Description string              `yaml:"description,omitempty"`
	Commands    []CommandDefinition `yaml:"commands,omitempty"`
}

// CommandDefinition is the document form of an ecp.Command
type CommandDefinition struct {
	Name        string              `yaml:"name"`
	Description string              `yaml:"description,omitempty"`
	Subcommands []CommandDefinition `yaml:"subcommands,omitempty"`
	Flags       []FlagDefinition    `yaml:"flags,omitempty"`
}

// FlagDefinition is the document form of an ecp.Flag. Short is either empty or a single character.
type FlagDefinition struct {
	Long        string `yaml:"long"`
	Short       string `yaml:"short,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Decode reads one definition document from r. Fields the document format does not know are
// rejected.
func Decode(r io.Reader) (*Definition, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var def Definition
	if err := decoder.Decode(&def); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return nil, errs.ErrInvalidDefinition.Wrap(errs.ErrLoadDefinition.Wrap(err))
	}

	return &def, nil
}

// Build turns the definition into an App
func (d *Definition) Build() (*ecp.App, error) {
	app := ecp.NewApp(d.Name).
		Version(d.Version).
		Description(d.Description)

	for _, cd := range d.Commands {
		cmd, err := cd.build()
		if err != nil {
			return nil, err
		}
		app.Command(cmd)
	}

	return app, nil
}

func (c CommandDefinition) build() (*ecp.Command, error) {
	flags := make([]*ecp.Flag, 0, len(c.Flags))
	for _, fd := range c.Flags {
		flag, err := fd.build()
		if err != nil {
			return nil, err
		}
		flags = append(flags, flag)
	}

	subs := make([]*ecp.Command, 0, len(c.Subcommands))
	for _, sd := range c.Subcommands {
		sub, err := sd.build()
		if err != nil {
			return nil, err
		}
		subs = append(subs, sub)
	}

	return ecp.NewCommand(c.Name).Set(
		ecp.WithCommandDescription(c.Description),
		ecp.WithFlags(flags...),
		ecp.WithSubcommands(subs...)), nil
}

func (f FlagDefinition) build() (*ecp.Flag, error) {
	flag := ecp.NewFlag(f.Long).Description(f.Description)
	if f.Short == "" {
		return flag, nil
	}

	runes := []rune(f.Short)
	if len(runes) != 1 {
		return nil, errs.ErrInvalidDefinition.Wrap(errs.ErrInvalidShortFlag.WithArgs(f.Long, f.Short))
	}

	return flag.Short(runes[0]), nil
}

// FromApp converts app back into its document form. A nil app is reported as errs.ErrUnknown
// wrapping errs.ErrNilApp.
func FromApp(app *ecp.App) (*Definition, error) {
	if app == nil {
		return nil, errs.ErrUnknown.Wrap(errs.ErrNilApp)
	}

	def := &Definition{
		Name:        app.GetName(),
		Version:     app.GetVersion(),
		Description: app.GetDescription(),
	}
	for _, cmd := range app.GetCommands() {
		def.Commands = append(def.Commands, fromCommand(cmd))
	}

	return def, nil
}

func fromCommand(cmd *ecp.Command) CommandDefinition {
	cd := CommandDefinition{
		Name:        cmd.GetName(),
		Description: cmd.GetDescription(),
	}
	for _, flag := range cmd.GetFlags() {
		fd := FlagDefinition{
			Long:        flag.GetLong(),
			Description: flag.GetDescription(),
		}
		if short, ok := flag.GetShort(); ok {
			fd.Short = string(short)
		}
		cd.Flags = append(cd.Flags, fd)
	}
	for _, sub := range cmd.GetSubcommands() {
		cd.Subcommands = append(cd.Subcommands, fromCommand(sub))
	}

	return cd
}

// Load decodes a definition from r and builds the App it describes
func Load(r io.Reader) (*ecp.App, error) {
	def, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return def.Build()
}

// LoadFile loads the definition stored at path
func LoadFile(path string) (*ecp.App, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.ErrIo.Wrap(errs.ErrLoadDefinition.Wrap(err))
	}
	defer f.Close()

	return Load(f)
}

// Write encodes the document form of app to w
func Write(w io.Writer, app *ecp.App) error {
	def, err := FromApp(app)
	if err != nil {
		return err
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(def); err != nil {
		return err
	}

	return encoder.Close()
}
