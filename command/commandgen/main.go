package main

import (
	"os"

	"github.com/alecthomas/kong"
	"go.scnd.dev/open/commandgen/command/commandgen/app"
	"go.scnd.dev/open/commandgen/command/commandgen/subcommand/generate"
	"go.scnd.dev/open/commandgen/command/commandgen/subcommand/inspect"
)

type Command struct {
	Verbose   bool              `help:"Enable verbose output." short:"v"`
	Directory string            `help:"Directory holding commandgen.yml, relative paths resolve against it." short:"C" default:"."`
	Generate  *generate.Command `cmd:"generate" default:"withargs" help:"Emit constants for the control command table."`
	Inspect   *inspect.Command  `cmd:"inspect" help:"Print the extracted command table as a tree."`
}

func main() {
	command := new(Command)
	ctx := kong.Parse(
		command,
		kong.Name(app.Name),
		kong.Description("Tor control command constant generator"),
	)
	err := ctx.Run(app.New(command.Verbose, command.Directory, os.Stdout))
	ctx.FatalIfErrorf(err)
}
