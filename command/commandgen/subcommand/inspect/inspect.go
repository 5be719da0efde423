package inspect

import (
	"github.com/bsthun/gut"
	"go.scnd.dev/open/commandgen/command/commandgen/app"
	"go.scnd.dev/open/commandgen/command/commandgen/index"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/extract"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/printer"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/source"
)

type Command struct {
	Source string `help:"Path to control_cmd.c." short:"s"`
	Table  string `help:"Name of the command table."`
}

func (r *Command) Run(app *app.App) error {
	return Run(app, r)
}

func (r *Command) Override(cfg *index.Config) {
	if r.Source != "" {
		cfg.Source = gut.Ptr(r.Source)
	}
	if r.Table != "" {
		if cfg.Table == nil {
			cfg.Table = new(index.ConfigTable)
		}
		cfg.Table.Name = gut.Ptr(r.Table)
	}
}

// Run prints a summary and the category tree. Duplicated names are reported
// but never rejected.
func Run(a *app.App, command *Command) error {
	cfg, err := a.Load(command.Override)
	if err != nil {
		return err
	}

	extractor, err := extract.New(cfg.ExtractTable())
	if err != nil {
		return err
	}

	src, err := source.Load(a.Path(*cfg.Source))
	if err != nil {
		return err
	}

	entries, err := extractor.Extract(*src.Text)
	if err != nil {
		return err
	}

	if err := printer.PrintSummary(a.Stdout(), *src.Path, entries); err != nil {
		return err
	}
	return printer.PrintTree(a.Stdout(), *cfg.Table.Name, entries)
}
