package generate

import (
	"log"

	"github.com/bsthun/gut"
	"go.scnd.dev/open/commandgen/command/commandgen/app"
	"go.scnd.dev/open/commandgen/command/commandgen/index"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/emit"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/extract"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/source"
)

type Command struct {
	Source   string `help:"Path to control_cmd.c." short:"s"`
	Table    string `help:"Name of the command table."`
	Language string `help:"Target language (java, go)." short:"l"`
	Package  string `help:"Package clause for Go output."`
	Output   string `help:"Write to this file instead of stdout." short:"o"`
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
	if r.Language != "" {
		cfg.Language = gut.Ptr(r.Language)
	}
	if r.Package != "" {
		cfg.Package = gut.Ptr(r.Package)
	}
	if r.Output != "" {
		cfg.Output = gut.Ptr(r.Output)
	}
}

func Run(a *app.App, command *Command) error {
	cfg, err := a.Load(command.Override)
	if err != nil {
		return err
	}

	doc, err := Generate(a, cfg)
	if err != nil {
		return err
	}

	// * single write, only after extraction succeeded
	if *cfg.Output != "" {
		if err := emit.WriteFile(a.Path(*cfg.Output), doc); err != nil {
			return err
		}
		if *a.Verbose() {
			log.Printf("wrote %s", *cfg.Output)
		}
		return nil
	}

	return emit.Write(a.Stdout(), doc)
}

// Generate runs load, extract and render without writing anything.
func Generate(a index.App, cfg *index.Config) (*emit.Document, error) {
	// * construct emitter first so a bad language fails before reading
	emitter, err := emit.Lookup(*cfg.Language)
	if err != nil {
		return nil, err
	}
	switch e := emitter.(type) {
	case *emit.Java:
		e.Indent = *cfg.Indent
	case *emit.Golang:
		e.Package = *cfg.Package
	}

	extractor, err := extract.New(cfg.ExtractTable())
	if err != nil {
		return nil, err
	}

	// * load upstream source
	src, err := source.Load(a.Path(*cfg.Source))
	if err != nil {
		return nil, err
	}

	// * extract command table
	entries, err := extractor.Extract(*src.Text)
	if err != nil {
		return nil, err
	}
	if *a.Verbose() {
		log.Printf("extracted %d commands from %s", len(entries), *src.Path)
	}

	return emit.Render(emitter, app.Name, entries), nil
}
