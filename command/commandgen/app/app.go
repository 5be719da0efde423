package app

import (
	"errors"
	"io"
	"io/fs"
	"log"
	"path/filepath"

	"go.scnd.dev/open/commandgen/command/commandgen/index"
	"go.scnd.dev/open/commandgen/common/config"
)

// Name identifies the generator in provenance headers.
const Name = "commandgen"

const ConfigFile = "commandgen.yml"

type App struct {
	verbose   bool
	directory string
	config    *index.Config
	stdout    io.Writer
}

func New(verbose bool, directory string, stdout io.Writer) *App {
	if directory == "" {
		directory = "."
	}
	return &App{
		verbose:   verbose,
		directory: directory,
		config:    nil,
		stdout:    stdout,
	}
}

func (r *App) Verbose() *bool {
	return &r.verbose
}

func (r *App) Directory() *string {
	return &r.directory
}

func (r *App) Config() *index.Config {
	return r.config
}

func (r *App) Stdout() io.Writer {
	return r.stdout
}

// Path resolves a relative path against the app directory.
func (r *App) Path(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(r.directory, path)
}

// Load reads commandgen.yml from the app directory, falling back to defaults
// when the file does not exist. Overrides are applied before validation.
func (r *App) Load(override func(*index.Config)) (*index.Config, error) {
	// * load configuration file
	cfg, err := config.New[index.Config](r.directory, ConfigFile)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if r.verbose {
			log.Printf("no %s found, using defaults", ConfigFile)
		}
		cfg = new(index.Config)
	}

	// * apply flags and defaults
	if override != nil {
		override(cfg)
	}
	cfg.Revise()

	// * validate final configuration
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	r.config = cfg
	return cfg, nil
}
