package index

import "io"

type App interface {
	Verbose() *bool
	Directory() *string
	Config() *Config
	Stdout() io.Writer
	Path(path string) string
}
