package index

import (
	"github.com/bsthun/gut"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/extract"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/source"
)

// Config represents the commandgen.yml configuration
type Config struct {
	Source   *string      `yaml:"source" validate:"required"`
	Table    *ConfigTable `yaml:"table" validate:"required"`
	Language *string      `yaml:"language" validate:"required,oneof=java go"`
	Package  *string      `yaml:"package"`
	Indent   *string      `yaml:"indent"`
	Output   *string      `yaml:"output"`
}

// ConfigTable names the initializer to extract. An empty type drops the type
// anchor from the search.
type ConfigTable struct {
	Type *string `yaml:"type"`
	Name *string `yaml:"name" validate:"required"`
}

func DefaultConfig() *Config {
	return &Config{
		Source: gut.Ptr(source.DefaultPath),
		Table: &ConfigTable{
			Type: gut.Ptr(extract.DefaultTableType),
			Name: gut.Ptr(extract.DefaultTableName),
		},
		Language: gut.Ptr("java"),
		Package:  gut.Ptr(""),
		Indent:   gut.Ptr("    "),
		Output:   gut.Ptr(""),
	}
}

// Revise fills every unset field from the defaults.
func (r *Config) Revise() {
	defaults := DefaultConfig()

	if r.Source == nil {
		r.Source = defaults.Source
	}
	if r.Table == nil {
		r.Table = defaults.Table
	}
	if r.Table.Type == nil {
		r.Table.Type = defaults.Table.Type
	}
	if r.Table.Name == nil {
		r.Table.Name = defaults.Table.Name
	}
	if r.Language == nil {
		r.Language = defaults.Language
	}
	if r.Package == nil {
		r.Package = defaults.Package
	}
	if r.Indent == nil {
		r.Indent = defaults.Indent
	}
	if r.Output == nil {
		r.Output = defaults.Output
	}
}

// ExtractTable builds the extractor description with the fixed category tags.
func (r *Config) ExtractTable() *extract.Table {
	table := extract.DefaultTable()
	table.Type = *r.Table.Type
	table.Name = *r.Table.Name
	return table
}
