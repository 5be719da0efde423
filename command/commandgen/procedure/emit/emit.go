package emit

import (
	"fmt"
	"sort"
	"strings"

	"go.scnd.dev/open/commandgen/command/commandgen/procedure/extract"
	"go.scnd.dev/open/commandgen/package/erroring"
)

// MultiLinePrefix marks a command whose reply spans several lines.
const MultiLinePrefix = "+"

// Emitter renders declarations for one target language.
type Emitter interface {
	// Header returns the provenance comment line, optionally followed by
	// language preamble lines.
	Header(generator string) []string
	Declaration(entry extract.Entry) []string
}

type Document struct {
	Lines []string
}

func (r *Document) String() string {
	return strings.Join(r.Lines, "\n") + "\n"
}

func Render(emitter Emitter, generator string, entries []extract.Entry) *Document {
	lines := make([]string, 0, len(entries)+2)
	lines = append(lines, emitter.Header(generator)...)
	for _, entry := range entries {
		lines = append(lines, emitter.Declaration(entry)...)
	}

	return &Document{
		Lines: lines,
	}
}

// Value is the string literal content of a declaration.
func Value(entry extract.Entry) string {
	if entry.Category == extract.CategoryMultiLine {
		return MultiLinePrefix + entry.Name
	}
	return entry.Name
}

var languages = map[string]func() Emitter{
	"java": func() Emitter { return NewJava() },
	"go":   func() Emitter { return NewGolang("") },
}

func Languages() []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Lookup(language string) (Emitter, error) {
	constructor, ok := languages[language]
	if !ok {
		return nil, erroring.Config(fmt.Sprintf("unsupported language: %s (supported: %s)", language, strings.Join(Languages(), ", ")), nil)
	}
	return constructor(), nil
}
