package emit

import (
	"fmt"
	"strings"

	"github.com/lithammer/dedent"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/extract"
)

var golangPackage = dedent.Dedent(`
	package %s
`)

// Golang emits top-level constants. When Package is empty only the
// declarations are written, for appending to an existing file.
type Golang struct {
	Package string
}

func NewGolang(pkg string) *Golang {
	return &Golang{
		Package: pkg,
	}
}

func (r *Golang) Header(generator string) []string {
	lines := []string{
		fmt.Sprintf("// Code generated by %s. DO NOT EDIT.", generator),
	}
	if r.Package != "" {
		lines = append(lines, strings.Split(fmt.Sprintf(golangPackage, r.Package), "\n")...)
	}
	return lines
}

func (r *Golang) Declaration(entry extract.Entry) []string {
	declaration := fmt.Sprintf("const %s = %q", entry.Name, Value(entry))
	if entry.Category == extract.CategoryObsolete {
		return []string{
			fmt.Sprintf("// Deprecated: %s is an obsolete control command.", entry.Name),
			declaration,
		}
	}
	return []string{declaration}
}
