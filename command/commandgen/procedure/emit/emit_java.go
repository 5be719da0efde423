package emit

import (
	"fmt"

	"go.scnd.dev/open/commandgen/command/commandgen/procedure/extract"
)

// Java emits class members for TorControlCommands.java, indented one level.
type Java struct {
	Indent string
}

func NewJava() *Java {
	return &Java{
		Indent: "    ",
	}
}

func (r *Java) Header(generator string) []string {
	return []string{
		fmt.Sprintf("%s// generated by %s", r.Indent, generator),
	}
}

func (r *Java) Declaration(entry extract.Entry) []string {
	declaration := fmt.Sprintf("%spublic static final String %s = %q;", r.Indent, entry.Name, Value(entry))
	if entry.Category == extract.CategoryObsolete {
		return []string{
			r.Indent + "@Deprecated",
			declaration,
		}
	}
	return []string{declaration}
}
