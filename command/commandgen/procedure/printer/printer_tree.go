package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddddddO/gtree"
	"github.com/lithammer/dedent"
	"go.scnd.dev/open/commandgen/command/commandgen/procedure/extract"
)

var summaryTemplate = dedent.Dedent(`
	source:     %s
	commands:   %d
	duplicates: %s
`)

// PrintTree writes the table as category branches holding command leaves.
// Categories without entries are left out.
func PrintTree(w io.Writer, table string, entries []extract.Entry) error {
	root := gtree.NewRoot(table)

	// * group in category order, entry order kept within each group
	for _, category := range extract.Categories() {
		names := make([]string, 0)
		for _, entry := range entries {
			if entry.Category == category {
				names = append(names, entry.Name)
			}
		}
		if len(names) == 0 {
			continue
		}

		node := root.Add(fmt.Sprintf("%s (%d)", category, len(names)))
		for _, name := range names {
			node.Add(name)
		}
	}

	return gtree.OutputFromRoot(w, root)
}

func PrintSummary(w io.Writer, path string, entries []extract.Entry) error {
	duplicates := "none"
	if found := extract.Duplicates(entries); len(found) > 0 {
		duplicates = strings.Join(found, ", ")
	}

	_, err := fmt.Fprintf(w, strings.TrimPrefix(summaryTemplate, "\n"), path, len(entries), duplicates)
	return err
}
