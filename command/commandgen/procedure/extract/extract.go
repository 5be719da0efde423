package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.scnd.dev/open/commandgen/package/erroring"
)

const (
	DefaultTableType = "control_cmd_def_t"
	DefaultTableName = "CONTROL_COMMANDS"
)

// Table describes the initializer to look for. Tags are the macro names that
// wrap each entry, "MULTLINE" is spelled the way control_cmd.c spells it.
type Table struct {
	Type string
	Name string
	Tags map[string]Category
}

func DefaultTable() *Table {
	return &Table{
		Type: DefaultTableType,
		Name: DefaultTableName,
		Tags: map[string]Category{
			"ONE_LINE": CategorySingleLine,
			"MULTLINE": CategoryMultiLine,
			"OBSOLETE": CategoryObsolete,
		},
	}
}

type Extractor struct {
	Table   *Table
	table   *regexp.Regexp
	entries *regexp.Regexp
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func New(table *Table) (*Extractor, error) {
	// * check table description
	if table == nil || table.Name == "" {
		return nil, erroring.Config("table name is required", nil)
	}
	if len(table.Tags) == 0 {
		return nil, erroring.Config("at least one category tag is required", nil)
	}
	for _, part := range []string{table.Type, table.Name} {
		if part != "" && !identifier.MatchString(part) {
			return nil, erroring.Config(fmt.Sprintf("invalid table identifier %q", part), nil)
		}
	}

	// * tags sorted so the compiled alternation is stable
	tags := make([]string, 0, len(table.Tags))
	for tag := range table.Tags {
		if !identifier.MatchString(tag) {
			return nil, erroring.Config(fmt.Sprintf("invalid category tag %q", tag), nil)
		}
		tags = append(tags, regexp.QuoteMeta(tag))
	}
	sort.Strings(tags)

	// * declaration up to the first closing brace, nested braces are not supported
	declaration := `\b` + regexp.QuoteMeta(table.Name) + `\s*\[\s*\]\s*=\s*\{([^}]*)\}`
	if table.Type != "" {
		declaration = `\b` + regexp.QuoteMeta(table.Type) + `\s+` + declaration
	}

	return &Extractor{
		Table:   table,
		table:   regexp.MustCompile(declaration),
		entries: regexp.MustCompile(`\b(` + strings.Join(tags, "|") + `)\(\s*([A-Za-z0-9_]+)`),
	}, nil
}

// Body returns the text between the braces of the first matching declaration.
func (r *Extractor) Body(text string) (string, error) {
	match := r.table.FindStringSubmatch(text)
	if match == nil {
		return "", erroring.Extraction(fmt.Sprintf("table %s not found", r.Table.Name), nil)
	}
	return match[1], nil
}

// Extract returns the table entries in source order. A table without any
// recognised entry yields an empty slice.
func (r *Extractor) Extract(text string) ([]Entry, error) {
	body, err := r.Body(text)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0)
	for _, match := range r.entries.FindAllStringSubmatch(body, -1) {
		category, ok := r.Table.Tags[match[1]]
		if !ok {
			continue
		}
		entries = append(entries, Entry{
			Category: category,
			Name:     strings.ToUpper(match[2]),
		})
	}

	return entries, nil
}

// Duplicates lists names that occur more than once, in first-seen order.
func Duplicates(entries []Entry) []string {
	counts := make(map[string]int)
	order := make([]string, 0)
	for _, entry := range entries {
		if counts[entry.Name] == 0 {
			order = append(order, entry.Name)
		}
		counts[entry.Name]++
	}

	duplicates := make([]string, 0)
	for _, name := range order {
		if counts[name] > 1 {
			duplicates = append(duplicates, name)
		}
	}
	return duplicates
}
