package extract

// Category is the response framing of a control command.
type Category int

const (
	CategorySingleLine Category = iota
	CategoryMultiLine
	CategoryObsolete
)

func (r Category) String() string {
	switch r {
	case CategoryMultiLine:
		return "multiline"
	case CategoryObsolete:
		return "obsolete"
	default:
		return "singleline"
	}
}

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{CategorySingleLine, CategoryMultiLine, CategoryObsolete}
}

// Entry is one command captured from the table, name already upper-cased.
type Entry struct {
	Category Category
	Name     string
}
