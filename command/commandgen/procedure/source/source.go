package source

import (
	"os"

	"go.scnd.dev/open/commandgen/package/erroring"
)

// DefaultPath is where the upstream command table lives relative to a
// checkout that sits next to the tor source tree.
const DefaultPath = "../tor/src/feature/control/control_cmd.c"

type Source struct {
	Path *string
	Text *string
}

func Load(path string) (*Source, error) {
	// * read whole file, no transformation
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, erroring.IO("failed to read source "+path, err)
	}

	text := string(bytes)
	return &Source{
		Path: &path,
		Text: &text,
	}, nil
}
