package emit

import (
	"io"
	"os"
	"path/filepath"

	"go.scnd.dev/open/commandgen/package/erroring"
)

// Write hands the whole document to w in a single call.
func Write(w io.Writer, doc *Document) error {
	if _, err := io.WriteString(w, doc.String()); err != nil {
		return erroring.IO("failed to write output", err)
	}
	return nil
}

// WriteFile replaces path with the document through a temporary sibling, so
// an interrupted run leaves either the old file or the new one.
func WriteFile(path string, doc *Document) error {
	// * ensure directory
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return erroring.IO("failed to create output directory", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, []byte(doc.String()), 0644); err != nil {
		_ = os.Remove(tempPath)
		return erroring.IO("failed to write temp file", err)
	}

	// * replace the original file
	if err := os.Rename(tempPath, path); err != nil {
		_ = os.Remove(tempPath)
		return erroring.IO("failed to replace output file", err)
	}

	return nil
}
