package inspect

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.scnd.dev/open/commandgen/command/commandgen/app"
	"go.scnd.dev/open/commandgen/package/erroring"
)

func TestRunPrintsSummaryAndTree(t *testing.T) {
	directory := t.TempDir()
	text := "static const control_cmd_def_t CONTROL_COMMANDS[] = {\n" +
		"  ONE_LINE(getinfo, 0),\n  OBSOLETE(getinfo),\n  MULTLINE(loadconf, 0),\n};\n"
	if err := os.WriteFile(filepath.Join(directory, "control_cmd.c"), []byte(text), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	var stdout bytes.Buffer
	if err := Run(app.New(false, directory, &stdout), &Command{Source: "control_cmd.c"}); err != nil {
		t.Fatalf("Failed to inspect: %v", err)
	}

	output := stdout.String()
	for _, expected := range []string{"commands:   3", "duplicates: GETINFO", "CONTROL_COMMANDS", "multiline (1)", "LOADCONF"} {
		if !strings.Contains(output, expected) {
			t.Errorf("Expected %q in output:\n%s", expected, output)
		}
	}
}

func TestRunMissingTable(t *testing.T) {
	directory := t.TempDir()
	if err := os.WriteFile(filepath.Join(directory, "control_cmd.c"), []byte("/* empty */"), 0644); err != nil {
		t.Fatalf("Failed to write source: %v", err)
	}

	var stdout bytes.Buffer
	err := Run(app.New(false, directory, &stdout), &Command{Source: "control_cmd.c"})
	if !errors.Is(err, erroring.ErrExtraction) {
		t.Fatalf("Expected ExtractionError, got %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("Expected no output, got %q", stdout.String())
	}
}
