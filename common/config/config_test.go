package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.scnd.dev/open/commandgen/package/erroring"
)

type sample struct {
	Source   *string `yaml:"source" validate:"required"`
	Language *string `yaml:"language" validate:"required,oneof=java go"`
	Count    int     `yaml:"count"`
}

func TestNewReadsTemplatedYaml(t *testing.T) {
	t.Setenv("COMMANDGEN_TEST_SOURCE", "/tmp/control_cmd.c")
	directory := t.TempDir()
	content := "source: {{ env.COMMANDGEN_TEST_SOURCE || fallback.c }}\nlanguage: {{ env.COMMANDGEN_TEST_UNSET || go }}\ncount: {{ 3 }}\n"
	if err := os.WriteFile(filepath.Join(directory, "commandgen.yml"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := New[sample](directory, "commandgen.yml")
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if *config.Source != "/tmp/control_cmd.c" {
		t.Errorf("Expected source from env, got %s", *config.Source)
	}
	if *config.Language != "go" {
		t.Errorf("Expected fallback language go, got %s", *config.Language)
	}
	if config.Count != 3 {
		t.Errorf("Expected count 3, got %d", config.Count)
	}
	if err := Validate(config); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}
}

func TestNewMissingFile(t *testing.T) {
	_, err := New[sample](t.TempDir(), "commandgen.yml")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("Expected not-exist error, got %v", err)
	}
	if !errors.Is(err, erroring.ErrIO) {
		t.Errorf("Expected IOError kind, got %v", err)
	}
}

func TestNewInvalidYaml(t *testing.T) {
	directory := t.TempDir()
	if err := os.WriteFile(filepath.Join(directory, "commandgen.yml"), []byte("source: [unterminated\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	_, err := New[sample](directory, "commandgen.yml")
	if !errors.Is(err, erroring.ErrConfig) {
		t.Fatalf("Expected ConfigError, got %v", err)
	}
}

func TestValidateRejectsUnknownLanguage(t *testing.T) {
	source := "control_cmd.c"
	language := "python"
	err := Validate(&sample{Source: &source, Language: &language})
	if !errors.Is(err, erroring.ErrConfig) {
		t.Fatalf("Expected ConfigError, got %v", err)
	}
}

func TestTemplateEmptyWhenNothingResolves(t *testing.T) {
	output, err := Template([]byte("value: '{{ env.COMMANDGEN_TEST_UNSET }}'"))
	if err != nil {
		t.Fatalf("Failed to template: %v", err)
	}
	if string(output) != "value: ''" {
		t.Errorf("Expected empty replacement, got %q", string(output))
	}
}
