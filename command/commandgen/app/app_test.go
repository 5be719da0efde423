package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bsthun/gut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.scnd.dev/open/commandgen/command/commandgen/index"
	"go.scnd.dev/open/commandgen/package/erroring"
)

func TestLoadDefaultsWithoutConfigFile(t *testing.T) {
	a := New(false, t.TempDir(), new(bytes.Buffer))

	cfg, err := a.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "../tor/src/feature/control/control_cmd.c", *cfg.Source)
	assert.Equal(t, "control_cmd_def_t", *cfg.Table.Type)
	assert.Equal(t, "CONTROL_COMMANDS", *cfg.Table.Name)
	assert.Equal(t, "java", *cfg.Language)
	assert.Equal(t, "    ", *cfg.Indent)
	assert.Same(t, cfg, a.Config())
}

func TestLoadConfigFileAndOverride(t *testing.T) {
	directory := t.TempDir()
	content := "source: upstream/control_cmd.c\nlanguage: go\npackage: torcontrol\ntable:\n  name: COMMANDS\n"
	require.NoError(t, os.WriteFile(filepath.Join(directory, ConfigFile), []byte(content), 0644))

	a := New(true, directory, new(bytes.Buffer))
	cfg, err := a.Load(func(cfg *index.Config) {
		cfg.Package = gut.Ptr("control")
	})
	require.NoError(t, err)
	assert.Equal(t, "upstream/control_cmd.c", *cfg.Source)
	assert.Equal(t, "go", *cfg.Language)
	assert.Equal(t, "control", *cfg.Package)
	assert.Equal(t, "COMMANDS", *cfg.Table.Name)
	assert.Equal(t, "control_cmd_def_t", *cfg.Table.Type)

	table := cfg.ExtractTable()
	assert.Equal(t, "COMMANDS", table.Name)
	assert.Len(t, table.Tags, 3)
}

func TestLoadRejectsInvalidLanguage(t *testing.T) {
	a := New(false, t.TempDir(), new(bytes.Buffer))

	_, err := a.Load(func(cfg *index.Config) {
		cfg.Language = gut.Ptr("rust")
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, erroring.ErrConfig))
}

func TestPath(t *testing.T) {
	a := New(false, "/work", nil)
	assert.Equal(t, filepath.Join("/work", "control_cmd.c"), a.Path("control_cmd.c"))
	assert.Equal(t, "/abs/control_cmd.c", a.Path("/abs/control_cmd.c"))
	assert.Equal(t, "", a.Path(""))
	assert.Equal(t, ".", *New(false, "", nil).Directory())
}
