package contract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panglars/VeRForTe/schema"
)

func TestMapSourceGlob(t *testing.T) {
	src := MapSource{
		"mars/README.md":         []byte("m"),
		"visionfive2/README.md":  []byte("v"),
		"assets/metadata.yml":    []byte("a"),
		"mars/debian/debian.md":  []byte("d"),
		"visionfive2/others.yml": []byte("o"),
	}

	paths, err := src.Glob("*/README.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"mars/README.md", "visionfive2/README.md"}, paths, "results are sorted")

	paths, err = src.Glob("*/*/*.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"mars/debian/debian.md"}, paths)

	paths, err = src.Glob("*/nothing.yml")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestMapSourceReadFile(t *testing.T) {
	src := MapSource{"a/b.md": []byte("content")}

	data, err := src.ReadFile("a/b.md")
	require.NoError(t, err)
	assert.Equal(t, []byte("content"), data)

	_, err = src.ReadFile("missing")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOSSource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "mars"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mars", "README.md"), []byte("hello"), 0o644))

	src := NewOSSource(dir)

	paths, err := src.Glob("*/README.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"mars/README.md"}, paths, "paths are root-relative and slash-separated")

	data, err := src.ReadFile("mars/README.md")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "-", StatusLabel("", false))
	assert.Equal(t, "GOOD", StatusLabel(schema.GoodStatus, false))
	assert.Equal(t, "WEIRD", StatusLabel(schema.Status("WEIRD"), true), "unknown statuses stay uncolored")
}
