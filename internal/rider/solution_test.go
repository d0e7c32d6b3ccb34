package rider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build_ReadsMarker(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "proj", "App.sln"), "  MySolution\n")

	b := Builder{Home: home, IDPrefix: DefaultIDPrefix}
	s, err := b.Build("~/proj/App.sln")
	require.NoError(t, err)

	abs := filepath.Join(home, "proj", "App.sln")
	assert.Equal(t, "MySolution", s.Name)
	assert.Equal(t, "~/proj/App.sln", s.Path)
	assert.Equal(t, abs, s.AbsPath)
	assert.Equal(t, DefaultIDPrefix+abs, s.ID)
}

func TestBuilder_Build_MissingMarker(t *testing.T) {
	home := t.TempDir()

	b := Builder{Home: home, IDPrefix: DefaultIDPrefix}
	s, err := b.Build("~/gone/App.sln")
	require.NoError(t, err)

	assert.Equal(t, "~/gone/App.sln", s.Name)
	assert.Equal(t, filepath.Join(home, "gone", "App.sln"), s.AbsPath)
}

func TestBuilder_Build_UnreadableMarker(t *testing.T) {
	home := t.TempDir()
	// A directory cannot be read as a file; the error is not "not exist".
	require.NoError(t, os.MkdirAll(filepath.Join(home, "proj", "App.sln"), 0o755))

	b := Builder{Home: home, IDPrefix: DefaultIDPrefix}
	_, err := b.Build("~/proj/App.sln")
	assert.Error(t, err)
}

func TestBuilder_Build_InvalidUTF8Marker(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "App.sln"), "\xff\xfeAB")

	b := Builder{Home: home, IDPrefix: DefaultIDPrefix}
	_, err := b.Build("~/App.sln")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidMarker)
}

func TestBuilder_Build_DeterministicID(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "App.sln"), "App")

	b := Builder{Home: home, IDPrefix: DefaultIDPrefix}
	first, err := b.Build("~/App.sln")
	require.NoError(t, err)
	second, err := b.Build(filepath.Join(home, "App.sln"))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestBuilder_Exists(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, "App.sln"), "App")
	require.NoError(t, os.MkdirAll(filepath.Join(home, "dir.sln"), 0o755))

	b := Builder{Home: home}
	assert.True(t, b.Exists("~/App.sln"))
	assert.False(t, b.Exists("~/dir.sln"))
	assert.False(t, b.Exists("~/missing.sln"))
}
