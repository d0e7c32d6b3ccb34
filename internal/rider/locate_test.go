package rider

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestSessionFile_PicksGreatestName(t *testing.T) {
	home := t.TempDir()
	for _, dir := range []string{".Rider2022.3", ".Rider2023.1", ".Rider2019.2", ".config"} {
		require.NoError(t, os.MkdirAll(filepath.Join(home, dir), 0o755))
	}

	path, ok, err := LatestSessionFile(home, DefaultPattern, DefaultSessionFile)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(home, ".Rider2023.1", "config", "options", "recentSolutions.xml"), path)
}

func TestLatestSessionFile_NoMatch(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".IntelliJIdea2023.1"), 0o755))

	path, ok, err := LatestSessionFile(home, DefaultPattern, DefaultSessionFile)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, path)
}

func TestLatestSessionFile_MissingHome(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nope")

	_, ok, err := LatestSessionFile(home, DefaultPattern, DefaultSessionFile)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLatestSessionFile_InvalidPattern(t *testing.T) {
	_, _, err := LatestSessionFile(t.TempDir(), "[", DefaultSessionFile)
	assert.Error(t, err)
}

func TestListInstallations(t *testing.T) {
	home := t.TempDir()
	writeHistory(t, home, ".Rider2023.1")
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".Rider2022.3"), 0o755))

	installs, err := ListInstallations(home, DefaultPattern, DefaultSessionFile)
	require.NoError(t, err)
	require.Len(t, installs, 2)

	assert.Equal(t, ".Rider2023.1", installs[0].Name)
	assert.True(t, installs[0].HasSessionFile)
	assert.Equal(t, ".Rider2022.3", installs[1].Name)
	assert.False(t, installs[1].HasSessionFile)
	assert.Equal(t, filepath.Join(home, ".Rider2022.3"), installs[1].Path)
}
