package rider

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates parent directories and writes content to path.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// historyXML renders a recentSolutions.xml document listing paths.
func historyXML(paths ...string) string {
	var sb strings.Builder
	sb.WriteString(`<application>
  <component name="RiderRecentSolutionsManager">
    <option name="recentPaths">
      <list>
`)
	for _, p := range paths {
		sb.WriteString(`        <option value="` + p + `" />` + "\n")
	}
	sb.WriteString(`      </list>
    </option>
  </component>
</application>
`)
	return sb.String()
}

// writeHistory writes a session history for the given Rider directory name.
func writeHistory(t *testing.T, home, riderDir string, paths ...string) string {
	t.Helper()
	path := filepath.Join(home, riderDir, DefaultSessionFile)
	writeFile(t, path, historyXML(paths...))
	return path
}
