package rider

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// DefaultPattern matches Rider's per-version configuration directories.
const DefaultPattern = ".Rider*"

// DefaultSessionFile is the location of the session history inside a
// configuration directory.
var DefaultSessionFile = filepath.Join("config", "options", "recentSolutions.xml")

// matchEntries returns the names of entries directly under home whose name
// matches pattern, sorted in descending lexicographic order.
func matchEntries(home, pattern string) ([]string, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	entries, err := os.ReadDir(home)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if ok, _ := filepath.Match(pattern, entry.Name()); ok {
			names = append(names, entry.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// LatestSessionFile returns the session history path inside the
// lexicographically greatest directory under home matching pattern. The
// greatest name stands in for the most recent Rider version. ok is false
// when nothing matches.
func LatestSessionFile(home, pattern, rel string) (path string, ok bool, err error) {
	names, err := matchEntries(home, pattern)
	if err != nil {
		return "", false, err
	}
	if len(names) == 0 {
		return "", false, nil
	}
	return filepath.Join(home, names[0], rel), true, nil
}

// ListInstallations returns every configuration directory under home that
// matches pattern, newest first.
func ListInstallations(home, pattern, rel string) ([]Installation, error) {
	names, err := matchEntries(home, pattern)
	if err != nil {
		return nil, err
	}

	installs := make([]Installation, 0, len(names))
	for _, name := range names {
		dir := filepath.Join(home, name)
		sessionFile := filepath.Join(dir, rel)
		info, err := os.Stat(sessionFile)
		installs = append(installs, Installation{
			Name:           name,
			Path:           dir,
			SessionFile:    sessionFile,
			HasSessionFile: err == nil && info.Mode().IsRegular(),
		})
	}
	return installs, nil
}
