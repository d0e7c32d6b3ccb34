package rider

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"
)

// DefaultIDPrefix namespaces solution IDs so they do not collide with IDs
// from other search providers.
const DefaultIDPrefix = "intellij-rider-search-provider-"

// ErrInvalidMarker is returned when a marker file is not valid UTF-8 text.
var ErrInvalidMarker = errors.New("marker file is not valid UTF-8")

// Builder turns stored history paths into Solution records.
type Builder struct {
	Home     string
	IDPrefix string
}

// Build creates the Solution for a display path (see DisplayPath). The name
// is the trimmed content of the marker file; when that file does not exist
// the display path is used instead. Other read errors, including content
// that is not UTF-8, are returned.
func (b Builder) Build(path string) (Solution, error) {
	abs := ExpandHome(path, b.Home)

	name := path
	data, err := os.ReadFile(abs)
	switch {
	case err == nil:
		if !utf8.Valid(data) {
			return Solution{}, fmt.Errorf("reading %s: %w", abs, ErrInvalidMarker)
		}
		name = strings.TrimSpace(string(data))
	case !errors.Is(err, fs.ErrNotExist):
		return Solution{}, err
	}

	return Solution{
		ID:      b.IDPrefix + abs,
		Name:    name,
		Path:    path,
		AbsPath: abs,
	}, nil
}

// Exists reports whether the display path expands to an existing regular
// file.
func (b Builder) Exists(path string) bool {
	info, err := os.Stat(ExpandHome(path, b.Home))
	return err == nil && info.Mode().IsRegular()
}
