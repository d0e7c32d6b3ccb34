package rider

import (
	"os/user"
	"strings"
)

// UserHomePlaceholder is the token Rider writes in place of the user's home
// directory in stored paths.
const UserHomePlaceholder = "$USER_HOME$"

// DisplayPath rewrites the home placeholder of a stored path to "~" and
// normalizes it. The returned form is what the search provider shows to the
// user.
func DisplayPath(stored string) string {
	return normalizeSlashes(strings.ReplaceAll(stored, UserHomePlaceholder, "~"))
}

// normalizeSlashes drops empty and "." segments but keeps "..": collapsing
// "a/.." lexically can name a file that the real path does not reach.
func normalizeSlashes(p string) string {
	if p == "" {
		return ""
	}

	var segments []string
	for _, seg := range strings.Split(p, "/") {
		if seg == "" || seg == "." {
			continue
		}
		segments = append(segments, seg)
	}

	joined := strings.Join(segments, "/")
	if strings.HasPrefix(p, "/") {
		return "/" + joined
	}
	if joined == "" {
		return "."
	}
	return joined
}

// ExpandHome expands a leading "~" to home and a leading "~name" to that
// user's home directory. Paths with an unknown user or without a leading
// tilde are returned unchanged.
func ExpandHome(path, home string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}

	name, rest, _ := strings.Cut(path[1:], "/")
	dir := home
	if name != "" {
		u, err := user.Lookup(name)
		if err != nil {
			return path
		}
		dir = u.HomeDir
	}
	if rest == "" {
		return dir
	}
	if dir != "/" {
		dir = strings.TrimSuffix(dir, "/")
	}
	return dir + "/" + rest
}

