// Package rider provides types and parsers for JetBrains Rider's local
// configuration data.
package rider

// Solution is a recently opened Rider solution as exposed to the search
// provider. The JSON field names are consumed by the shell extension and
// must not change.
type Solution struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Path    string `json:"path"`
	AbsPath string `json:"abspath"`
}

// RecentSolutions maps each solution's ID to the solution itself.
type RecentSolutions map[string]Solution

// Installation is a Rider configuration directory under the home directory,
// e.g. ~/.Rider2023.1.
type Installation struct {
	Name           string `json:"name"`
	Path           string `json:"path"`
	SessionFile    string `json:"session_file"`
	HasSessionFile bool   `json:"has_session_file"`
}
