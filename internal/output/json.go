package output

import (
	"encoding/json"
	"io"
)

// WriteJSON encodes v as a single line of JSON followed by a newline. HTML
// characters are not escaped so paths stay readable.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// WriteIndentedJSON encodes v as indented JSON for human consumption.
func WriteIndentedJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
