package rider

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// xmlNode is a generic element tree; the history file format is owned by
// Rider, so only the one path we query is interpreted.
type xmlNode struct {
	XMLName  xml.Name
	Attrs    []xml.Attr `xml:",any,attr"`
	Children []xmlNode  `xml:",any"`
}

func (n *xmlNode) attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *xmlNode) is(local string) bool {
	return n.XMLName.Local == local
}

// ParseSessionHistory decodes a recentSolutions.xml document and returns the
// stored solution paths in document order. Paths are the values of
// <option value="..."/> entries inside the list of any
// <option name="recentPaths"> element.
func ParseSessionHistory(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)
	var root xmlNode
	if err := dec.Decode(&root); err != nil {
		return nil, fmt.Errorf("decoding xml: %w", err)
	}
	if err := expectEOF(dec); err != nil {
		return nil, err
	}

	var paths []string
	var walk func(n *xmlNode) error
	walk = func(n *xmlNode) error {
		if name, _ := n.attr("name"); n.is("option") && name == "recentPaths" {
			for i := range n.Children {
				list := &n.Children[i]
				if !list.is("list") {
					continue
				}
				for j := range list.Children {
					entry := &list.Children[j]
					if !entry.is("option") {
						continue
					}
					value, ok := entry.attr("value")
					if !ok {
						return fmt.Errorf("recentPaths entry %d has no value attribute", j)
					}
					paths = append(paths, value)
				}
			}
		}
		for i := range n.Children {
			if err := walk(&n.Children[i]); err != nil {
				return err
			}
		}
		return nil
	}
	// Only descendants of the document element are searched.
	for i := range root.Children {
		if err := walk(&root.Children[i]); err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// expectEOF consumes the rest of the document and rejects any element or
// non-whitespace text after the document element. Comments and processing
// instructions are allowed.
func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decoding xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("decoding xml: junk after document element: <%s>", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return fmt.Errorf("decoding xml: junk after document element: %q", string(bytes.TrimSpace(t)))
			}
		}
	}
}

// ParseSessionHistoryFile opens path and parses it with ParseSessionHistory.
// A missing file is an error.
func ParseSessionHistoryFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ParseSessionHistory(f)
}
