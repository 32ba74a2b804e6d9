// Package segfile reads structured-doc corpus files: well-formed XML
// containing <doc docid="…"> elements, each optionally carrying a <title>,
// a <description>, and any number of <seg id="…"> elements.
//
// Extracted units are keyed "docid-{D}_title", "docid-{D}_desc", and
// "docid-{D}_segid-{S}", with D and S taken verbatim from the attributes.
// A document that repeats its title or description keeps the last value
// (last write wins); a doc without a docid, or a seg without an id, is a
// fatal parse error — ids are never guessed.
package segfile

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/mt-corpora/bitext/record"
)

// Parse extracts all titles, descriptions and segments of r.
func Parse(r io.Reader) (*record.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading structured corpus file: %w", err)
	}

	rec := record.NewRecord()
	dec := xml.NewDecoder(bytes.NewReader(data))

	var doc record.DocKey
	inDoc := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineAt(data, dec.InputOffset()), err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "doc":
				id, ok := attr(t, "docid")
				if !ok {
					return nil, fmt.Errorf("line %d: <doc> element without docid attribute", lineAt(data, dec.InputOffset()))
				}
				doc = record.NewDocKey(id)
				inDoc = true
			case "title", "description", "seg":
				if !inDoc {
					// Stray element outside any <doc>; skip its subtree.
					if err := dec.Skip(); err != nil {
						return nil, fmt.Errorf("line %d: %w", lineAt(data, dec.InputOffset()), err)
					}
					continue
				}
				var key record.Key
				switch t.Name.Local {
				case "title":
					key = doc.Title()
				case "description":
					key = doc.Desc()
				case "seg":
					id, ok := attr(t, "id")
					if !ok {
						return nil, fmt.Errorf("line %d: <seg> element without id attribute", lineAt(data, dec.InputOffset()))
					}
					key = doc.Seg(id)
				}
				text, err := innerText(dec)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineAt(data, dec.InputOffset()), err)
				}
				rec.Set(key, text)
			}
		case xml.EndElement:
			if t.Name.Local == "doc" {
				inDoc = false
			}
		}
	}

	return rec, nil
}

// attr returns the value of the named attribute on a start element.
func attr(el xml.StartElement, name string) (string, bool) {
	for _, a := range el.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// innerText consumes tokens up to the element's matching end tag and
// returns the concatenated character data, trimmed, with nested markup
// stripped.
func innerText(dec *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 0
	for {
		tok, err := dec.Token()
		if err != nil {
			return "", err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				return strings.TrimSpace(sb.String()), nil
			}
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}
}

// lineAt returns the 1-based line number of a byte offset.
func lineAt(data []byte, off int64) int {
	if off > int64(len(data)) {
		off = int64(len(data))
	}
	return 1 + bytes.Count(data[:off], []byte("\n"))
}
