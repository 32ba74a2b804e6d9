// Package record defines the data model shared by all corpus loaders:
// segment keys, insertion-ordered key→text records, and the Example unit
// emitted to the host framework.
package record

import (
	"fmt"
	"strconv"
)

// Key identifies one extracted text unit within a file.
//
// Structured formats use composite keys built from document and segment
// identifiers; plain formats use the line index and never construct a Key.
type Key string

// SegKey returns the key for segment seg of document doc, both counted
// from 1 by the inline-segment extractor.
func SegKey(doc, seg int) Key {
	return Key(fmt.Sprintf("docid-%d_segid-%d", doc, seg))
}

// DocKey is the per-document key prefix for structured-doc files. The
// document id is taken verbatim from the docid attribute.
type DocKey string

// NewDocKey builds a DocKey from a document id attribute value.
func NewDocKey(docID string) DocKey {
	return DocKey("docid-" + docID)
}

// Title returns the document's title key.
func (d DocKey) Title() Key { return Key(d) + "_title" }

// Desc returns the document's description key.
func (d DocKey) Desc() Key { return Key(d) + "_desc" }

// Seg returns the key for the segment with the given id attribute value.
func (d DocKey) Seg(segID string) Key { return Key(d) + Key("_segid-"+segID) }

// Record is an insertion-ordered mapping from Key to text, one per parsed
// file. Iteration order is the order keys were first set, which keeps
// corpus generation deterministic across runs.
type Record struct {
	keys []Key
	text map[Key]string
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{text: make(map[Key]string)}
}

// Set stores text under key. Setting an existing key overwrites the text
// but keeps the key's original position (last write wins).
func (r *Record) Set(key Key, text string) {
	if _, ok := r.text[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.text[key] = text
}

// Get returns the text for key and whether it is present.
func (r *Record) Get(key Key) (string, bool) {
	t, ok := r.text[key]
	return t, ok
}

// Keys returns all keys in insertion order.
func (r *Record) Keys() []Key {
	out := make([]Key, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of keys.
func (r *Record) Len() int { return len(r.keys) }

// Example is one aligned translation pair as handed to the host
// framework. Translation holds exactly two entries keyed by language code.
// URL and Probability are populated only by corpora whose schema declares
// them (see builder.DatasetInfo); Probability is a pointer so a declared
// score of exactly 0 still serializes.
type Example struct {
	Translation map[string]string `json:"translation"`
	URL         string            `json:"url,omitempty"`
	Probability *float64          `json:"probability,omitempty"`
}

// NewExample builds an Example for one aligned pair.
func NewExample(srcLang, srcText, tgtLang, tgtText string) Example {
	return Example{Translation: map[string]string{srcLang: srcText, tgtLang: tgtText}}
}

// IntID renders a positional id the way integer-keyed corpora emit it.
func IntID(i int) string { return strconv.Itoa(i) }
