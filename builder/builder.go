// Package builder defines the narrow interface between corpus loaders and
// the host dataset framework: a builder describes its schema, names its
// splits, and lazily generates (id, example) pairs from an already
// downloaded file source. Downloading, archive extraction and persistence
// stay on the host's side of this interface.
package builder

import (
	"io"

	"github.com/mt-corpora/bitext/langpair"
	"github.com/mt-corpora/bitext/record"
)

// Split names a corpus partition.
type Split string

const (
	Train      Split = "train"
	Validation Split = "validation"
	Test       Split = "test"
	Tune       Split = "tune"
)

// KeyKind declares the type of a corpus's emitted example ids. It is part
// of the corpus schema and must not change between releases of a variant.
type KeyKind int

const (
	// KeyInt: ids are decimal renderings of a positional integer.
	KeyInt KeyKind = iota
	// KeyString: ids are structured keys (docid/segid composites).
	KeyString
)

// DatasetInfo describes one corpus variant's fixed schema and provenance.
type DatasetInfo struct {
	// Name is the corpus identifier, e.g. "kftt".
	Name string
	// Version of the corpus release, e.g. "1.0.0".
	Version string
	// Description of the corpus for dataset catalogs.
	Description string
	// Homepage of the corpus.
	Homepage string
	// Citation in BibTeX form.
	Citation string
	// License text or identifier.
	License string

	// Pair is the configured translation direction.
	Pair langpair.Pair
	// Supervised reports whether (source, target) form a supervised
	// (input, label) tuple for this corpus.
	Supervised bool

	// KeyKind is the emitted id type.
	KeyKind KeyKind
	// HasURL and HasProbability declare the optional Example metadata
	// fields this corpus populates.
	HasURL         bool
	HasProbability bool
}

// Source hands corpus files to a builder. Implementations are provided by
// the download/extraction collaborator; DirSource covers the common case
// of a locally extracted archive tree.
type Source interface {
	// Open opens one file by its corpus-relative slash path.
	// The caller closes the returned reader.
	Open(path string) (io.ReadCloser, error)
	// Walk calls fn for every available file in source order, the way an
	// archive is iterated member by member. fn's reader is only valid
	// during the call. A non-nil error from fn stops the walk; ErrStopWalk
	// stops it without failing.
	Walk(fn func(path string, r io.Reader) error) error
}

// EmitFunc receives one generated example. Returning false stops
// generation early (consumer-driven, e.g. smoke tests).
type EmitFunc func(id string, ex record.Example) bool

// SplitGenerator couples a split name with its lazy example generator.
type SplitGenerator struct {
	Split Split
	// Generate reads from src and emits aligned examples in a stable
	// order. It returns integrity errors; alignment misses and empty
	// pairs are filtered silently.
	Generate func(src Source, emit EmitFunc) error
}

// Builder is one configured corpus variant.
type Builder interface {
	// Info returns the variant's fixed schema.
	Info() DatasetInfo
	// Splits returns the split generators in canonical order.
	Splits() []SplitGenerator
}
