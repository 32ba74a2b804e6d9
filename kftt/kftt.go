// Package kftt loads the Kyoto Free Translation Task corpus: Japanese–
// English sentence pairs from Wikipedia articles related to Kyoto, stored
// as plain line-aligned files with four splits (train/dev/test/tune).
package kftt

import (
	"fmt"
	"io"

	"github.com/mt-corpora/bitext/align"
	"github.com/mt-corpora/bitext/builder"
	"github.com/mt-corpora/bitext/langpair"
	"github.com/mt-corpora/bitext/plainfile"
	"github.com/mt-corpora/bitext/record"
)

const (
	description = `The Kyoto Free Translation Task is a task for Japanese-English translation that focuses
on Wikipedia articles related to Kyoto. The data used was originally prepared by the
National Institute for Information and Communication Technology (NICT) and released as
the Japanese-English Bilingual Corpus of Wikipedia's Kyoto Articles (we are simply using
the data, NICT does not specifically endorse or sponsor this task).`

	citation = `@misc{neubig11kftt,
    author = {Graham Neubig},
    title = {The {Kyoto} Free Translation Task},
    howpublished = {http://www.phontron.com/kftt},
    year = {2011}
}`

	homepage = "http://www.phontron.com/kftt/"
	license  = "Creative Commons Attribution-Share-Alike License 3.0 (CC BY-SA 3.0)"

	// pathTmpl is the archive-relative location of one side of a split.
	pathTmpl = "kftt-data-1.0/data/orig/kyoto-%s.%s"
)

// policy: the pair must be en and ja, in either direction.
var policy = langpair.NewPivot("en", "ja")

func init() {
	builder.Register(builder.Registration{
		Name:        "kftt",
		Factory:     func(source, target string) (builder.Builder, error) { return New(source, target) },
		Pairs:       policy.Pairs(),
		DefaultPair: [2]string{"en", "ja"},
	})
}

// Builder is the KFTT corpus configured for one direction.
type Builder struct {
	pair langpair.Pair
}

// New validates the language pair and returns a configured Builder.
func New(source, target string) (*Builder, error) {
	pair, err := policy.New(source, target)
	if err != nil {
		return nil, fmt.Errorf("kftt: %w", err)
	}
	return &Builder{pair: pair}, nil
}

// Info implements builder.Builder.
func (b *Builder) Info() builder.DatasetInfo {
	return builder.DatasetInfo{
		Name:        "kftt",
		Version:     "1.0.0",
		Description: description,
		Homepage:    homepage,
		Citation:    citation,
		License:     license,
		Pair:        b.pair,
		Supervised:  true,
		KeyKind:     builder.KeyInt,
	}
}

// Splits implements builder.Builder. The archive's "dev" files back the
// validation split; "tune" is the KFTT-specific tuning split.
func (b *Builder) Splits() []builder.SplitGenerator {
	gen := func(archiveSplit string) func(builder.Source, builder.EmitFunc) error {
		return func(src builder.Source, emit builder.EmitFunc) error {
			return b.generate(src, archiveSplit, emit)
		}
	}
	return []builder.SplitGenerator{
		{Split: builder.Train, Generate: gen("train")},
		{Split: builder.Validation, Generate: gen("dev")},
		{Split: builder.Test, Generate: gen("test")},
		{Split: builder.Tune, Generate: gen("tune")},
	}
}

// generate reads both sides of one split from the source and emits the
// positionally aligned pairs. Ids are line indices; pairs with an empty
// side are skipped.
func (b *Builder) generate(src builder.Source, archiveSplit string, emit builder.EmitFunc) error {
	sourcePath := fmt.Sprintf(pathTmpl, archiveSplit, b.pair.Source())
	targetPath := fmt.Sprintf(pathTmpl, archiveSplit, b.pair.Target())

	var sourceLines, targetLines []string
	haveSource, haveTarget := false, false

	err := src.Walk(func(path string, r io.Reader) error {
		var err error
		switch path {
		case sourcePath:
			sourceLines, err = plainfile.Parse(r)
			haveSource = true
		case targetPath:
			targetLines, err = plainfile.Parse(r)
			haveTarget = true
		}
		if err != nil {
			return err
		}
		if haveSource && haveTarget {
			return builder.ErrStopWalk
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("kftt %s: %w", archiveSplit, err)
	}
	if !haveSource {
		return fmt.Errorf("kftt %s: corpus file %s not found", archiveSplit, sourcePath)
	}
	if !haveTarget {
		return fmt.Errorf("kftt %s: corpus file %s not found", archiveSplit, targetPath)
	}

	err = align.Positional(sourceLines, targetLines, func(i int, srcText, tgtText string) bool {
		ex := record.NewExample(b.pair.Source(), srcText, b.pair.Target(), tgtText)
		return emit(record.IntID(i), ex)
	})
	if err != nil {
		return fmt.Errorf("kftt %s (%s vs %s): %w", archiveSplit, sourcePath, targetPath, err)
	}
	return nil
}
