// Package iwslt loads the IWSLT 2014 multilingual TED Talks corpus.
// Training data ships as loosely tagged text files (one per language,
// document boundaries marked by <url> lines); dev and test sets are
// structured seg XML. Alignment is keyed by document and segment id, so
// segments missing on one side are dropped rather than breaking the run.
package iwslt

import (
	"fmt"
	"io"

	"github.com/mt-corpora/bitext/align"
	"github.com/mt-corpora/bitext/builder"
	"github.com/mt-corpora/bitext/langpair"
	"github.com/mt-corpora/bitext/record"
	"github.com/mt-corpora/bitext/segfile"
	"github.com/mt-corpora/bitext/tagfile"
)

const (
	description = `The IWSLT 2014 Evaluation Campaign includes the MT track on TED Talks. In this edition, the official language pairs are five:

  from English to French
  from English to German
  from German to English
  from English to Italian
  from Italian to English

Optional tasks are proposed with English paired in both directions with other twelve languages:

  from/to English to/from Arabic, Spanish, Farsi, Hebrew, Dutch, Polish, Portuguese-Brazil, Romanian, Russian, Slovenian, Turkish and Chinese`

	citation = `@inproceedings{cettoloEtAl:EAMT2012,
Address = {Trento, Italy},
Author = {Mauro Cettolo and Christian Girardi and Marcello Federico},
Booktitle = {Proceedings of the 16$^{th}$ Conference of the European Association for Machine Translation (EAMT)},
Date = {28-30},
Month = {May},
Pages = {261--268},
Title = {WIT$^3$: Web Inventory of Transcribed and Translated Talks},
Year = {2012}}`

	homepage = "https://wit3.fbk.eu/2014-01"
)

// languages paired with English, in both directions.
var languages = []string{"ar", "de", "es", "fa", "he", "it", "nl", "pl", "pt-br", "ro", "ru", "sl", "tr", "zh"}

// devSubsets and testSubsets name the evaluation file groups per split.
var (
	devSubsets  = []string{"TED.dev2010", "TEDX.dev2012"}
	testSubsets = []string{"TED.tst2010", "TED.tst2011", "TED.tst2012"}
)

var policy = buildPolicy()

func buildPolicy() *langpair.ExactSet {
	var pairs [][2]string
	for _, lang := range languages {
		pairs = append(pairs, [2]string{lang, "en"})
	}
	for _, lang := range languages {
		pairs = append(pairs, [2]string{"en", lang})
	}
	return langpair.NewExactSet(pairs...)
}

func init() {
	builder.Register(builder.Registration{
		Name:        "iwslt14",
		Factory:     func(source, target string) (builder.Builder, error) { return New(source, target) },
		Pairs:       policy.Pairs(),
		DefaultPair: [2]string{"de", "en"},
	})
}

// Builder is the IWSLT14 corpus configured for one direction.
type Builder struct {
	pair langpair.Pair
}

// New validates the language pair and returns a configured Builder.
func New(source, target string) (*Builder, error) {
	pair, err := policy.New(source, target)
	if err != nil {
		return nil, fmt.Errorf("iwslt14: %w", err)
	}
	return &Builder{pair: pair}, nil
}

// Info implements builder.Builder.
func (b *Builder) Info() builder.DatasetInfo {
	return builder.DatasetInfo{
		Name:        "iwslt14",
		Version:     "1.0.0",
		Description: description,
		Homepage:    homepage,
		Citation:    citation,
		Pair:        b.pair,
		KeyKind:     builder.KeyInt,
	}
}

// trainPaths returns the (source, target) tagged training file pair.
func (b *Builder) trainPaths() [][2]string {
	pair := b.pair.Name()
	return [][2]string{{
		fmt.Sprintf("%s/train.tags.%s.%s", pair, pair, b.pair.Source()),
		fmt.Sprintf("%s/train.tags.%s.%s", pair, pair, b.pair.Target()),
	}}
}

// evalPaths returns the (source, target) seg XML file pairs for the named
// evaluation subsets.
func (b *Builder) evalPaths(subsets []string) [][2]string {
	pair := b.pair.Name()
	var out [][2]string
	for _, subset := range subsets {
		out = append(out, [2]string{
			fmt.Sprintf("%s/IWSLT14.%s.%s.%s.xml", pair, subset, pair, b.pair.Source()),
			fmt.Sprintf("%s/IWSLT14.%s.%s.%s.xml", pair, subset, pair, b.pair.Target()),
		})
	}
	return out
}

// Splits implements builder.Builder.
func (b *Builder) Splits() []builder.SplitGenerator {
	return []builder.SplitGenerator{
		{Split: builder.Train, Generate: func(src builder.Source, emit builder.EmitFunc) error {
			return b.generate(src, b.trainPaths(), tagfile.Parse, emit)
		}},
		{Split: builder.Validation, Generate: func(src builder.Source, emit builder.EmitFunc) error {
			return b.generate(src, b.evalPaths(devSubsets), segfile.Parse, emit)
		}},
		{Split: builder.Test, Generate: func(src builder.Source, emit builder.EmitFunc) error {
			return b.generate(src, b.evalPaths(testSubsets), segfile.Parse, emit)
		}},
	}
}

// generate extracts each file pair with parse, aligns by key, and emits
// the pairs under one contiguous running integer id for the whole split.
func (b *Builder) generate(src builder.Source, pairs [][2]string, parse func(io.Reader) (*record.Record, error), emit builder.EmitFunc) error {
	next := 0
	for _, filePair := range pairs {
		srcRec, err := b.extract(src, filePair[0], parse)
		if err != nil {
			return err
		}
		tgtRec, err := b.extract(src, filePair[1], parse)
		if err != nil {
			return err
		}

		stopped := false
		align.Keyed(srcRec, tgtRec, func(_ record.Key, srcText, tgtText string) bool {
			ex := record.NewExample(b.pair.Source(), srcText, b.pair.Target(), tgtText)
			if !emit(record.IntID(next), ex) {
				stopped = true
				return false
			}
			next++
			return true
		})
		if stopped {
			return nil
		}
	}
	return nil
}

// extract opens and parses one corpus file, closing it on all paths.
func (b *Builder) extract(src builder.Source, path string, parse func(io.Reader) (*record.Record, error)) (*record.Record, error) {
	f, err := src.Open(path)
	if err != nil {
		return nil, fmt.Errorf("iwslt14: %w", err)
	}
	defer f.Close()

	rec, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("iwslt14 %s: %w", path, err)
	}
	return rec, nil
}
