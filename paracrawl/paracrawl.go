// Package paracrawl loads the JParaCrawl web-crawl corpus: automatically
// aligned English↔{Japanese, Chinese} sentence pairs with the source URL
// and alignment probability of every pair.
package paracrawl

import (
	"fmt"
	"io"

	"github.com/mt-corpora/bitext/builder"
	"github.com/mt-corpora/bitext/langpair"
	"github.com/mt-corpora/bitext/record"
	"github.com/mt-corpora/bitext/tsvfile"
)

const (
	description = `JParaCrawl is the largest publicly available English-Japanese parallel corpus created by NTT.
It was created by largely crawling the web and automatically aligning parallel sentences.`

	citation = `@inproceedings{morishita-etal-2020-jparacrawl,
    title = "{JP}ara{C}rawl: A Large Scale Web-Based {E}nglish-{J}apanese Parallel Corpus",
    author = "Morishita, Makoto  and
      Suzuki, Jun  and
      Nagata, Masaaki",
    booktitle = "Proceedings of The 12th Language Resources and Evaluation Conference",
    month = may,
    year = "2020",
    address = "Marseille, France",
    publisher = "European Language Resources Association",
    url = "https://www.aclweb.org/anthology/2020.lrec-1.443",
    pages = "3603--3609",
    ISBN = "979-10-95546-34-4",
}`

	homepage = "https://www.kecl.ntt.co.jp/icl/lirg/jparacrawl/"
	license  = "Terms of Use for Bilingual Data, Monolingual Data and Trained Models (NTT, research use only)"

	// memberTmpl is the archive-relative bitext file for a non-English
	// language code.
	memberTmpl = "en-%s/en-%s.bicleaner05.txt"
)

// policy: English pivot paired with Japanese or Chinese, either direction.
var policy = langpair.NewPivot("en", "ja", "zh")

func init() {
	builder.Register(builder.Registration{
		Name:        "jparacrawl",
		Factory:     func(source, target string) (builder.Builder, error) { return New(source, target) },
		Pairs:       policy.Pairs(),
		DefaultPair: [2]string{"en", "ja"},
	})
}

// Builder is the JParaCrawl corpus configured for one direction.
type Builder struct {
	pair langpair.Pair
}

// New validates the language pair and returns a configured Builder.
func New(source, target string) (*Builder, error) {
	pair, err := policy.New(source, target)
	if err != nil {
		return nil, fmt.Errorf("jparacrawl: %w", err)
	}
	return &Builder{pair: pair}, nil
}

// Info implements builder.Builder.
func (b *Builder) Info() builder.DatasetInfo {
	return builder.DatasetInfo{
		Name:           "jparacrawl",
		Version:        "3.0.0",
		Description:    description,
		Homepage:       homepage,
		Citation:       citation,
		License:        license,
		Pair:           b.pair,
		Supervised:     true,
		KeyKind:        builder.KeyInt,
		HasURL:         true,
		HasProbability: true,
	}
}

// Splits implements builder.Builder. JParaCrawl ships training data only.
func (b *Builder) Splits() []builder.SplitGenerator {
	return []builder.SplitGenerator{
		{Split: builder.Train, Generate: b.generate},
	}
}

// generate finds the bitext member in the source and emits its rows.
// Row columns are fixed as (url, probability, English, other); the
// translation map is keyed by the configured pair regardless of
// direction. Ids are row indices; rows with an empty side are skipped.
func (b *Builder) generate(src builder.Source, emit builder.EmitFunc) error {
	nonEN := b.pair.Other("en")
	member := fmt.Sprintf(memberTmpl, nonEN, nonEN)

	found := false
	err := src.Walk(func(path string, r io.Reader) error {
		if path != member {
			return nil
		}
		found = true
		if err := b.emitRows(r, nonEN, emit); err != nil {
			return err
		}
		return builder.ErrStopWalk
	})
	if err != nil {
		return fmt.Errorf("jparacrawl: %w", err)
	}
	if !found {
		return fmt.Errorf("jparacrawl: bitext file %s not found", member)
	}
	return nil
}

func (b *Builder) emitRows(r io.Reader, nonEN string, emit builder.EmitFunc) error {
	return tsvfile.Parse(r, func(i int, row tsvfile.Row) bool {
		if row.Left == "" || row.Right == "" {
			return true
		}
		prob := row.Probability
		ex := record.Example{
			Translation: map[string]string{"en": row.Left, nonEN: row.Right},
			URL:         row.URL,
			Probability: &prob,
		}
		return emit(record.IntID(i), ex)
	})
}
