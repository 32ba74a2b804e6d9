// Package tagfile reads inline-segment corpus files: loosely structured
// training files whose lines are either markup control lines (starting
// with "<") or bare sentence lines.
//
// A "<url …>" control line marks the start of a new document; every bare
// line up to the next "<url …>" belongs to that document. Other control
// lines (talk metadata like <keywords>, <speaker>, <talkid>) are skipped
// without affecting segment numbering. The format is noisy web-crawl
// output, so unterminated or otherwise malformed markup never fails
// parsing — an unrecognized control line is just skipped too.
package tagfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mt-corpora/bitext/record"
)

// kind classifies one physical line.
type kind int

const (
	kindSegment  kind = iota // bare sentence line, including empty lines
	kindBoundary             // <url …> document marker
	kindControl              // any other markup line
)

// token is one classified line.
type token struct {
	kind kind
	text string
}

// classify tokenizes one trimmed line. Only the <url> element itself is
// a boundary; elements that merely share the prefix (<urls>, <urlset>)
// are ordinary control lines.
func classify(line string) token {
	if strings.HasPrefix(line, "<") {
		if strings.HasPrefix(line, "<url>") || strings.HasPrefix(line, "<url ") {
			return token{kind: kindBoundary}
		}
		return token{kind: kindControl}
	}
	return token{kind: kindSegment, text: line}
}

// Parse extracts all segments of r keyed by running document and segment
// indices: "docid-{D}_segid-{S}", both counted from 1. The document index
// increments at every boundary marker; the segment index restarts per
// document and increments for every bare line between that marker and the
// next one. Non-boundary control lines carry metadata and are skipped;
// bare lines before the first marker are dropped.
//
// Empty bare lines are kept (with empty text) so segment numbering stays
// aligned with the other language's file; the aligner filters them out.
func Parse(r io.Reader) (*record.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	rec := record.NewRecord()
	doc, seg := 0, 0

	for scanner.Scan() {
		tok := classify(strings.TrimSpace(scanner.Text()))
		switch tok.kind {
		case kindBoundary:
			doc++
			seg = 0
		case kindSegment:
			if doc == 0 {
				continue
			}
			seg++
			rec.Set(record.SegKey(doc, seg), tok.text)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading tagged corpus file: %w", err)
	}
	return rec, nil
}
