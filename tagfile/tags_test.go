package tagfile

import (
	"reflect"
	"strings"
	"testing"

	"github.com/mt-corpora/bitext/record"
)

func TestParseTwoDocuments(t *testing.T) {
	input := strings.Join([]string{
		"<url>http://example.com/talk1</url>",
		"First sentence.",
		"Second sentence.",
		"<url>http://example.com/talk2</url>",
		"  Third sentence.  ",
		"Fourth sentence.",
	}, "\n")

	rec, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	want := map[record.Key]string{
		"docid-1_segid-1": "First sentence.",
		"docid-1_segid-2": "Second sentence.",
		"docid-2_segid-1": "Third sentence.",
		"docid-2_segid-2": "Fourth sentence.",
	}
	if rec.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d (keys %v)", rec.Len(), len(want), rec.Keys())
	}
	for k, text := range want {
		got, ok := rec.Get(k)
		if !ok {
			t.Fatalf("missing key %s", k)
		}
		if got != text {
			t.Fatalf("key %s = %q, want %q", k, got, text)
		}
	}
}

func TestParseSkipsTalkMetadata(t *testing.T) {
	// Talk header block as shipped in real TED training files: metadata
	// elements sit between the <url> marker and the sentences and must
	// not affect segment numbering.
	input := strings.Join([]string{
		"<url>http://www.ted.com/talks/some_talk</url>",
		"<keywords>talks, culture</keywords>",
		"<speaker>A. Speaker</speaker>",
		"<talkid>42</talkid>",
		"<title>A talk</title>",
		"<description>TED Talk Subtitles and Transcript: …</description>",
		"First sentence.",
		"Second sentence.",
		"<url>http://www.ted.com/talks/another_talk</url>",
		"<talkid>43</talkid>",
		"Third sentence.",
	}, "\n")

	rec, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}

	wantKeys := []record.Key{"docid-1_segid-1", "docid-1_segid-2", "docid-2_segid-1"}
	if got := rec.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("Keys() = %v, want %v", got, wantKeys)
	}
	if got, _ := rec.Get("docid-1_segid-1"); got != "First sentence." {
		t.Fatalf("docid-1_segid-1 = %q", got)
	}
	if got, _ := rec.Get("docid-2_segid-1"); got != "Third sentence." {
		t.Fatalf("docid-2_segid-1 = %q", got)
	}
}

func TestParseBoundaryMatchesOnlyURLElement(t *testing.T) {
	input := strings.Join([]string{
		"<urls>http://not-a-boundary</urls>",
		"dropped: still before the first document",
		"<url href=\"x\">http://example.com</url>",
		"kept",
	}, "\n")

	rec, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	wantKeys := []record.Key{"docid-1_segid-1"}
	if got := rec.Keys(); !reflect.DeepEqual(got, wantKeys) {
		t.Fatalf("Keys() = %v, want %v", got, wantKeys)
	}
}

func TestParseLinesBeforeFirstBoundaryDropped(t *testing.T) {
	input := "orphan line\n<url>u</url>\nfirst real segment\n"
	rec, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if rec.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rec.Len())
	}
	if got, _ := rec.Get("docid-1_segid-1"); got != "first real segment" {
		t.Fatalf("docid-1_segid-1 = %q", got)
	}
}

func TestParseMalformedMarkupTolerated(t *testing.T) {
	// Unterminated trailing markup is just another control line.
	input := "<url>u</url>\nsentence\n<description unterminated\n"
	rec, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse should tolerate malformed markup, got: %v", err)
	}
	if rec.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", rec.Len())
	}
}

func TestParseKeepsEmptySegments(t *testing.T) {
	input := "<url>u</url>\n\nsecond\n"
	rec, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	// The empty line still consumes segment index 1.
	if got, ok := rec.Get("docid-1_segid-1"); !ok || got != "" {
		t.Fatalf("docid-1_segid-1 = %q, %v; want empty, present", got, ok)
	}
	if got, _ := rec.Get("docid-1_segid-2"); got != "second" {
		t.Fatalf("docid-1_segid-2 = %q, want second", got)
	}
}
