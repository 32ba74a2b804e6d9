// Package align matches extracted source and target texts into sentence
// pairs, either by line position (plain corpora) or by shared key
// (structured corpora).
package align

import (
	"fmt"

	"github.com/mt-corpora/bitext/record"
)

// LengthError reports a line-count mismatch between the two sides of a
// positionally aligned file pair. The input data is corrupt; generation
// must abort.
type LengthError struct {
	Source int
	Target int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("sizes do not match: %d vs %d source vs target lines", e.Source, e.Target)
}

// Positional zips two line slices by index. Both sides must have the same
// length; pairs where either side is empty are skipped. emit receives the
// 0-based line index as the pair id and may return false to stop early.
func Positional(src, tgt []string, emit func(i int, srcText, tgtText string) bool) error {
	if len(src) != len(tgt) {
		return &LengthError{Source: len(src), Target: len(tgt)}
	}
	for i := range src {
		if src[i] == "" || tgt[i] == "" {
			continue
		}
		if !emit(i, src[i], tgt[i]) {
			return nil
		}
	}
	return nil
}

// Keyed walks src in insertion order and emits every key that also exists
// in tgt with non-empty text on both sides. One-sided keys are expected
// in noisy corpora and are silently dropped. emit may return false to
// stop early.
func Keyed(src, tgt *record.Record, emit func(key record.Key, srcText, tgtText string) bool) {
	for _, key := range src.Keys() {
		srcText, _ := src.Get(key)
		tgtText, ok := tgt.Get(key)
		if !ok || srcText == "" || tgtText == "" {
			continue
		}
		if !emit(key, srcText, tgtText) {
			return
		}
	}
}
