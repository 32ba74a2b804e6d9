// Package langpair implements validated language-pair value objects.
//
// A Pair is an ordered (source, target) translation direction. Pairs are
// constructed only through a Policy, so an invalid pair never exists:
// corpus builders declare which directions they ship, and construction
// fails before any file is touched.
package langpair

import (
	"fmt"

	"golang.org/x/text/language"
)

// Pair is an ordered (source, target) language pair. Immutable after
// construction; build one through Policy.New.
type Pair struct {
	source string
	target string
}

// Source returns the source language code.
func (p Pair) Source() string { return p.source }

// Target returns the target language code.
func (p Pair) Target() string { return p.target }

// Name returns the conventional "source-target" pair name, e.g. "de-en".
func (p Pair) Name() string { return p.source + "-" + p.target }

// Contains reports whether either side of the pair equals code.
func (p Pair) Contains(code string) bool {
	return p.source == code || p.target == code
}

// Other returns the side of the pair that is not code. It returns the
// source when neither side matches; callers should check Contains first.
func (p Pair) Other(code string) string {
	if p.source == code {
		return p.target
	}
	return p.source
}

// Policy decides which language pairs a corpus accepts.
type Policy interface {
	// New validates (source, target) and returns the pair, or a
	// configuration error describing why it is not allowed.
	New(source, target string) (Pair, error)
}

// checkCode verifies that a code is a well-formed language tag.
// Corpus codes like "pt-br" or "zh" must parse; garbage must not.
func checkCode(code string) error {
	if code == "" {
		return fmt.Errorf("empty language code")
	}
	if _, err := language.Parse(code); err != nil {
		return fmt.Errorf("malformed language code %q: %w", code, err)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Exact-set policy
// ---------------------------------------------------------------------------

// ExactSet allows a fixed list of ordered pairs.
type ExactSet struct {
	allowed []Pair
}

// NewExactSet builds an ExactSet from ordered (source, target) name pairs.
// Each element of pairs must have exactly two codes.
func NewExactSet(pairs ...[2]string) *ExactSet {
	s := &ExactSet{}
	for _, p := range pairs {
		s.allowed = append(s.allowed, Pair{source: p[0], target: p[1]})
	}
	return s
}

// New implements Policy.
func (s *ExactSet) New(source, target string) (Pair, error) {
	if err := checkCode(source); err != nil {
		return Pair{}, err
	}
	if err := checkCode(target); err != nil {
		return Pair{}, err
	}
	for _, a := range s.allowed {
		if a.source == source && a.target == target {
			return a, nil
		}
	}
	return Pair{}, fmt.Errorf("language pair %s-%s is not available", source, target)
}

// Pairs returns all allowed pairs in declaration order.
func (s *ExactSet) Pairs() []Pair {
	out := make([]Pair, len(s.allowed))
	copy(out, s.allowed)
	return out
}

// ---------------------------------------------------------------------------
// Pivot policy
// ---------------------------------------------------------------------------

// Pivot requires one side of the pair to equal a fixed pivot language and
// the other side to come from an allowed set. Both directions are accepted.
type Pivot struct {
	pivot   string
	allowed []string
}

// NewPivot builds a Pivot policy. others is the set of codes allowed
// opposite the pivot.
func NewPivot(pivot string, others ...string) *Pivot {
	return &Pivot{pivot: pivot, allowed: others}
}

// New implements Policy.
func (pv *Pivot) New(source, target string) (Pair, error) {
	if err := checkCode(source); err != nil {
		return Pair{}, err
	}
	if err := checkCode(target); err != nil {
		return Pair{}, err
	}

	p := Pair{source: source, target: target}
	if !p.Contains(pv.pivot) {
		return Pair{}, fmt.Errorf("language pair %s must contain %q", p.Name(), pv.pivot)
	}
	if source == target {
		return Pair{}, fmt.Errorf("language pair %s: source and target are identical", p.Name())
	}

	other := p.Other(pv.pivot)
	for _, a := range pv.allowed {
		if a == other {
			return p, nil
		}
	}
	return Pair{}, fmt.Errorf("language %q is not available opposite %q", other, pv.pivot)
}

// PivotCode returns the pivot language code.
func (pv *Pivot) PivotCode() string { return pv.pivot }

// Pairs returns every allowed pair in both directions, pivot-first order
// followed by pivot-last order per allowed code.
func (pv *Pivot) Pairs() []Pair {
	var out []Pair
	for _, a := range pv.allowed {
		out = append(out, Pair{source: pv.pivot, target: a})
	}
	for _, a := range pv.allowed {
		out = append(out, Pair{source: a, target: pv.pivot})
	}
	return out
}
