package builder

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mt-corpora/bitext/langpair"
)

func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for path, content := range files {
		full := filepath.Join(dir, filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestDirSourceOpen(t *testing.T) {
	dir := writeTree(t, map[string]string{"data/a.txt": "hello"})
	src := NewDirSource(dir)

	r, err := src.Open("data/a.txt")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	defer r.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello" {
		t.Fatalf("content = %q, want hello", data)
	}

	if _, err := src.Open("data/missing.txt"); err == nil {
		t.Fatal("Open(missing) should fail")
	}
}

func TestDirSourceWalk(t *testing.T) {
	dir := writeTree(t, map[string]string{
		"a.txt":       "A",
		"sub/b.txt":   "B",
		"sub/c/d.txt": "D",
	})
	src := NewDirSource(dir)

	seen := map[string]string{}
	err := src.Walk(func(path string, r io.Reader) error {
		data, err := io.ReadAll(r)
		if err != nil {
			return err
		}
		seen[path] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk error: %v", err)
	}
	want := map[string]string{"a.txt": "A", "sub/b.txt": "B", "sub/c/d.txt": "D"}
	if !reflect.DeepEqual(seen, want) {
		t.Fatalf("Walk saw %v, want %v", seen, want)
	}
}

func TestDirSourceWalkStop(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "A", "b.txt": "B"})
	src := NewDirSource(dir)

	count := 0
	err := src.Walk(func(string, io.Reader) error {
		count++
		return ErrStopWalk
	})
	if err != nil {
		t.Fatalf("Walk with ErrStopWalk should not fail, got: %v", err)
	}
	if count != 1 {
		t.Fatalf("callback ran %d times, want 1", count)
	}
}

func TestDirSourceWalkPropagatesError(t *testing.T) {
	dir := writeTree(t, map[string]string{"a.txt": "A"})
	src := NewDirSource(dir)

	boom := errors.New("boom")
	if err := src.Walk(func(string, io.Reader) error { return boom }); !errors.Is(err, boom) {
		t.Fatalf("Walk error = %v, want boom", err)
	}
}

type fakeBuilder struct{ info DatasetInfo }

func (b *fakeBuilder) Info() DatasetInfo        { return b.info }
func (b *fakeBuilder) Splits() []SplitGenerator { return nil }

func TestRegistry(t *testing.T) {
	pol := langpair.NewPivot("en", "xx")
	Register(Registration{
		Name: "fake",
		Factory: func(source, target string) (Builder, error) {
			p, err := pol.New(source, target)
			if err != nil {
				return nil, err
			}
			return &fakeBuilder{info: DatasetInfo{Name: "fake", Pair: p}}, nil
		},
		Pairs:       pol.Pairs(),
		DefaultPair: [2]string{"en", "xx"},
	})

	b, err := New("fake", "xx", "en")
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if got := b.Info().Pair.Name(); got != "xx-en" {
		t.Fatalf("pair = %q, want xx-en", got)
	}

	// Default pair kicks in when no direction is given.
	b, err = New("fake", "", "")
	if err != nil {
		t.Fatalf("New with default pair error: %v", err)
	}
	if got := b.Info().Pair.Name(); got != "en-xx" {
		t.Fatalf("default pair = %q, want en-xx", got)
	}

	if _, err := New("fake", "en", "zz"); err == nil {
		t.Fatal("New with disallowed pair should fail")
	}
	if _, err := New("nope", "en", "xx"); err == nil {
		t.Fatal("New with unknown corpus should fail")
	}

	found := false
	for _, name := range Names() {
		if name == "fake" {
			found = true
		}
	}
	if !found {
		t.Fatalf("Names() = %v, missing fake", Names())
	}
}
