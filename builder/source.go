package builder

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrStopWalk stops a Source.Walk without reporting failure.
var ErrStopWalk = errors.New("stop walk")

// DirSource serves corpus files from a locally extracted archive tree.
type DirSource struct {
	root string
}

// NewDirSource returns a Source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{root: dir}
}

// Open implements Source.
func (s *DirSource) Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(s.root, filepath.FromSlash(path)))
	if err != nil {
		return nil, fmt.Errorf("opening corpus file %s: %w", path, err)
	}
	return f, nil
}

// Walk implements Source. Paths are slash-separated and relative to the
// source root, in lexical order. Every opened file is closed before the
// next callback, on error paths included.
func (s *DirSource) Walk(fn func(path string, r io.Reader) error) error {
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		return fn(filepath.ToSlash(rel), f)
	})
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}
