// Package manifest — .bitext.yaml configuration file support.
//
// A .bitext.yaml in the working directory tells the CLI where the
// already-extracted corpus trees live, so repeated exports don't need the
// paths respelled on every invocation. The file is optional; a missing
// manifest just means everything comes from flags.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mt-corpora/bitext/builder"
)

// FileName is the default manifest file name.
const FileName = ".bitext.yaml"

// Manifest is the top-level .bitext.yaml structure.
type Manifest struct {
	// ExportDir is where JSONL exports are written (default ".").
	ExportDir string `yaml:"export_dir,omitempty"`
	// Corpora maps corpus name to its local configuration.
	Corpora map[string]Corpus `yaml:"corpora"`
}

// Corpus describes one locally available corpus.
type Corpus struct {
	// Root is the directory holding the extracted archive tree.
	Root string `yaml:"root"`
	// Source and Target optionally pin a default translation direction.
	Source string `yaml:"source,omitempty"`
	Target string `yaml:"target,omitempty"`
}

// Load reads the manifest from dir. Returns nil without error when no
// manifest exists. Corpus names must be registered and roots must be
// non-empty; both are configuration errors.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if m.ExportDir == "" {
		m.ExportDir = "."
	}

	for name, c := range m.Corpora {
		if _, ok := builder.Lookup(name); !ok {
			return nil, fmt.Errorf("%s: unknown corpus %q (known: %v)", path, name, builder.Names())
		}
		if c.Root == "" {
			return nil, fmt.Errorf("%s: corpus %q has no root directory", path, name)
		}
	}

	return &m, nil
}

// Resolve returns the corpus entry for name, or false when the manifest
// is nil or has no entry.
func (m *Manifest) Resolve(name string) (Corpus, bool) {
	if m == nil {
		return Corpus{}, false
	}
	c, ok := m.Corpora[name]
	return c, ok
}
