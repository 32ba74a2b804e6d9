package builder

import (
	"fmt"
	"sort"

	"github.com/mt-corpora/bitext/langpair"
)

// Factory configures a Builder for one translation direction. It fails
// with a configuration error when the pair is not available for the
// corpus, before any I/O happens.
type Factory func(source, target string) (Builder, error)

// Registration describes one corpus known to the registry.
type Registration struct {
	// Name is the corpus identifier used on the command line.
	Name string
	// Factory builds a configured variant.
	Factory Factory
	// Pairs lists every allowed translation direction.
	Pairs []langpair.Pair
	// DefaultPair is used when the user gives no direction.
	DefaultPair [2]string
}

var registry = make(map[string]Registration)

// Register adds a corpus to the registry. Corpus packages call it from
// init; a duplicate name is a programming error and panics.
func Register(reg Registration) {
	if reg.Name == "" || reg.Factory == nil {
		panic("builder: registration needs a name and a factory")
	}
	if _, dup := registry[reg.Name]; dup {
		panic("builder: duplicate corpus " + reg.Name)
	}
	registry[reg.Name] = reg
}

// New configures the named corpus for (source, target). Empty codes fall
// back to the corpus default pair.
func New(name, source, target string) (Builder, error) {
	reg, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown corpus %q (known: %v)", name, Names())
	}
	if source == "" && target == "" {
		source, target = reg.DefaultPair[0], reg.DefaultPair[1]
	}
	return reg.Factory(source, target)
}

// Lookup returns the registration for name.
func Lookup(name string) (Registration, bool) {
	reg, ok := registry[name]
	return reg, ok
}

// Names returns all registered corpus names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
