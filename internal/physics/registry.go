package physics

import (
	"fmt"
	"sort"

	"github.com/san-kum/dynsys/internal/system"
)

var registry = map[string]func() *system.System{
	"lorenz":    func() *system.System { return NewLorenz(DefaultLorenzParams(), nil) },
	"rossler":   func() *system.System { return NewRossler(DefaultRosslerParams(), nil) },
	"vanderpol": func() *system.System { return NewVanDerPol(1.0, nil) },
	"duffing":   func() *system.System { return NewDuffing(DefaultDuffingParams(), nil) },
	"harmonic":  func() *system.System { return NewHarmonicOscillator(1.0, nil) },
	"decay":     func() *system.System { return NewLinearDecay(1.0, nil) },
}

// Lookup builds a fresh container for the named system.
func Lookup(name string) (*system.System, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("physics: unknown system %q", name)
	}
	return ctor(), nil
}

// Names lists the registered system names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
