// Package types publishes the generators of the piranha type catalog.
//
// A Registry is built once from a core.Module by querying a fixed, ordered
// table of names. Required names that the module does not provide make the
// load fail with the module's own lookup error; optional names (currently
// only float128) are skipped when absent. A Registry is immutable.
package types

import (
	"fmt"
	"sync"

	"github.com/piranha-cas/pyranha/core"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Entry is a published generator.
type Entry struct {
	Name      string
	Doc       string
	Generator *core.Generator
}

// Registry is an immutable set of published generators.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// Load publishes the generators of m named by Bindings.
func Load(m core.Module) (*Registry, error) {
	return LoadBindings(m, bindings)
}

// LoadBindings publishes the generators of m named by table, querying them in order.
// The lookup error of the first required binding m does not provide is returned
// unchanged, and no later binding is queried. Optional bindings m does not
// provide are skipped.
func LoadBindings(m core.Module, table []Binding) (*Registry, error) {

	r := &Registry{
		entries: make([]Entry, 0, len(table)),
		index:   make(map[string]int, len(table)),
	}

	for _, b := range table {

		if _, ok := r.index[b.Name]; ok {
			return nil, fmt.Errorf("cannot LoadBindings: duplicate binding %q", b.Name)
		}

		g, err := m.Attr(b.Name)

		switch {
		case err == nil && g == nil:
			if b.Optional {
				continue
			}
			return nil, &core.MissingCapabilityError{Name: b.Name}
		case err != nil:
			if b.Optional && core.IsMissing(err) {
				continue
			}
			return nil, err
		}

		r.index[b.Name] = len(r.entries)
		r.entries = append(r.entries, Entry{Name: b.Name, Doc: b.Doc, Generator: g})
	}

	return r, nil
}

var (
	defaultRegistry *Registry
	defaultErr      error
	defaultOnce     sync.Once
)

// Default returns the registry of core.Types.
// It is loaded on the first call; later calls return the same registry and error.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultRegistry, defaultErr = Load(core.Types)
	})
	return defaultRegistry, defaultErr
}

// MustDefault is like Default but panics on error.
func MustDefault() *Registry {
	r, err := Default()
	if err != nil {
		panic(fmt.Errorf("cannot MustDefault: %w", err))
	}
	return r
}

// Lookup returns the generator published under name.
func (r *Registry) Lookup(name string) (*core.Generator, bool) {
	if i, ok := r.index[name]; ok {
		return r.entries[i].Generator, true
	}
	return nil, false
}

// Has reports whether name is published.
func (r *Registry) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// Len returns the number of published generators.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Names returns the sorted published names.
func (r *Registry) Names() (names []string) {
	names = maps.Keys(r.index)
	slices.Sort(names)
	return
}

// Entries returns the published generators in load order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

func (r *Registry) get(name string) *core.Generator {
	g, _ := r.Lookup(name)
	return g
}

// Float returns the float generator.
func (r *Registry) Float() *core.Generator { return r.get(FloatName) }

// Double returns the double generator.
func (r *Registry) Double() *core.Generator { return r.get(DoubleName) }

// LongDouble returns the long_double generator.
func (r *Registry) LongDouble() *core.Generator { return r.get(LongDoubleName) }

// Float128 returns the float128 generator, if the module provides it.
func (r *Registry) Float128() (*core.Generator, bool) { return r.Lookup(Float128Name) }

// SignedChar returns the signed_char generator.
func (r *Registry) SignedChar() *core.Generator { return r.get(SignedCharName) }

// Short returns the short generator.
func (r *Registry) Short() *core.Generator { return r.get(ShortName) }

// Integer returns the integer generator.
func (r *Registry) Integer() *core.Generator { return r.get(IntegerName) }

// Rational returns the rational generator.
func (r *Registry) Rational() *core.Generator { return r.get(RationalName) }

// Real returns the real generator.
func (r *Registry) Real() *core.Generator { return r.get(RealName) }

// KroneckerMonomial returns the kronecker_monomial generator.
func (r *Registry) KroneckerMonomial() *core.Generator { return r.get(KroneckerMonomialName) }

// Polynomial returns the polynomial generator.
func (r *Registry) Polynomial() *core.Generator { return r.get(PolynomialName) }

// PoissonSeries returns the poisson_series generator.
func (r *Registry) PoissonSeries() *core.Generator { return r.get(PoissonSeriesName) }
