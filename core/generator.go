package core

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// Kind classifies generators.
type Kind int

const (
	// Float is a native floating point type.
	Float = Kind(iota)
	// Integral is a native fixed width signed integer type.
	Integral
	// Integer is an arbitrary-precision integer type.
	Integer
	// Rational is an arbitrary-precision rational type.
	Rational
	// Real is an arbitrary-precision floating point type.
	Real
	// Monomial is a monomial representation.
	Monomial
	// Series is a series container.
	Series
)

var kindNames = [...]string{
	Float:    "float",
	Integral: "integral",
	Integer:  "integer",
	Rational: "rational",
	Real:     "real",
	Monomial: "monomial",
	Series:   "series",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// IsCoefficient reports whether generators of kind k may be used as series coefficients.
func (k Kind) IsCoefficient() bool {
	return k != Monomial
}

// Generator is an opaque handle on a type, or on a parameterized type
// constructor, of the algebra library.
type Generator struct {
	name   string
	kind   Kind
	doc    string
	typ    reflect.Type
	cast   func(n number) (interface{}, error)
	params []string
	check  func(args []*Generator) error
	args   []*Generator
	origin *Generator

	mu    sync.Mutex
	cache map[string][]*Generator // instantiations by name
}

// NewGenerator creates an opaque generator that builds no values.
// It lets other catalogs be served through NewPackage.
func NewGenerator(name string, kind Kind, doc string) *Generator {
	return &Generator{name: name, kind: kind, doc: doc}
}

// Name returns the name of g. Instantiations are named after their
// template and arguments, e.g. "polynomial[integer,kronecker_monomial]".
func (g *Generator) Name() string {
	return g.name
}

// Kind returns the kind of g.
func (g *Generator) Kind() Kind {
	return g.kind
}

// Doc returns the documentation string of g.
func (g *Generator) Doc() string {
	return g.doc
}

// Type returns the Go type of the values built by New, or nil if g builds no values.
func (g *Generator) Type() reflect.Type {
	return g.typ
}

// Params returns the names of the type parameters of a template.
func (g *Generator) Params() []string {
	return append([]string(nil), g.params...)
}

// Args returns the arguments g was instantiated with.
func (g *Generator) Args() []*Generator {
	return append([]*Generator(nil), g.args...)
}

// Origin returns the template g was instantiated from, or nil.
func (g *Generator) Origin() *Generator {
	return g.origin
}

// IsTemplate reports whether g must be instantiated before use.
func (g *Generator) IsTemplate() bool {
	return len(g.params) > 0
}

func (g *Generator) String() string {
	return g.name
}

// New converts x to a value of the type generated by g.
// The conversion fails with ErrUnsafeConversion if the value of x is not
// preserved, e.g. on overflow or when a non-integral value is cast to an
// integral type. Conversions to floating point types round to nearest.
func (g *Generator) New(x interface{}) (interface{}, error) {
	if g.cast == nil {
		return nil, fmt.Errorf("%w: %s does not construct values", ErrUnsupported, g.name)
	}
	n, err := numberOf(x)
	if err != nil {
		return nil, err
	}
	v, err := g.cast(n)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Instantiate binds the type parameters of the template g to args.
// Instantiating twice with the same argument generators returns the same generator.
func (g *Generator) Instantiate(args ...*Generator) (*Generator, error) {

	if !g.IsTemplate() {
		return nil, fmt.Errorf("cannot Instantiate: %s is not a template", g.name)
	}

	if len(args) != len(g.params) {
		return nil, fmt.Errorf("cannot Instantiate: %s expects %d arguments (%s) but got %d", g.name, len(g.params), strings.Join(g.params, ", "), len(args))
	}

	names := make([]string, len(args))
	for i, a := range args {
		if a == nil {
			return nil, fmt.Errorf("cannot Instantiate: %s argument %s is nil", g.name, g.params[i])
		}
		if a.IsTemplate() {
			return nil, fmt.Errorf("cannot Instantiate: %s argument %s is the uninstantiated template %s", g.name, g.params[i], a.name)
		}
		names[i] = a.name
	}

	if g.check != nil {
		if err := g.check(args); err != nil {
			return nil, fmt.Errorf("cannot Instantiate: %s: %w", g.name, err)
		}
	}

	name := g.name + "[" + strings.Join(names, ",") + "]"

	g.mu.Lock()
	defer g.mu.Unlock()

	// Distinct generators may share a name; arguments match by identity.
	for _, inst := range g.cache[name] {
		if sameArgs(inst.args, args) {
			return inst, nil
		}
	}

	inst := &Generator{
		name:   name,
		kind:   g.kind,
		doc:    g.doc,
		args:   append([]*Generator(nil), args...),
		origin: g,
	}

	if g.cache == nil {
		g.cache = map[string][]*Generator{}
	}
	g.cache[name] = append(g.cache[name], inst)

	Logger().Debug("instantiated generator", zap.String("template", g.name), zap.String("name", name))

	return inst, nil
}

func sameArgs(a, b []*Generator) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
