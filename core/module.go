package core

import (
	"errors"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ErrMissingCapability is matched by every MissingCapabilityError.
var ErrMissingCapability = errors.New("missing capability")

// MissingCapabilityError is returned when a Module does not provide a name.
type MissingCapabilityError struct {
	Module string
	Name   string
}

func (e *MissingCapabilityError) Error() string {
	var b strings.Builder
	if e.Module != "" {
		b.WriteString("module '")
		b.WriteString(e.Module)
		b.WriteString("' has no attribute '")
	} else {
		b.WriteString("no attribute '")
	}
	b.WriteString(e.Name)
	b.WriteByte('\'')
	return b.String()
}

// Is reports whether target is ErrMissingCapability.
func (e *MissingCapabilityError) Is(target error) bool {
	return target == ErrMissingCapability
}

// IsMissing reports whether err signals an absent name.
func IsMissing(err error) bool {
	return errors.Is(err, ErrMissingCapability)
}

// Module is a capability lookup over named generators.
type Module interface {
	// Attr returns the generator bound to name, or a *MissingCapabilityError.
	Attr(name string) (*Generator, error)
}

// Package is an immutable Module backed by a name to generator table.
type Package struct {
	name    string
	members map[string]*Generator
}

// NewPackage creates a Package named name exposing members.
// The map is copied; nil generators are dropped.
func NewPackage(name string, members map[string]*Generator) *Package {
	p := &Package{name: name, members: make(map[string]*Generator, len(members))}
	for k, g := range members {
		if g != nil {
			p.members[k] = g
		}
	}
	return p
}

// Name returns the qualified name of the package.
func (p *Package) Name() string {
	return p.name
}

// Attr implements Module.
func (p *Package) Attr(name string) (*Generator, error) {
	if g, ok := p.members[name]; ok {
		return g, nil
	}
	return nil, &MissingCapabilityError{Module: p.name, Name: name}
}

// Names returns the sorted member names.
func (p *Package) Names() (names []string) {
	names = maps.Keys(p.members)
	slices.Sort(names)
	return
}

// Len returns the number of members.
func (p *Package) Len() int {
	return len(p.members)
}
