// Package core is the native type catalog backing the pyranha registry.
//
// It holds the generators of the algebra library as opaque *Generator handles,
// addressable by name through the Module capability-lookup interface. The
// built-in catalog is Types. The float128 generator is only compiled in with
// the float128 build tag.
package core
