//go:build !float128

package core

// float128 is not part of the catalog without the float128 build tag.
var float128Generator *Generator
