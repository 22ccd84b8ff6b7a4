//go:build float128

package core

import "reflect"

var float128Generator = &Generator{
	name: "float128",
	kind: Float,
	doc:  "Quadruple precision floating point, stored as a double-double Float128.",
	typ:  reflect.TypeOf(Float128{}),
	cast: func(n number) (interface{}, error) { return castFloat128(n, "float128") },
}
