package core

import (
	"fmt"
	"math/big"
	"reflect"
)

// TypesModule is the qualified name of the built-in catalog.
const TypesModule = "pyranha._core.types"

// Types is the built-in catalog of generators.
var Types = NewPackage(TypesModule, builtins())

// KroneckerMonomialBits is the width of the packed exponent code of kronecker_monomial.
const KroneckerMonomialBits = 64

func builtins() map[string]*Generator {

	m := map[string]*Generator{
		"float": {
			name: "float",
			kind: Float,
			doc:  "Single precision IEEE 754 floating point.",
			typ:  reflect.TypeOf(float32(0)),
			cast: func(n number) (interface{}, error) { return castFloat32(n, "float") },
		},
		"double": {
			name: "double",
			kind: Float,
			doc:  "Double precision IEEE 754 floating point.",
			typ:  reflect.TypeOf(float64(0)),
			cast: func(n number) (interface{}, error) { return castFloat64(n, "double") },
		},
		"long_double": {
			name: "long_double",
			kind: Float,
			doc:  "Extended precision floating point with a 64-bit mantissa and the x87 exponent range.",
			typ:  reflect.TypeOf((*big.Float)(nil)),
			cast: func(n number) (interface{}, error) { return castLongDouble(n, "long_double") },
		},
		"signed_char": {
			name: "signed_char",
			kind: Integral,
			doc:  "Signed integer whose width is 8 bits.",
			typ:  reflect.TypeOf(int8(0)),
			cast: func(n number) (interface{}, error) { return castSigned[int8](n, 8, "signed_char") },
		},
		"short": {
			name: "short",
			kind: Integral,
			doc:  "Signed integer whose width is 16 bits.",
			typ:  reflect.TypeOf(int16(0)),
			cast: func(n number) (interface{}, error) { return castSigned[int16](n, 16, "short") },
		},
		"integer": {
			name: "integer",
			kind: Integer,
			doc:  "Arbitrary-precision integer.",
			typ:  reflect.TypeOf((*big.Int)(nil)),
			cast: func(n number) (interface{}, error) { return castInteger(n, "integer") },
		},
		"rational": {
			name: "rational",
			kind: Rational,
			doc:  "Arbitrary-precision rational.",
			typ:  reflect.TypeOf((*big.Rat)(nil)),
			cast: func(n number) (interface{}, error) { return castRational(n, "rational") },
		},
		"real": {
			name: "real",
			kind: Real,
			doc:  "Multiprecision floating point.",
			typ:  reflect.TypeOf((*big.Float)(nil)),
			cast: func(n number) (interface{}, error) { return castBigFloat(n, DefaultRealPrec, "real") },
		},
		"kronecker_monomial": {
			name: "kronecker_monomial",
			kind: Monomial,
			doc:  "Monomial whose exponents are packed into a single signed integer by Kronecker substitution.",
			typ:  reflect.TypeOf(int64(0)),
			cast: func(n number) (interface{}, error) {
				return castSigned[int64](n, KroneckerMonomialBits, "kronecker_monomial")
			},
		},
		"polynomial": {
			name:   "polynomial",
			kind:   Series,
			doc:    "Multivariate polynomial with coefficient type Cf and monomial type Key.",
			params: []string{"Cf", "Key"},
			check:  checkPolynomial,
		},
		"poisson_series": {
			name:   "poisson_series",
			kind:   Series,
			doc:    "Poisson series with coefficient type Cf over trigonometric Kronecker monomials.",
			params: []string{"Cf"},
			check:  checkCoefficients,
		},
	}

	if float128Generator != nil {
		m[float128Generator.name] = float128Generator
	}

	return m
}

func checkCoefficients(args []*Generator) error {
	if cf := args[0]; !cf.kind.IsCoefficient() {
		return fmt.Errorf("coefficient %s of kind %s is not a coefficient type", cf.name, cf.kind)
	}
	return nil
}

func checkPolynomial(args []*Generator) error {
	if err := checkCoefficients(args); err != nil {
		return err
	}
	if key := args[1]; key.kind != Monomial {
		return fmt.Errorf("key %s of kind %s is not a monomial type", key.name, key.kind)
	}
	return nil
}
