package types

// Binding is a name published by the registry.
type Binding struct {
	Name     string
	Doc      string
	Optional bool // absence in the module is tolerated
}

// Names of the published generators.
const (
	FloatName             = "float"
	DoubleName            = "double"
	LongDoubleName        = "long_double"
	Float128Name          = "float128"
	SignedCharName        = "signed_char"
	ShortName             = "short"
	IntegerName           = "integer"
	RationalName          = "rational"
	RealName              = "real"
	KroneckerMonomialName = "kronecker_monomial"
	PolynomialName        = "polynomial"
	PoissonSeriesName     = "poisson_series"
)

var bindings = []Binding{
	{Name: FloatName, Doc: "The standard C++ type float."},
	{Name: DoubleName, Doc: "The standard C++ type double."},
	{Name: LongDoubleName, Doc: "The standard C++ type long double."},
	{Name: Float128Name, Doc: "Quadruple precision floating point, available depending on the build configuration.", Optional: true},
	{Name: SignedCharName, Doc: "The standard C++ type signed char (a signed integer type whose width is usually 8 bits)."},
	{Name: ShortName, Doc: "The standard C++ type short (a signed integer type whose width is usually 16 bits)."},
	{Name: IntegerName, Doc: "The arbitrary-precision integer type provided by the piranha library."},
	{Name: RationalName, Doc: "The arbitrary-precision rational type provided by the piranha library."},
	{Name: RealName, Doc: "The multiprecision floating-point type provided by the piranha library."},
	{Name: KroneckerMonomialName, Doc: "A monomial packing its exponents into one integer by Kronecker substitution."},
	{Name: PolynomialName, Doc: "The polynomial generator, parameterized by a coefficient and a monomial type."},
	{Name: PoissonSeriesName, Doc: "The Poisson series generator, parameterized by a coefficient type."},
}

// Bindings returns the ordered table of names published by Load.
func Bindings() []Binding {
	return append([]Binding(nil), bindings...)
}

// Required returns the names of the non-optional bindings, in load order.
func Required() (names []string) {
	for _, b := range bindings {
		if !b.Optional {
			names = append(names, b.Name)
		}
	}
	return
}

// Optional returns the names of the optional bindings, in load order.
func Optional() (names []string) {
	for _, b := range bindings {
		if b.Optional {
			names = append(names, b.Name)
		}
	}
	return
}
