// The Float128 representation follows the "double double" layout of libqd by
// Yozo Hida, Xiaoye S. Li, David H. Bailey, Yves Renard and E. Jason Riedy.
// Source: http://crd.lbl.gov/~dhbailey/mpdist/qd-2.3.13.tar.gz
// Only the conversions needed by the float128 generator are provided.

package core

import (
	"math"
	"math/big"
	"strconv"
)

// A Float128 represents a double-double floating point number with
// 106 bits of mantissa, or about 32 decimal digits. The zero value
// for a Float128 represents the value 0.
type Float128 [2]float64 // high word, low word

// Float128Prec is the mantissa width of a Float128.
const Float128Prec = 106

// Compute fl(a+b) and err(a+b).  Assumes |a| >= |b|.
func quickTwoSum(a, b float64) (s, err float64) {
	s = a + b
	err = b - (s - a)
	return
}

// Float128FromFloat64 returns f as a Float128.
func Float128FromFloat64(f float64) Float128 {
	return Float128{f, 0}
}

// Float128FromRat returns the Float128 nearest to r.
// The result is ±Inf if r is out of the float64 range.
func Float128FromRat(r *big.Rat) (f Float128) {
	hi, _ := r.Float64()
	if math.IsInf(hi, 0) {
		return Float128{hi, 0}
	}
	rem := new(big.Rat).Sub(r, new(big.Rat).SetFloat64(hi))
	lo, _ := rem.Float64()
	f[0], f[1] = quickTwoSum(hi, lo)
	return
}

// IsFinite reports whether f is neither infinite nor NaN.
func (f Float128) IsFinite() bool {
	return !math.IsInf(f[0], 0) && !math.IsNaN(f[0]) && !math.IsInf(f[1], 0) && !math.IsNaN(f[1])
}

// Float64 returns the high word of f.
func (f Float128) Float64() float64 {
	return f[0]
}

// Rat returns the exact value of f, or nil if f is not finite.
func (f Float128) Rat() *big.Rat {
	if !f.IsFinite() {
		return nil
	}
	r := new(big.Rat).SetFloat64(f[0])
	return r.Add(r, new(big.Rat).SetFloat64(f[1]))
}

// String returns f in decimal notation with 32 significant digits.
func (f Float128) String() string {
	r := f.Rat()
	if r == nil {
		return strconv.FormatFloat(f[0], 'g', -1, 64)
	}
	return new(big.Float).SetPrec(Float128Prec).SetRat(r).Text('g', 32)
}
