package core

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrUnsafeConversion is returned when a value is not preserved by a cast.
	ErrUnsafeConversion = errors.New("unsafe conversion")
	// ErrUnsupported is returned when a generator cannot construct values.
	ErrUnsupported = errors.New("unsupported operation")
)

// DefaultRealPrec is the precision in bits of values built by the real generator.
const DefaultRealPrec = 113

// Mantissa width and binary exponent range of the x87 extended precision
// format, with exponents as returned by (*big.Float).MantExp.
const (
	LongDoublePrec   = 64
	LongDoubleMaxExp = 16384
	LongDoubleMinExp = -16444 // smallest subnormal is 2^-16445
)

// number is the value of a cast argument.
// rat is nil iff the argument is NaN or infinite, in which case f holds it.
type number struct {
	rat *big.Rat
	f   float64
}

func (n number) String() string {
	if n.rat == nil {
		return strconv.FormatFloat(n.f, 'g', -1, 64)
	}
	return n.rat.RatString()
}

// numberOf reads x as a number.
// Accepted types are: int, int8, int16, int32, int64, uint, uint8, uint16, uint32,
// uint64, float32, float64, string, *big.Int, *big.Rat, *big.Float or Float128.
func numberOf(x interface{}) (n number, err error) {
	switch x := x.(type) {
	case int:
		return number{rat: new(big.Rat).SetInt64(int64(x))}, nil
	case int8:
		return number{rat: new(big.Rat).SetInt64(int64(x))}, nil
	case int16:
		return number{rat: new(big.Rat).SetInt64(int64(x))}, nil
	case int32:
		return number{rat: new(big.Rat).SetInt64(int64(x))}, nil
	case int64:
		return number{rat: new(big.Rat).SetInt64(x)}, nil
	case uint:
		return number{rat: new(big.Rat).SetUint64(uint64(x))}, nil
	case uint8:
		return number{rat: new(big.Rat).SetUint64(uint64(x))}, nil
	case uint16:
		return number{rat: new(big.Rat).SetUint64(uint64(x))}, nil
	case uint32:
		return number{rat: new(big.Rat).SetUint64(uint64(x))}, nil
	case uint64:
		return number{rat: new(big.Rat).SetUint64(x)}, nil
	case float32:
		return numberOfFloat64(float64(x)), nil
	case float64:
		return numberOfFloat64(x), nil
	case string:
		return numberOfString(x)
	case *big.Int:
		if x == nil {
			break
		}
		return number{rat: new(big.Rat).SetInt(x)}, nil
	case *big.Rat:
		if x == nil {
			break
		}
		return number{rat: new(big.Rat).Set(x)}, nil
	case *big.Float:
		if x == nil {
			break
		}
		if x.IsInf() {
			return number{f: math.Inf(x.Sign())}, nil
		}
		r, _ := x.Rat(nil)
		return number{rat: r}, nil
	case Float128:
		if r := x.Rat(); r != nil {
			return number{rat: r}, nil
		}
		return number{f: x[0] + x[1]}, nil
	}
	return n, fmt.Errorf("%w: accepted types are integers, floats, string, *big.Int, *big.Rat, *big.Float or Float128, but is %T", ErrUnsupported, x)
}

func numberOfFloat64(f float64) number {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return number{f: f}
	}
	return number{rat: new(big.Rat).SetFloat64(f)}
}

func numberOfString(s string) (n number, err error) {
	s = strings.TrimSpace(s)
	if i, ok := new(big.Int).SetString(s, 0); ok {
		return number{rat: new(big.Rat).SetInt(i)}, nil
	}
	if r, ok := new(big.Rat).SetString(s); ok {
		return number{rat: r}, nil
	}
	if f, perr := strconv.ParseFloat(s, 64); perr == nil && (math.IsInf(f, 0) || math.IsNaN(f)) {
		return number{f: f}, nil
	}
	return n, fmt.Errorf("%w: cannot parse %q as a number", ErrUnsafeConversion, s)
}

func unsafeCast(n number, to string) error {
	return fmt.Errorf("%w: %s to %s", ErrUnsafeConversion, n, to)
}

// castSigned converts n to a signed integer of the given width.
// n must be an integral value in range.
func castSigned[T constraints.Signed](n number, bits uint, to string) (T, error) {
	if n.rat == nil || !n.rat.IsInt() {
		return 0, unsafeCast(n, to)
	}
	i := n.rat.Num()
	if !i.IsInt64() {
		return 0, unsafeCast(n, to)
	}
	v := i.Int64()
	lo, hi := -int64(1)<<(bits-1), int64(1)<<(bits-1)-1
	if v < lo || v > hi {
		return 0, unsafeCast(n, to)
	}
	return T(v), nil
}

func castFloat32(n number, to string) (interface{}, error) {
	if n.rat == nil {
		return float32(n.f), nil
	}
	f, _ := n.rat.Float32()
	if math.IsInf(float64(f), 0) {
		return nil, unsafeCast(n, to)
	}
	return f, nil
}

func castFloat64(n number, to string) (interface{}, error) {
	if n.rat == nil {
		return n.f, nil
	}
	f, _ := n.rat.Float64()
	if math.IsInf(f, 0) {
		return nil, unsafeCast(n, to)
	}
	return f, nil
}

// castBigFloat rounds n to prec bits. NaN has no *big.Float representation.
func castBigFloat(n number, prec uint, to string) (interface{}, error) {
	y := new(big.Float).SetPrec(prec)
	if n.rat == nil {
		if math.IsNaN(n.f) {
			return nil, unsafeCast(n, to)
		}
		return y.SetInf(n.f < 0), nil
	}
	return y.SetRat(n.rat), nil
}

// castLongDouble is castBigFloat bounded to the x87 exponent range.
func castLongDouble(n number, to string) (interface{}, error) {
	v, err := castBigFloat(n, LongDoublePrec, to)
	if err != nil {
		return nil, err
	}
	y := v.(*big.Float)
	if y.IsInf() || y.Sign() == 0 {
		return y, nil
	}
	if exp := y.MantExp(nil); exp > LongDoubleMaxExp || exp < LongDoubleMinExp {
		return nil, unsafeCast(n, to)
	}
	return y, nil
}

func castFloat128(n number, to string) (interface{}, error) {
	if n.rat == nil {
		return Float128FromFloat64(n.f), nil
	}
	f := Float128FromRat(n.rat)
	if !f.IsFinite() {
		return nil, unsafeCast(n, to)
	}
	return f, nil
}

func castInteger(n number, to string) (interface{}, error) {
	if n.rat == nil || !n.rat.IsInt() {
		return nil, unsafeCast(n, to)
	}
	return new(big.Int).Set(n.rat.Num()), nil
}

func castRational(n number, to string) (interface{}, error) {
	if n.rat == nil {
		return nil, unsafeCast(n, to)
	}
	return new(big.Rat).Set(n.rat), nil
}
