//go:build float128

package core

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat128Generator(t *testing.T) {

	g := mustAttr(t, "float128")
	require.Equal(t, Float, g.Kind())

	v, err := g.New(big.NewRat(1, 3))
	require.NoError(t, err)
	f := v.(Float128)
	require.InDelta(t, 1.0/3, f.Float64(), 1e-16)
	require.NotZero(t, f[1])

	v, err = g.New(math.Inf(-1))
	require.NoError(t, err)
	require.True(t, math.IsInf(v.(Float128).Float64(), -1))

	_, err = g.New(new(big.Int).Lsh(big.NewInt(1), 2000))
	require.ErrorIs(t, err, ErrUnsafeConversion)
}
