package core

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func mustAttr(t *testing.T, name string) *Generator {
	g, err := Types.Attr(name)
	require.NoError(t, err)
	return g
}

func TestKind(t *testing.T) {
	require.Equal(t, "monomial", Monomial.String())
	require.Equal(t, "Kind(42)", Kind(42).String())
	require.True(t, Series.IsCoefficient())
	require.False(t, Monomial.IsCoefficient())
}

func TestInstantiate(t *testing.T) {

	polynomial := mustAttr(t, "polynomial")
	poisson := mustAttr(t, "poisson_series")
	integer := mustAttr(t, "integer")
	rational := mustAttr(t, "rational")
	km := mustAttr(t, "kronecker_monomial")

	t.Run("Polynomial", func(t *testing.T) {
		require.True(t, polynomial.IsTemplate())
		require.Equal(t, []string{"Cf", "Key"}, polynomial.Params())

		p, err := polynomial.Instantiate(integer, km)
		require.NoError(t, err)
		require.Equal(t, "polynomial[integer,kronecker_monomial]", p.Name())
		require.Equal(t, Series, p.Kind())
		require.False(t, p.IsTemplate())
		require.Same(t, polynomial, p.Origin())
		require.Equal(t, []*Generator{integer, km}, p.Args())
		require.Nil(t, p.Type())
	})

	t.Run("Memoized", func(t *testing.T) {
		p1, err := polynomial.Instantiate(rational, km)
		require.NoError(t, err)
		p2, err := polynomial.Instantiate(rational, km)
		require.NoError(t, err)
		require.Same(t, p1, p2)
	})

	t.Run("SameNameDistinctArgs", func(t *testing.T) {
		a := NewGenerator("coeff", Rational, "first")
		b := NewGenerator("coeff", Integer, "second")

		pa, err := poisson.Instantiate(a)
		require.NoError(t, err)
		pb, err := poisson.Instantiate(b)
		require.NoError(t, err)

		require.NotSame(t, pa, pb)
		require.Equal(t, pa.Name(), pb.Name())
		require.Same(t, a, pa.Args()[0])
		require.Same(t, b, pb.Args()[0])

		again, err := poisson.Instantiate(b)
		require.NoError(t, err)
		require.Same(t, pb, again)
	})

	t.Run("Nested", func(t *testing.T) {
		p, err := polynomial.Instantiate(rational, km)
		require.NoError(t, err)
		ps, err := poisson.Instantiate(p)
		require.NoError(t, err)
		require.Equal(t, "poisson_series[polynomial[rational,kronecker_monomial]]", ps.Name())
	})

	t.Run("Concurrent", func(t *testing.T) {
		var wg sync.WaitGroup
		res := make([]*Generator, 8)
		for i := range res {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				res[i], _ = poisson.Instantiate(integer)
			}(i)
		}
		wg.Wait()
		for i := range res {
			require.NotNil(t, res[i])
			require.Same(t, res[0], res[i])
		}
	})

	t.Run("Errors", func(t *testing.T) {
		testCases := []struct {
			name string
			tmpl *Generator
			args []*Generator
		}{
			{"NotTemplate", integer, []*Generator{integer}},
			{"Arity", polynomial, []*Generator{integer}},
			{"NilArg", poisson, []*Generator{nil}},
			{"TemplateArg", poisson, []*Generator{polynomial}},
			{"MonomialCoefficient", poisson, []*Generator{km}},
			{"NonMonomialKey", polynomial, []*Generator{integer, rational}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				g, err := tc.tmpl.Instantiate(tc.args...)
				require.Error(t, err)
				require.Nil(t, g)
			})
		}
	})
}

func TestSetLogger(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	SetLogger(zap.NewExample())
	require.NotNil(t, Logger())

	SetLogger(nil)
	require.NotNil(t, Logger())

	poisson := mustAttr(t, "poisson_series")
	require.NotPanics(t, func() {
		_, err := poisson.Instantiate(NewGenerator("logged", Rational, ""))
		require.NoError(t, err)
	})
}

func TestNewUnsupported(t *testing.T) {
	polynomial := mustAttr(t, "polynomial")
	_, err := polynomial.New(1)
	require.ErrorIs(t, err, ErrUnsupported)

	_, err = mustAttr(t, "integer").New(struct{}{})
	require.ErrorIs(t, err, ErrUnsupported)
}
