package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/piranha-cas/pyranha/core"
	"github.com/piranha-cas/pyranha/types"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestList(t *testing.T) {

	t.Run("Text", func(t *testing.T) {
		out, err := run(t, "list")
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		require.Len(t, lines, core.Types.Len()+1)
		require.True(t, strings.HasPrefix(lines[0], "NAME"))
		require.Contains(t, out, "kronecker_monomial")
	})

	t.Run("JSON", func(t *testing.T) {
		out, err := run(t, "list", "--format", "json")
		require.NoError(t, err)
		var views []generatorView
		require.NoError(t, json.Unmarshal([]byte(out), &views))
		require.Len(t, views, core.Types.Len())
		require.Equal(t, types.FloatName, views[0].Name)
		require.Equal(t, "float32", views[0].GoType)
	})

	t.Run("YAMLFromEnv", func(t *testing.T) {
		t.Setenv("PYRANHA_FORMAT", "yaml")
		out, err := run(t, "list")
		require.NoError(t, err)
		var views []generatorView
		require.NoError(t, yaml.Unmarshal([]byte(out), &views))
		require.Len(t, views, core.Types.Len())
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		_, err := run(t, "list", "--format", "xml")
		require.Error(t, err)
	})
}

func TestShow(t *testing.T) {

	out, err := run(t, "show", "polynomial")
	require.NoError(t, err)
	require.Contains(t, out, "params:")
	require.Contains(t, out, "Cf, Key")

	out, err = run(t, "show", "--format", "json", "poisson_series[polynomial[rational,kronecker_monomial]]")
	require.NoError(t, err)
	var v generatorView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	require.Equal(t, "poisson_series[polynomial[rational,kronecker_monomial]]", v.Name)
	require.Equal(t, []string{"polynomial[rational,kronecker_monomial]"}, v.Args)

	_, err = run(t, "show", "quaternion")
	require.Error(t, err)
}

func TestInstantiate(t *testing.T) {
	out, err := run(t, "instantiate", "polynomial", "integer", "kronecker_monomial")
	require.NoError(t, err)
	require.Equal(t, "polynomial[integer,kronecker_monomial]\n", out)

	_, err = run(t, "instantiate", "polynomial", "integer", "rational")
	require.Error(t, err)
}

func TestCast(t *testing.T) {
	testCases := []struct {
		args []string
		want string
	}{
		{[]string{"cast", "rational", "0.75"}, "3/4\n"},
		{[]string{"cast", "integer", "123456789012345678901234567890"}, "123456789012345678901234567890\n"},
		{[]string{"cast", "short", "--", "-7"}, "-7\n"},
		{[]string{"cast", "double", "1/4"}, "0.25\n"},
	}
	for _, tc := range testCases {
		t.Run(strings.Join(tc.args, " "), func(t *testing.T) {
			out, err := run(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}

	_, err := run(t, "cast", "signed_char", "300")
	require.ErrorIs(t, err, core.ErrUnsafeConversion)

	_, err = run(t, "cast", "long_double", "1e5000")
	require.ErrorIs(t, err, core.ErrUnsafeConversion)

	_, err = run(t, "cast", "polynomial[integer,kronecker_monomial]", "1")
	require.ErrorIs(t, err, core.ErrUnsupported)
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--format", "json")
	require.NoError(t, err)
	var res infoResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Equal(t, core.TypesModule, res.Module)
	require.Equal(t, core.Types.Len(), res.Generators)
	require.Equal(t, types.MustDefault().Digest(), res.Digest)
	require.Equal(t, []string{types.Float128Name}, res.Optional)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: json\nlog-level: debug\n"), 0o600))

	out, err := run(t, "--config", path, "info")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(out)))

	_, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "info")
	require.Error(t, err)
}

func TestLoadFailure(t *testing.T) {
	boom := &core.MissingCapabilityError{Name: types.IntegerName}
	var out bytes.Buffer
	a := &app{out: &out, load: func() (*types.Registry, error) { return nil, boom }}
	root := a.rootCmd()
	root.SetErr(io.Discard)
	root.SetArgs([]string{"list"})
	err := root.Execute()
	require.True(t, errors.Is(err, core.ErrMissingCapability))
	require.Empty(t, out.String())
}

func TestResolve(t *testing.T) {
	reg := types.MustDefault()

	g, err := resolve(reg, " integer ")
	require.NoError(t, err)
	require.Same(t, reg.Integer(), g)

	for _, expr := range []string{
		"polynomial[integer,kronecker_monomial",
		"polynomial[integer,,kronecker_monomial]",
		"polynomial[integer,kronecker_monomial]]",
		"poisson_series[]",
		"matrix[integer]",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := resolve(reg, expr)
			require.Error(t, err)
		})
	}
}
