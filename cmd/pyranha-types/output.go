package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"
	"text/tabwriter"

	"github.com/piranha-cas/pyranha/core"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// generatorView is the serialized form of a generator.
type generatorView struct {
	Name   string   `json:"name" yaml:"name"`
	Kind   string   `json:"kind" yaml:"kind"`
	GoType string   `json:"go_type,omitempty" yaml:"go_type,omitempty"`
	Params []string `json:"params,omitempty" yaml:"params,omitempty"`
	Args   []string `json:"args,omitempty" yaml:"args,omitempty"`
	Doc    string   `json:"doc" yaml:"doc"`
}

func viewOf(g *core.Generator, doc string) generatorView {
	v := generatorView{
		Name:   g.Name(),
		Kind:   g.Kind().String(),
		Params: g.Params(),
		Doc:    doc,
	}
	if t := g.Type(); t != nil {
		v.GoType = t.String()
	}
	for _, a := range g.Args() {
		v.Args = append(v.Args, a.Name())
	}
	if v.Doc == "" {
		v.Doc = g.Doc()
	}
	return v
}

// encode writes v as JSON or YAML. Text output is handled by the callers.
func encode(w io.Writer, format string, v interface{}) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q", format)
}

func writeTable(w io.Writer, views []generatorView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tKIND\tGO TYPE\tPARAMS")
	for _, v := range views {
		goType := v.GoType
		if goType == "" {
			goType = "-"
		}
		params := strings.Join(v.Params, ",")
		if params == "" {
			params = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", v.Name, v.Kind, goType, params)
	}
	return tw.Flush()
}

func writeDetail(w io.Writer, v generatorView) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "name:\t%s\n", v.Name)
	fmt.Fprintf(tw, "kind:\t%s\n", v.Kind)
	if v.GoType != "" {
		fmt.Fprintf(tw, "go type:\t%s\n", v.GoType)
	}
	if len(v.Params) > 0 {
		fmt.Fprintf(tw, "params:\t%s\n", strings.Join(v.Params, ", "))
	}
	if len(v.Args) > 0 {
		fmt.Fprintf(tw, "args:\t%s\n", strings.Join(v.Args, ", "))
	}
	fmt.Fprintf(tw, "doc:\t%s\n", v.Doc)
	return tw.Flush()
}

// formatValue prints a value built by a generator without losing digits.
func formatValue(x interface{}) string {
	switch x := x.(type) {
	case *big.Float:
		return x.Text('g', -1)
	case *big.Rat:
		return x.RatString()
	case *big.Int:
		return x.String()
	case core.Float128:
		return x.String()
	}
	return fmt.Sprint(x)
}
