package main

import (
	"fmt"

	"github.com/piranha-cas/pyranha/core"
	"github.com/piranha-cas/pyranha/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the published generators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries := a.reg.Entries()
			views := make([]generatorView, len(entries))
			for i, e := range entries {
				views[i] = viewOf(e.Generator, e.Doc)
			}
			if a.cfg.Format == formatText {
				return writeTable(cmd.OutOrStdout(), views)
			}
			return encode(cmd.OutOrStdout(), a.cfg.Format, views)
		},
	}
}

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <expr>",
		Short: "Show one generator, e.g. integer or polynomial[rational,kronecker_monomial]",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := resolve(a.reg, args[0])
			if err != nil {
				return err
			}
			v := viewOf(g, a.doc(g))
			if a.cfg.Format == formatText {
				return writeDetail(cmd.OutOrStdout(), v)
			}
			return encode(cmd.OutOrStdout(), a.cfg.Format, v)
		},
	}
}

func (a *app) instantiateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "instantiate <template> <arg>...",
		Short: "Instantiate a template generator with the given arguments",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := resolve(a.reg, args[0])
			if err != nil {
				return err
			}
			params := make([]*core.Generator, len(args)-1)
			for i, expr := range args[1:] {
				if params[i], err = resolve(a.reg, expr); err != nil {
					return err
				}
			}
			g, err := tmpl.Instantiate(params...)
			if err != nil {
				return err
			}
			a.log.Debug("instantiate", zap.String("generator", g.Name()))
			if a.cfg.Format == formatText {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), g.Name())
				return err
			}
			return encode(cmd.OutOrStdout(), a.cfg.Format, viewOf(g, a.doc(g)))
		},
	}
}

// castResult is the serialized form of a cast.
type castResult struct {
	Generator string `json:"generator" yaml:"generator"`
	Input     string `json:"input" yaml:"input"`
	Value     string `json:"value" yaml:"value"`
	GoType    string `json:"go_type" yaml:"go_type"`
}

func (a *app) castCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cast <expr> <value>",
		Short: "Safely convert a literal to the type of a generator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := resolve(a.reg, args[0])
			if err != nil {
				return err
			}
			x, err := g.New(args[1])
			if err != nil {
				return err
			}
			res := castResult{
				Generator: g.Name(),
				Input:     args[1],
				Value:     formatValue(x),
				GoType:    fmt.Sprintf("%T", x),
			}
			if a.cfg.Format == formatText {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Value)
				return err
			}
			return encode(cmd.OutOrStdout(), a.cfg.Format, res)
		},
	}
}

// infoResult is the serialized form of the registry summary.
type infoResult struct {
	Module              string   `json:"module" yaml:"module"`
	Generators          int      `json:"generators" yaml:"generators"`
	Required            []string `json:"required" yaml:"required"`
	Optional            []string `json:"optional" yaml:"optional"`
	Float128            bool     `json:"float128" yaml:"float128"`
	Digest              string   `json:"digest" yaml:"digest"`
	HardwareConcurrency uint     `json:"hardware_concurrency" yaml:"hardware_concurrency"`
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Summarize the registry and the runtime",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := infoResult{
				Module:              core.TypesModule,
				Generators:          a.reg.Len(),
				Required:            types.Required(),
				Optional:            types.Optional(),
				Float128:            a.reg.Has(types.Float128Name),
				Digest:              a.reg.Digest(),
				HardwareConcurrency: core.HardwareConcurrency(),
			}
			if a.cfg.Format != formatText {
				return encode(cmd.OutOrStdout(), a.cfg.Format, res)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "module: %s\n", res.Module)
			fmt.Fprintf(w, "generators: %d\n", res.Generators)
			fmt.Fprintf(w, "float128: %t\n", res.Float128)
			fmt.Fprintf(w, "digest: %s\n", res.Digest)
			_, err := fmt.Fprintf(w, "hardware concurrency: %d\n", res.HardwareConcurrency)
			return err
		},
	}
}

// doc returns the binding doc of a published generator, or its own doc.
func (a *app) doc(g *core.Generator) string {
	for _, e := range a.reg.Entries() {
		if e.Generator == g {
			return e.Doc
		}
	}
	return g.Doc()
}
