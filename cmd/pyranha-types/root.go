package main

import (
	"io"
	"os"

	"github.com/piranha-cas/pyranha/core"
	"github.com/piranha-cas/pyranha/types"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	out        io.Writer
	configFile string
	cfg        *config
	log        *zap.Logger
	reg        *types.Registry
	load       func() (*types.Registry, error)
}

// newRootCmd creates the top-level "pyranha-types" command with all
// subcommands registered. Output is written to out.
func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, load: types.Default}
	return a.rootCmd()
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "pyranha-types",
		Short: "Inspect the generators of the pyranha type registry",
		Long: "pyranha-types lists the numeric types, monomial encodings and series\n" +
			"generators published by the pyranha type registry, and instantiates or\n" +
			"casts through them.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	root.SetOut(a.out)

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "YAML config file")
	root.PersistentFlags().String(cfgKeyFormat, defaultFormat, "output format: text, json or yaml")
	root.PersistentFlags().String(cfgKeyLogLevel, defaultLogLevel, "log level: debug, info, warn or error")

	root.AddCommand(a.listCmd())
	root.AddCommand(a.showCmd())
	root.AddCommand(a.instantiateCmd())
	root.AddCommand(a.castCmd())
	root.AddCommand(a.infoCmd())

	return root
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd, a.configFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.log, err = newLogger(os.Stderr, cfg.LogLevel); err != nil {
		return err
	}
	core.SetLogger(a.log.Named("core"))

	if a.reg, err = a.load(); err != nil {
		a.log.Error("registry load failed", zap.Error(err))
		return err
	}

	a.log.Debug("registry loaded",
		zap.Int("generators", a.reg.Len()),
		zap.String("digest", a.reg.Digest()))

	return nil
}
