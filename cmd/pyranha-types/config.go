package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "PYRANHA"

	cfgKeyFormat   = "format"
	cfgKeyLogLevel = "log-level"

	defaultFormat   = formatText
	defaultLogLevel = "warn"
)

// config holds the resolved settings of one invocation.
type config struct {
	Format   string
	LogLevel string
}

// loadConfig resolves settings from flags, PYRANHA_* environment variables and
// an optional YAML config file, in that order of precedence.
func loadConfig(cmd *cobra.Command, configFile string) (*config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyFormat, defaultFormat)
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{cfgKeyFormat, cfgKeyLogLevel} {
		if err := v.BindPFlag(key, cmd.Root().PersistentFlags().Lookup(key)); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	cfg := &config{
		Format:   strings.ToLower(v.GetString(cfgKeyFormat)),
		LogLevel: v.GetString(cfgKeyLogLevel),
	}

	switch cfg.Format {
	case formatText, formatJSON, formatYAML:
	default:
		return nil, fmt.Errorf("invalid format %q: expected %s, %s or %s", cfg.Format, formatText, formatJSON, formatYAML)
	}

	return cfg, nil
}
