// Package config loads the generator's run options from CLI flags, an
// optional cagegen.yaml, and built-in defaults, in that order of
// precedence, via github.com/spf13/viper bound to github.com/spf13/pflag.
package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Options are the run parameters named in spec.md §6, plus the two
// open-question flags (both default false, never guessed at).
type Options struct {
	InputFile              string  `mapstructure:"input"`
	Alpha                  float64 `mapstructure:"alpha"`
	SizeMax                int     `mapstructure:"size_max"`
	MaxResults             int     `mapstructure:"max_results"`
	AllowCarbonylStart     bool    `mapstructure:"allow_carbonyl_start"`
	RequireAromaticInChain bool    `mapstructure:"require_aromatic_in_chain"`
}

// Defaults returns the built-in defaults from spec.md §6.
func Defaults() Options {
	return Options{
		Alpha:      3.0,
		SizeMax:    5,
		MaxResults: 10,
	}
}

// Load reads Options from flags, falling back to an optional cagegen.yaml
// in the working directory, falling back to Defaults. Flags always win
// over the config file, which always wins over defaults.
func Load(flags *pflag.FlagSet) (Options, error) {
	v := viper.New()
	v.SetConfigName("cagegen")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	defaults := Defaults()
	v.SetDefault("input", defaults.InputFile)
	v.SetDefault("alpha", defaults.Alpha)
	v.SetDefault("size_max", defaults.SizeMax)
	v.SetDefault("max_results", defaults.MaxResults)
	v.SetDefault("allow_carbonyl_start", defaults.AllowCarbonylStart)
	v.SetDefault("require_aromatic_in_chain", defaults.RequireAromaticInChain)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Options{}, fmt.Errorf("config: reading cagegen.yaml: %w", err)
		}
	}

	for flagName, key := range map[string]string{
		"input":       "input",
		"alpha":       "alpha",
		"size-max":    "size_max",
		"max-results": "max_results",
	} {
		if f := flags.Lookup(flagName); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return Options{}, fmt.Errorf("config: binding flag %q: %w", flagName, err)
			}
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return Options{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return opts, nil
}
