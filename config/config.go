// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables that override settings,
// ex: FASTAPROC_LOG_LEVEL=debug or FASTAPROC_TOP_N=5
const EnvPrefix = "FASTAPROC"

// SizesConfig are the settings of the sizes command
type SizesConfig struct {
	// the FASTA files to summarize
	In []string `mapstructure:"in"`

	// the path of the tab-delimited report
	Out string `mapstructure:"out"`

	// whether to add min, max, mean and N50 columns
	Extended bool `mapstructure:"extended"`
}

// CompareConfig are the settings of the compare command
type CompareConfig struct {
	// the first bin set
	In1 string `mapstructure:"in1"`

	// the second bin set
	In2 string `mapstructure:"in2"`

	// the path of the tab-delimited report
	Out string `mapstructure:"out"`

	// whether the two bin sets label contigs differently and should be
	// matched on the number in their identifiers
	Different bool `mapstructure:"different"`
}

// TopConfig are the settings of the top command
type TopConfig struct {
	// the FASTA file to select from
	In string `mapstructure:"in"`

	// how many sequences to keep
	N int `mapstructure:"n"`

	// the path of the FASTA output
	Out string `mapstructure:"out"`
}

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment
// and the command line
type Config struct {
	// one of debug, info, warn or error
	LogLevel string `mapstructure:"log-level"`

	// log at debug level regardless of LogLevel
	Verbose bool `mapstructure:"verbose"`

	Sizes   SizesConfig   `mapstructure:"sizes"`
	Compare CompareConfig `mapstructure:"compare"`
	Top     TopConfig     `mapstructure:"top"`
}

// Init sets up environment overrides and, if settingsFile isn't empty, reads
// it into v.
func Init(v *viper.Viper, settingsFile string) error {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	v.SetDefault("log-level", "info")

	if settingsFile == "" {
		return nil
	}

	v.SetConfigFile(settingsFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read settings file %s: %w", settingsFile, err)
	}
	return nil
}

// New returns a new Config struct populated by Viper settings
func New(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if c.Verbose {
		c.LogLevel = "debug"
	}
	return &c, nil
}
