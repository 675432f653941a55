// Package cmd is for command line interactions with the fastaproc application
package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ddeemerpurdue/fastaprocessing/config"
	"github.com/ddeemerpurdue/fastaprocessing/internal/logger"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fastaproc",
	Short: "Summarize, compare and filter FASTA files of contigs and bins",
	Long: `Batch tools for multi-FASTA files of assembled contigs, like the bins of a
metagenome binning run:

  sizes     total nucleotides and contig count per file
  compare   shared and unique contigs between two bin sets
  top       the N longest sequences of a file`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		l, _ := logger.New(os.Stderr, "")
		l.Error("failed", "err", err)
		os.Exit(1)
	}
}

// setup reads the settings of a command run and builds its logger
func setup(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	settings, _ := cmd.Flags().GetString("settings")

	v := viper.GetViper()
	if err := config.Init(v, settings); err != nil {
		return nil, nil, err
	}

	c, err := config.New(v)
	if err != nil {
		return nil, nil, err
	}

	l, err := logger.New(cmd.ErrOrStderr(), c.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return c, l, nil
}

// set flags
func init() {
	// settings is an optional YAML file with defaults for any command's flags
	rootCmd.PersistentFlags().StringP("settings", "s", "", "settings file <YAML>")
	rootCmd.PersistentFlags().String("log-level", "info", "one of debug, info, warn, error")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log at debug level")

	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
