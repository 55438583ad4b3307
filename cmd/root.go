// Package cmd holds the cadence command-line interface.
package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/robmorgan/cadence/logger"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "cadence",
	Short: "Practice tools for musicians",
	Long:  `Cadence bundles a chromatic tuner, a metronome and a scale practice sequencer behind one CLI.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			logger.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
