package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/robmorgan/cadence/capture"
	"github.com/robmorgan/cadence/logger"
	"github.com/robmorgan/cadence/pitch"
	"github.com/robmorgan/cadence/timing"
)

var tunerSampleRate float64

func init() {
	tunerCmd.Flags().Float64Var(&tunerSampleRate, "sample-rate", capture.DefaultSampleRate, "capture sample rate in Hz")
	rootCmd.AddCommand(tunerCmd)
}

var tunerCmd = &cobra.Command{
	Use:   "tuner",
	Short: "Run the chromatic tuner against the default microphone",
	RunE: func(cmd *cobra.Command, args []string) error {
		mic, err := capture.Open(tunerSampleRate)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := mic.Close(); cerr != nil {
				logger.GetProjectLogger().Warnf("failed to close capture: %v", cerr)
			}
		}()

		analyzer := pitch.NewAnalyzer(timing.NewRealScheduler())
		analyzer.Start(mic)
		defer analyzer.Stop()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)

		fmt.Println("listening... play a note (ctrl-c to quit)")
		display := time.NewTicker(100 * time.Millisecond)
		defer display.Stop()

		for {
			select {
			case <-display.C:
				snap := analyzer.Snapshot()
				if !snap.Stable {
					fmt.Printf("\r%-40s", "--")
					continue
				}
				if snap.Note != "" {
					fmt.Printf("\r%-4s %7.2f Hz %-20s", snap.Note, snap.Frequency, "")
				} else {
					fmt.Printf("\r%-4s %7.2f Hz (out of range) %-6s", snap.Class, snap.Frequency, "")
				}
			case <-interrupt:
				fmt.Println()
				return nil
			}
		}
	},
}
