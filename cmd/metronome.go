package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/robmorgan/cadence/rhythm"
	"github.com/robmorgan/cadence/sink"
	"github.com/robmorgan/cadence/timing"
)

var (
	metroBPM       int
	metroSignature string
	metroUnit      string
	metroNoAccent  bool
	metroSilent    bool
	metroOSCHost   string
	metroOSCPort   int
)

func init() {
	metronomeCmd.Flags().IntVar(&metroBPM, "bpm", 120, "tempo in beats per minute (30-300)")
	metronomeCmd.Flags().StringVar(&metroSignature, "signature", "4/4", "time signature (4/4, 3/4, 6/8, ...)")
	metronomeCmd.Flags().StringVar(&metroUnit, "unit", "quarter", "click unit (quarter, eighth, triplet, sixteenth)")
	metronomeCmd.Flags().BoolVar(&metroNoAccent, "no-accent", false, "play every click with the plain sound")
	metronomeCmd.Flags().BoolVar(&metroSilent, "silent", false, "run without audio output")
	metronomeCmd.Flags().StringVar(&metroOSCHost, "osc-host", "", "also send each click as an OSC message to this host")
	metronomeCmd.Flags().IntVar(&metroOSCPort, "osc-port", 8765, "OSC port")
	rootCmd.AddCommand(metronomeCmd)
}

var metronomeCmd = &cobra.Command{
	Use:   "metronome",
	Short: "Run the metronome",
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := rhythm.ParseTimeSignature(metroSignature)
		if err != nil {
			return err
		}
		unit, err := rhythm.ParseNoteUnit(metroUnit)
		if err != nil {
			return err
		}

		out, err := buildSink(metroSilent, metroOSCHost, metroOSCPort)
		if err != nil {
			return err
		}

		m := rhythm.NewMetronome(timing.NewRealScheduler(), out)
		m.SetBPM(metroBPM)
		m.SetTimeSignature(sig)
		m.SetNoteUnit(unit)
		m.SetAccentEnabled(!metroNoAccent)
		m.OnTrigger(func(trig rhythm.Trigger) {
			marker := " "
			if trig.Downbeat && trig.Click == 0 {
				marker = "*"
			}
			fmt.Printf("\r%s beat %d.%d %-10s", marker, trig.Beat+1, trig.Click+1, "")
		})

		snap := m.Snapshot()
		fmt.Printf("%s at %d bpm, %s clicks (ctrl-c to quit)\n", snap.TimeSignature, snap.BPM, snap.NoteUnit)
		m.Start()
		defer m.Stop()

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		<-interrupt
		fmt.Println()
		return nil
	},
}

// buildSink assembles the audio output chain shared by the metronome and
// scales commands.
func buildSink(silent bool, oscHost string, oscPort int) (sink.Sink, error) {
	var out sink.Sink = sink.Null{}
	if !silent {
		tone, err := sink.NewToneSink(44100)
		if err != nil {
			return nil, err
		}
		out = tone
	}
	if oscHost != "" {
		out = sink.NewOSCSink(out, oscHost, oscPort)
	}
	return out, nil
}
