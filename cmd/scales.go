package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/robmorgan/cadence/midiexport"
	"github.com/robmorgan/cadence/music"
	"github.com/robmorgan/cadence/scale"
	"github.com/robmorgan/cadence/timing"
)

var (
	scaleStart     string
	scaleEnd       string
	scaleIntervals string
	scaleDirection string
	scaleBPM       int
	scaleExport    string
	scaleSilent    bool
	scaleOSCHost   string
	scaleOSCPort   int
)

func init() {
	scalesCmd.Flags().StringVar(&scaleStart, "start", "C4", "first root note")
	scalesCmd.Flags().StringVar(&scaleEnd, "end", "C5", "last root note")
	scalesCmd.Flags().StringVar(&scaleIntervals, "intervals", "1", "comma-separated interval symbols applied to each root (e.g. 1,3,5)")
	scalesCmd.Flags().StringVar(&scaleDirection, "direction", "ascending", "ascending, descending, both or both-descending-first")
	scalesCmd.Flags().IntVar(&scaleBPM, "bpm", 120, "tempo in beats per minute (30-300)")
	scalesCmd.Flags().StringVar(&scaleExport, "export", "", "write the sequence to a MIDI file instead of playing it")
	scalesCmd.Flags().BoolVar(&scaleSilent, "silent", false, "run without audio output")
	scalesCmd.Flags().StringVar(&scaleOSCHost, "osc-host", "", "also send each note as an OSC message to this host")
	scalesCmd.Flags().IntVar(&scaleOSCPort, "osc-port", 8765, "OSC port")
	rootCmd.AddCommand(scalesCmd)
}

var scalesCmd = &cobra.Command{
	Use:   "scales",
	Short: "Play or export a scale practice sequence",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := music.ParseNote(scaleStart)
		if err != nil {
			return err
		}
		end, err := music.ParseNote(scaleEnd)
		if err != nil {
			return err
		}
		dir, err := scale.ParseDirection(scaleDirection)
		if err != nil {
			return err
		}
		var intervals []string
		for _, s := range strings.Split(scaleIntervals, ",") {
			s = strings.TrimSpace(s)
			if s == "" {
				continue
			}
			if !music.IsIntervalSymbol(s) {
				return fmt.Errorf("unsupported interval symbol %q", s)
			}
			intervals = append(intervals, s)
		}

		if scaleExport != "" {
			entries := scale.Build(start, end, intervals, dir)
			if err := midiexport.WriteFile(scaleExport, entries, scaleBPM); err != nil {
				return err
			}
			fmt.Printf("wrote %d entries to %s\n", len(entries), scaleExport)
			return nil
		}

		out, err := buildSink(scaleSilent, scaleOSCHost, scaleOSCPort)
		if err != nil {
			return err
		}

		p := scale.NewPlayer(timing.NewRealScheduler(), out)
		p.SetRange(start, end)
		p.SetIntervals(intervals)
		p.SetDirection(dir)
		p.SetBPM(scaleBPM)

		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)

		p.Play()
		defer p.Stop()

		display := time.NewTicker(100 * time.Millisecond)
		defer display.Stop()
		for {
			select {
			case <-display.C:
				snap := p.Snapshot()
				if !snap.Playing {
					fmt.Println()
					return nil
				}
				fmt.Printf("\rroot %-4s note %-4s (%d/%d) %-6s", snap.Root, snap.CurrentNote, snap.Index, snap.Length, "")
			case <-interrupt:
				fmt.Println()
				return nil
			}
		}
	},
}
