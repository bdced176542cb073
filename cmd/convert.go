package cmd

import (
	"fmt"
	"os"

	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/constants"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/midi"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/model"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/pattern"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/strudel"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/util"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	midiPath    string
	barLimit    int
	flatMode    bool
	tabSize     int
	notesPerBar int
)

func init() {
	for _, cmd := range []*cobra.Command{rootCmd, convertCmd} {
		f := cmd.Flags()
		f.StringVarP(&midiPath, "midi", "m", "",
			"Path to the MIDI file (default: first .mid in the current folder)")
		f.IntVarP(&barLimit, "bar-limit", "b", 0,
			"The amount of bars to convert, 0 means no limit")
		f.BoolVarP(&flatMode, "flat-sequences", "f", false,
			"No complex timing or chords")
		f.IntVarP(&tabSize, "tab-size", "t", constants.DefaultTabSize,
			"How many spaces to use for indentation in the output")
		f.IntVarP(&notesPerBar, "notes-per-bar", "n", constants.DefaultNotesPerBar,
			"The resolution. Usually in steps of 4 (4, 8, 16...). Higher gives better note placement but can get big")
	}
	rootCmd.AddCommand(convertCmd)
}

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Converts a MIDI file to Strudel notation",
	Long:  `Converts a MIDI file to Strudel notation`,
	RunE:  runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	path := midiPath
	if path == "" {
		var err error
		path, err = util.FirstMidiPath(".")
		if err != nil {
			return err
		}
	}

	cfg := model.Config{
		NotesPerBar: notesPerBar,
		BarLimit:    barLimit,
		FlatMode:    flatMode,
		TabSize:     tabSize,
	}

	output, bpm, err := convert(path, cfg)
	if err != nil {
		logrus.Error(err)
		return err
	}
	logrus.Infof("Converted %v at %v BPM", path, int(bpm))

	fmt.Println(output)
	if err := os.WriteFile(constants.ResultFile, []byte(output+"\n"), 0644); err != nil {
		return fmt.Errorf("could not write %v: %w", constants.ResultFile, err)
	}
	return nil
}

func convert(path string, cfg model.Config) (string, float64, error) {
	s, err := midi.ReadMidiFile(path)
	if err != nil {
		return "", 0, err
	}

	timing := midi.GetTiming(s)
	events, err := midi.CollectNoteEvents(s, timing)
	if err != nil {
		return "", 0, err
	}

	tracks, err := pattern.BuildTracks(events, timing, cfg)
	if err != nil {
		return "", 0, err
	}

	return strudel.Build(tracks, timing.BPM, cfg.TabSize), timing.BPM, nil
}
