package cmd

import (
	"io"
	"os"

	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/constants"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "midi-to-strudel",
	Short: "Converts a MIDI file to Strudel notation",
	Long: `Converts a MIDI file into a Strudel snippet: one note pattern per
track, quantized per bar and simplified to the coarsest subdivision
that keeps every note in place.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: runConvert,
}

func setupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	f, err := os.OpenFile(constants.LogFile, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		logrus.Warnf("Could not open %v, logging to stderr only: %v", constants.LogFile, err)
		return
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, f))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
