package constants

import "os"

func GetServeAddr() string {
	addr := os.Getenv("SERVE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

// EmptyMarker is the symbol for a silent slot or bar.
const EmptyMarker = "-"

// DefaultTempo is microseconds per quarter note when a file carries no
// set-tempo event (120 BPM).
const DefaultTempo = 500000

const DefaultNotesPerBar = 128

const DefaultTabSize = 2

// BarsPerLine is how many bars the output packs onto one line.
const BarsPerLine = 4

// ResultFile is where the convert command writes its output, next to
// printing it.
const ResultFile = "result.txt"

// LogFile receives a copy of the log stream.
const LogFile = "log.log"
