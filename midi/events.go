package midi

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/constants"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// GetTiming reads the first set-tempo event of the first track. Later
// tempo changes are ignored, the whole file is converted at one tempo.
func GetTiming(s *smf.SMF) model.Timing {
	bpm := 60_000_000.0 / constants.DefaultTempo
	if len(s.Tracks) > 0 {
		for _, ev := range s.Tracks[0] {
			var b float64
			if ev.Message.GetMetaTempo(&b) {
				bpm = b
				break
			}
		}
	}

	return model.Timing{
		Tempo:    uint32(math.Round(60_000_000 / bpm)),
		BPM:      bpm,
		CycleLen: 60 / bpm * 4,
	}
}

// CollectNoteEvents flattens each track into (seconds, pitch) note-on
// events, keyed by track index. Note-ons with velocity 0 count as
// note-offs and are skipped.
func CollectNoteEvents(s *smf.SMF, timing model.Timing) (model.TrackEvents, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format %v, only metric ticks are handled", s.TimeFormat)
	}

	events := make(model.TrackEvents)
	for i, track := range s.Tracks {
		var sec float64
		for _, ev := range track {
			sec += ticks.Duration(timing.BPM, ev.Delta).Seconds()
			var channel uint8
			var key uint8
			var velocity uint8
			if ev.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				events[i] = append(events[i], model.NoteEvent{Seconds: sec, Pitch: PitchName(key)})
			}
		}
	}
	return events, nil
}

var noteNames = []string{"c", "c#", "d", "d#", "e", "f", "f#", "g", "g#", "a", "a#", "b"}

// PitchName converts a MIDI key number to a Strudel pitch label,
// e.g. 60 -> "c4".
func PitchName(key uint8) string {
	return noteNames[key%12] + strconv.Itoa(int(key)/12-1)
}
