// Package pattern quantizes note events onto a per-bar grid and collapses
// the grid into the coarsest notation that keeps every onset in place.
package pattern

import (
	"math"
	"sort"
	"strings"

	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/constants"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/model"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/util"
)

// Events in the last 5% of a cycle get pushed to the next cycle's start.
// Absorbs the timing jitter that would otherwise leave a note meant for
// the next bar dangling at the end of the current one.
const nearCycleEndFrac = 0.95

// AdjustNearCycleEnd returns a copy of events where anything landing in
// the final stretch of its cycle is moved to the next cycle boundary.
// Times only ever increase; an event exactly on a boundary stays put.
func AdjustNearCycleEnd(events []model.NoteEvent, cycleLen float64) []model.NoteEvent {
	adjusted := make([]model.NoteEvent, 0, len(events))
	for _, ev := range events {
		rel := math.Mod(ev.Seconds, cycleLen) / cycleLen
		if rel > nearCycleEndFrac {
			ev.Seconds = math.Ceil(ev.Seconds/cycleLen) * cycleLen
		}
		adjusted = append(adjusted, ev)
	}
	return adjusted
}

// QuantizeTime maps a timestamp to the nearest of notesPerBar slots,
// expressed as a fraction of the cycle in [0, 1]. A result of 1 means
// the event rounds into the next cycle.
func QuantizeTime(timestamp, cycleStart, cycleLen float64, notesPerBar int) float64 {
	pos := (timestamp - cycleStart) / cycleLen
	return math.Round(pos*float64(notesPerBar)) / float64(notesPerBar)
}

// ChordGroup is a set of pitches sharing one quantized position, in
// arrival order.
type ChordGroup struct {
	Pos     float64
	Pitches []string
}

// GroupChords quantizes each event and merges events whose positions are
// within one slot of an existing group. The first event to claim a
// position stays the group's representative, so float jitter can't
// split one musical chord across two slots.
func GroupChords(events []model.NoteEvent, cycleStart, cycleLen float64, notesPerBar int) []ChordGroup {
	tolerance := 1 / float64(notesPerBar)
	var groups []ChordGroup
	for _, ev := range events {
		pos := QuantizeTime(ev.Seconds, cycleStart, cycleLen, notesPerBar)
		merged := false
		for i := range groups {
			if math.Abs(pos-groups[i].Pos) < tolerance {
				groups[i].Pitches = append(groups[i].Pitches, ev.Pitch)
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, ChordGroup{Pos: pos, Pitches: []string{ev.Pitch}})
		}
	}
	return groups
}

func chordSymbol(pitches []string) string {
	if len(pitches) == 1 {
		return pitches[0]
	}
	return "[" + strings.Join(pitches, ",") + "]"
}

// materializeGrid writes each group's symbol at its rounded slot index.
// Groups rounding past the last slot belong to the next cycle and are
// dropped.
func materializeGrid(groups []ChordGroup, notesPerBar int) []string {
	slots := make([]string, notesPerBar)
	for i := range slots {
		slots[i] = constants.EmptyMarker
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Pos < groups[j].Pos
	})
	for _, g := range groups {
		i := int(math.Round(g.Pos * float64(notesPerBar)))
		if i < notesPerBar {
			slots[i] = chordSymbol(g.Pitches)
		}
	}
	return slots
}

func allEmpty(slots []string) bool {
	for _, s := range slots {
		if s != constants.EmptyMarker {
			return false
		}
	}
	return true
}

func flatBar(events []model.NoteEvent) string {
	sorted := make([]model.NoteEvent, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Seconds != sorted[j].Seconds {
			return sorted[i].Seconds < sorted[j].Seconds
		}
		return sorted[i].Pitch < sorted[j].Pitch
	})

	notes := make([]string, 0, len(sorted))
	for _, ev := range sorted {
		notes = append(notes, ev.Pitch)
	}
	if len(notes) == 1 {
		return notes[0]
	}
	return "[" + strings.Join(notes, " ") + "]"
}

func polyBar(events []model.NoteEvent, cycleStart, cycleLen float64, notesPerBar int) string {
	groups := GroupChords(events, cycleStart, cycleLen, notesPerBar)
	if len(groups) == 0 {
		return constants.EmptyMarker
	}

	slots := materializeGrid(groups, notesPerBar)
	if allEmpty(slots) {
		// every event rounded into the next cycle
		return constants.EmptyMarker
	}

	return RenderBar(Reduce(slots))
}

// RenderBar turns a reduced grid into its bar string: a single slot
// renders bare, anything longer becomes a space-joined group.
func RenderBar(reduced []string) string {
	if len(reduced) == 1 {
		return reduced[0]
	}
	return "[" + strings.Join(reduced, " ") + "]"
}

// BuildTracks renders every track's cycles to bar strings, in ascending
// track index order. Silent cycles render as the empty marker; tracks
// with no events at all produce no output.
func BuildTracks(events model.TrackEvents, timing model.Timing, cfg model.Config) ([]model.RenderedTrack, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := timing.Validate(); err != nil {
		return nil, err
	}

	var tracks []model.RenderedTrack
	for _, trackNum := range util.SortedKeys(events) {
		evs := AdjustNearCycleEnd(events[trackNum], timing.CycleLen)
		if len(evs) == 0 {
			continue
		}

		maxTime := evs[0].Seconds
		for _, ev := range evs {
			if ev.Seconds > maxTime {
				maxTime = ev.Seconds
			}
		}

		numCycles := int(maxTime/timing.CycleLen) + 1
		if cfg.BarLimit > 0 {
			numCycles = util.Min(numCycles, cfg.BarLimit)
		}

		bars := make(model.RenderedTrack, 0, numCycles)
		for c := 0; c < numCycles; c++ {
			start := float64(c) * timing.CycleLen
			end := start + timing.CycleLen

			var inCycle []model.NoteEvent
			for _, ev := range evs {
				if ev.Seconds >= start && ev.Seconds < end {
					inCycle = append(inCycle, ev)
				}
			}

			if len(inCycle) == 0 {
				bars = append(bars, constants.EmptyMarker)
				continue
			}
			if cfg.FlatMode {
				bars = append(bars, flatBar(inCycle))
			} else {
				bars = append(bars, polyBar(inCycle, start, timing.CycleLen, cfg.NotesPerBar))
			}
		}

		tracks = append(tracks, bars)
	}

	return tracks, nil
}
