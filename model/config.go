package model

import "fmt"

// Config carries the conversion options. It is passed explicitly through
// every call instead of living in package state.
type Config struct {
	// NotesPerBar is the grid resolution per cycle. Usually a power of
	// two; other values reduce less but still work.
	NotesPerBar int
	// BarLimit caps how many bars get converted per track. 0 means no
	// limit.
	BarLimit int
	// FlatMode drops sub-cycle timing and chords, listing each cycle's
	// notes in time order.
	FlatMode bool
	// TabSize is the number of spaces per indent level in the output.
	TabSize int
}

func (c Config) Validate() error {
	if c.NotesPerBar <= 0 {
		return fmt.Errorf("notes-per-bar must be positive, got %v", c.NotesPerBar)
	}
	if c.BarLimit < 0 {
		return fmt.Errorf("bar-limit must be >= 0, got %v", c.BarLimit)
	}
	if c.TabSize < 0 {
		return fmt.Errorf("tab-size must be >= 0, got %v", c.TabSize)
	}
	return nil
}

// Timing holds the tempo values derived from the MIDI file. A single
// constant tempo is assumed for the whole conversion.
type Timing struct {
	// Tempo in microseconds per quarter note.
	Tempo uint32
	BPM   float64
	// CycleLen is the length of one 4-beat bar in seconds.
	CycleLen float64
}

func (t Timing) Validate() error {
	if t.CycleLen <= 0 {
		return fmt.Errorf("cycle length must be positive, got %v", t.CycleLen)
	}
	return nil
}
