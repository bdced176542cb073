package model

// NoteEvent is one note-on extracted from a MIDI track: when it sounds
// (absolute seconds from the start of the file) and which pitch, already
// converted to a Strudel label like "c4" or "f#5".
type NoteEvent struct {
	Seconds float64
	Pitch   string
}

// TrackEvents maps a source MIDI track index to its note events in
// file order.
type TrackEvents = map[int][]NoteEvent

// RenderedTrack is the ordered bar strings produced for one track.
type RenderedTrack = []string
