package pattern

import (
	"testing"

	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/model"
	"github.com/stretchr/testify/assert"
)

func testTiming() model.Timing {
	// 120 BPM, one 4-beat bar is 2 seconds
	return model.Timing{Tempo: 500000, BPM: 120, CycleLen: 2}
}

func testConfig() model.Config {
	return model.Config{NotesPerBar: 4, TabSize: 2}
}

func TestAdjustNearCycleEndMovesLateEvents(t *testing.T) {
	events := []model.NoteEvent{
		{Seconds: 0.951 * 2, Pitch: "c4"}, // rel 0.951, moves
		{Seconds: 0.94 * 2, Pitch: "e4"},  // rel 0.94, stays
		{Seconds: 2.0, Pitch: "g4"},       // on the boundary, stays
	}
	adjusted := AdjustNearCycleEnd(events, 2)

	assert := assert.New(t)
	assert.Equal(adjusted[0], model.NoteEvent{Seconds: 2.0, Pitch: "c4"})
	assert.Equal(adjusted[1], model.NoteEvent{Seconds: 1.88, Pitch: "e4"})
	assert.Equal(adjusted[2], model.NoteEvent{Seconds: 2.0, Pitch: "g4"})
}

func TestQuantizeTimeRoundsToNearestSlot(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(QuantizeTime(0, 0, 2, 4), 0.0)
	assert.Equal(QuantizeTime(0.55, 0, 2, 4), 0.25)
	assert.Equal(QuantizeTime(2.55, 2, 2, 4), 0.25)
	// rounds up into the next cycle
	assert.Equal(QuantizeTime(1.95, 0, 2, 4), 1.0)
}

func TestGroupChordsMergesNearbyPositions(t *testing.T) {
	events := []model.NoteEvent{
		{Seconds: 0.250, Pitch: "c4"},
		{Seconds: 0.252, Pitch: "e4"},
	}
	groups := GroupChords(events, 0, 1, 64)

	assert := assert.New(t)
	assert.Equal(len(groups), 1)
	assert.Equal(groups[0].Pos, 0.25)
	assert.Equal(groups[0].Pitches, []string{"c4", "e4"})
}

func TestGroupChordsKeepsDistantPositionsApart(t *testing.T) {
	events := []model.NoteEvent{
		{Seconds: 0.25, Pitch: "c4"},
		{Seconds: 0.30, Pitch: "e4"},
	}
	groups := GroupChords(events, 0, 1, 64)

	assert := assert.New(t)
	assert.Equal(len(groups), 2)
	assert.Equal(groups[0].Pitches, []string{"c4"})
	assert.Equal(groups[1].Pitches, []string{"e4"})
}

func TestBuildTracksSingleNoteBar(t *testing.T) {
	events := model.TrackEvents{
		0: {{Seconds: 0, Pitch: "c4"}},
	}
	tracks, err := BuildTracks(events, testTiming(), testConfig())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"c4"}})
}

func TestBuildTracksOffbeatPairBar(t *testing.T) {
	// slots [c4 - e4 -] reduce to [c4 e4]
	events := model.TrackEvents{
		0: {
			{Seconds: 0, Pitch: "c4"},
			{Seconds: 1, Pitch: "e4"},
		},
	}
	tracks, err := BuildTracks(events, testTiming(), testConfig())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"[c4 e4]"}})
}

func TestBuildTracksChordBar(t *testing.T) {
	events := model.TrackEvents{
		0: {
			{Seconds: 0, Pitch: "c4"},
			{Seconds: 0, Pitch: "e4"},
		},
	}
	tracks, err := BuildTracks(events, testTiming(), testConfig())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"[c4,e4]"}})
}

func TestBuildTracksSilentCycleRendersEmptyMarker(t *testing.T) {
	events := model.TrackEvents{
		0: {
			{Seconds: 0, Pitch: "c4"},
			{Seconds: 4.5, Pitch: "e4"},
		},
	}
	tracks, err := BuildTracks(events, testTiming(), testConfig())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"c4", "-", "[- e4 - -]"}})
}

func TestBuildTracksDropsEventQuantizedPastTheGrid(t *testing.T) {
	// rel 0.9 survives the nudge but rounds to slot 4 of 4
	events := model.TrackEvents{
		0: {{Seconds: 1.8, Pitch: "c4"}},
	}
	tracks, err := BuildTracks(events, testTiming(), testConfig())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"-"}})
}

func TestBuildTracksNudgedEventLandsInNextCycle(t *testing.T) {
	events := model.TrackEvents{
		0: {{Seconds: 1.91, Pitch: "c4"}},
	}
	tracks, err := BuildTracks(events, testTiming(), testConfig())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"-", "c4"}})
}

func TestBuildTracksFlatMode(t *testing.T) {
	cfg := testConfig()
	cfg.FlatMode = true
	events := model.TrackEvents{
		0: {
			{Seconds: 0.1, Pitch: "c4"},
			{Seconds: 0.05, Pitch: "e4"},
		},
	}
	tracks, err := BuildTracks(events, testTiming(), cfg)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"[e4 c4]"}})
}

func TestBuildTracksBarLimit(t *testing.T) {
	cfg := testConfig()
	cfg.BarLimit = 2
	events := model.TrackEvents{
		0: {
			{Seconds: 0, Pitch: "c4"},
			{Seconds: 2.0, Pitch: "d4"},
			{Seconds: 8.0, Pitch: "e4"},
		},
	}
	tracks, err := BuildTracks(events, testTiming(), cfg)

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"c4", "d4"}})
}

func TestBuildTracksAscendingTrackOrderAndSkipsEmpty(t *testing.T) {
	events := model.TrackEvents{
		2: {{Seconds: 0, Pitch: "g4"}},
		0: {{Seconds: 0, Pitch: "c4"}},
		1: {},
	}
	tracks, err := BuildTracks(events, testTiming(), testConfig())

	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(tracks, []model.RenderedTrack{{"c4"}, {"g4"}})
}

func TestBuildTracksRejectsBadConfig(t *testing.T) {
	events := model.TrackEvents{0: {{Seconds: 0, Pitch: "c4"}}}

	assert := assert.New(t)

	cfg := testConfig()
	cfg.NotesPerBar = 0
	_, err := BuildTracks(events, testTiming(), cfg)
	assert.Error(err)

	cfg = testConfig()
	cfg.BarLimit = -1
	_, err = BuildTracks(events, testTiming(), cfg)
	assert.Error(err)

	_, err = BuildTracks(events, model.Timing{}, testConfig())
	assert.Error(err)
}
