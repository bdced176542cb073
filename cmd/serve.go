package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/constants"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/midi"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/model"
	"github.com/Emanuel-de-Jong/MIDI-To-Strudel/pattern"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the converter over HTTP",
	Long:  `Serves the converter over HTTP. POST raw MIDI bytes to /convert.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// queryInt reads an integer query parameter, falling back to def when
// absent. Returns ok=false on junk.
func queryInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

// HandleConvert converts the MIDI file in the request body. Options
// come in as query parameters: notes-per-bar, bar-limit, flat.
func HandleConvert(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	log := logrus.WithField("request", reqID)

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Errorf("Could not read request body: %v", err)
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	cfg := model.Config{TabSize: constants.DefaultTabSize}
	var ok bool
	if cfg.NotesPerBar, ok = queryInt(r, "notes-per-bar", constants.DefaultNotesPerBar); !ok {
		writeError(w, http.StatusBadRequest, "notes-per-bar must be an integer")
		return
	}
	if cfg.BarLimit, ok = queryInt(r, "bar-limit", 0); !ok {
		writeError(w, http.StatusBadRequest, "bar-limit must be an integer")
		return
	}
	cfg.FlatMode = r.URL.Query().Get("flat") == "true"

	s, err := midi.ParseMidi(body)
	if err != nil {
		log.Errorf("Bad MIDI payload: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	timing := midi.GetTiming(s)
	events, err := midi.CollectNoteEvents(s, timing)
	if err != nil {
		log.Errorf("Could not collect events: %v", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tracks, err := pattern.BuildTracks(events, timing, cfg)
	if err != nil {
		log.Errorf("Conversion failed: %v", err)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	log.Infof("Converted %v tracks at %v BPM", len(tracks), int(timing.BPM))
	json.NewEncoder(w).Encode(model.ConvertResponse{BPM: timing.BPM, Tracks: tracks})
}

func serve() error {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/convert", HandleConvert).Methods("POST")

	addr := constants.GetServeAddr()
	logrus.Infof("Listening on %v", addr)
	return http.ListenAndServe(addr, cors.Default().Handler(router))
}
