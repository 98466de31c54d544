package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordsense/chord"
	"github.com/jsphweid/chordsense/constants"
	"github.com/jsphweid/chordsense/key"
	"github.com/jsphweid/chordsense/model"
	"github.com/jsphweid/chordsense/note"
	"github.com/jsphweid/chordsense/util"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the identify/suggest API",
	Long:  `Serves the identify/suggest API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, msg string, code int) {
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.IdentifyRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "could not parse request body: "+err.Error(), 400)
		return
	}
	if len(input.Notes) < 2 {
		writeError(w, "need at least 2 notes", 400)
		return
	}

	candidates := chord.Identify(input.Notes, chord.DefaultDictionary())
	res := model.IdentifyResponse{Candidates: candidates}
	if res.Candidates == nil {
		res.Candidates = []model.ChordCandidate{}
	}
	json.NewEncoder(w).Encode(res)
}

func HandleSuggest(w http.ResponseWriter, r *http.Request) {
	var input model.SuggestRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, "could not parse request body: "+err.Error(), 400)
		return
	}
	if _, ok := note.PitchClass(input.Note); !ok {
		writeError(w, "unknown note name: "+input.Note, 400)
		return
	}

	evt := model.NoteEvent{
		Name:   input.Note,
		Octave: note.OctaveForMidi(input.Midi),
		Midi:   input.Midi,
	}
	kc := key.Context{Root: input.Key.Root, Type: input.Key.Type}
	candidate := key.Suggest(evt, kc, chord.DefaultDictionary())
	json.NewEncoder(w).Encode(model.SuggestResponse{Candidate: candidate})
}

func HandleDictionary(w http.ResponseWriter, r *http.Request) {
	dict := chord.DefaultDictionary()
	res := make(map[string][]int)
	for _, name := range util.SortedKeys(dict) {
		res[name] = dict[name]
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	router.HandleFunc("/suggest", HandleSuggest).Methods("POST")
	router.HandleFunc("/dictionary", HandleDictionary).Methods("GET")

	handler := cors.Default().Handler(router)
	addr := constants.GetServeAddr()
	fmt.Printf("Serving on %v\n", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}
