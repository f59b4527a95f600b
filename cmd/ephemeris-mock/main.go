package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

// Serves canned planet positions from data/positions.json so the API
// server can run without a real Swiss-Ephemeris deployment. The file maps
// lowercase planet names to position records.
func main() {
	dataPath := "data/positions.json"
	if p := os.Getenv("FATESHIFT_POSITIONS_PATH"); p != "" {
		dataPath = p
	}

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok","mode":"mock"}`))
	})

	http.HandleFunc("/planet/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "POST only", http.StatusMethodNotAllowed)
			return
		}

		name := strings.ToLower(strings.TrimPrefix(r.URL.Path, "/planet/"))
		if name == "" {
			http.Error(w, "planet name required", http.StatusBadRequest)
			return
		}

		b, err := os.ReadFile(dataPath)
		if err != nil {
			http.Error(w, "cannot read positions.json: "+err.Error(), http.StatusInternalServerError)
			return
		}

		var positions map[string]json.RawMessage
		if err := json.Unmarshal(b, &positions); err != nil {
			http.Error(w, "positions.json invalid JSON: "+err.Error(), http.StatusInternalServerError)
			return
		}

		pos, ok := positions[name]
		if !ok {
			http.Error(w, "unknown planet: "+name, http.StatusBadRequest)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(pos)
	})

	log.Println("ephemeris-mock listening on http://localhost:9000")
	log.Fatal(http.ListenAndServe(":9000", nil))
}
