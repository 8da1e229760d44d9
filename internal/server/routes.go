package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"belote-engine/internal/database"
)

// ResultStore is the read side of database.Service.
type ResultStore interface {
	GetAll() ([]database.MatchResult, error)
	GetByID(id string) (database.MatchResult, error)
	GetByPlayer(name string) ([]database.MatchResult, error)
}

// HandleRoutes registers the results API on mux.
func HandleRoutes(mux *http.ServeMux, db ResultStore) {
	mux.HandleFunc("GET /api/results/player/{name}", func(w http.ResponseWriter, r *http.Request) {
		GetResultsByPlayerHandler(db, w, r)
	})
	log.Println("Registered route: /api/results/player/{name}")

	mux.HandleFunc("GET /api/results/{id}", func(w http.ResponseWriter, r *http.Request) {
		GetResultHandler(db, w, r)
	})
	log.Println("Registered route: /api/results/{id}")

	mux.HandleFunc("GET /api/results", func(w http.ResponseWriter, r *http.Request) {
		GetResultsHandler(db, w, r)
	})
	log.Println("Registered route: /api/results")
}

func GetResultsByPlayerHandler(db ResultStore, w http.ResponseWriter, r *http.Request) {
	player := r.PathValue("name")
	if player == "" {
		http.Error(w, "Player name is required", http.StatusBadRequest)
		return
	}

	results, err := db.GetByPlayer(player)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "No results found for player", http.StatusNotFound)
			return
		}
		log.Printf("Fetching results of %s: %v", player, err)
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}
	writeJSON(w, results)
}

func GetResultHandler(db ResultStore, w http.ResponseWriter, r *http.Request) {
	result, err := db.GetByID(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.Error(w, "No such match", http.StatusNotFound)
			return
		}
		log.Printf("Fetching result %s: %v", r.PathValue("id"), err)
		http.Error(w, "Failed to fetch result", http.StatusInternalServerError)
		return
	}
	writeJSON(w, result)
}

func GetResultsHandler(db ResultStore, w http.ResponseWriter, r *http.Request) {
	results, err := db.GetAll()
	if err != nil {
		log.Printf("Fetching results: %v", err)
		http.Error(w, "Failed to fetch results", http.StatusInternalServerError)
		return
	}
	if results == nil {
		results = []database.MatchResult{}
	}
	writeJSON(w, results)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Encoding response: %v", err)
	}
}
