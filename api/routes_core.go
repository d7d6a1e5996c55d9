package api

import (
	"fmt"
	"net/http"

	"github.com/rom8726/chatsweep"
)

func RegisterCoreRoutes(mux *http.ServeMux, store chatsweep.Store) {
	// Runs
	mux.HandleFunc("GET /api/runs", HandleGetAllRuns(store))
	mux.HandleFunc("GET /api/runs/active", HandleGetActiveRuns(store))
	mux.HandleFunc("GET /api/runs/{id}", HandleGetRun(store))
	mux.HandleFunc("GET /api/runs/{id}/deletions", HandleGetDeletions(store))
	mux.HandleFunc("GET /api/runs/{id}/events", HandleGetRunEvents(store))

	// Statistics
	mux.HandleFunc("GET /api/stats/summary", HandleGetSummaryStats(store))
}

func HandleGetAllRuns(store chatsweep.Store) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, err := store.GetAllRuns(r.Context())
		if err != nil {
			WriteError(w, fmt.Errorf("fetch runs: %w", err))

			return
		}

		WriteJSON(w, http.StatusOK, runs)
	}
}

func HandleGetActiveRuns(store chatsweep.Store) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		runs, err := store.GetActiveRuns(r.Context())
		if err != nil {
			WriteError(w, fmt.Errorf("fetch active runs: %w", err))

			return
		}

		WriteJSON(w, http.StatusOK, runs)
	}
}

func HandleGetRun(store chatsweep.Store) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		run, err := store.GetRun(r.Context(), r.PathValue("id"))
		if err != nil {
			WriteError(w, fmt.Errorf("fetch run: %w", err))

			return
		}

		WriteJSON(w, http.StatusOK, run)
	}
}

func HandleGetDeletions(store chatsweep.Store) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		deletions, err := store.GetDeletions(r.Context(), r.PathValue("id"))
		if err != nil {
			WriteError(w, fmt.Errorf("fetch deletions: %w", err))

			return
		}

		WriteJSON(w, http.StatusOK, deletions)
	}
}

func HandleGetRunEvents(store chatsweep.Store) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := store.GetRunEvents(r.Context(), r.PathValue("id"))
		if err != nil {
			WriteError(w, fmt.Errorf("fetch run events: %w", err))

			return
		}

		WriteJSON(w, http.StatusOK, events)
	}
}

func HandleGetSummaryStats(store chatsweep.Store) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.GetSummaryStats(r.Context())
		if err != nil {
			WriteError(w, fmt.Errorf("fetch summary stats: %w", err))

			return
		}

		WriteJSON(w, http.StatusOK, stats)
	}
}
