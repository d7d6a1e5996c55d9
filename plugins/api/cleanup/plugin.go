package cleanup

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rom8726/chatsweep"
	"github.com/rom8726/chatsweep/api"
)

var _ api.Plugin = (*Plugin)(nil)

type Plugin struct {
	store chatsweep.Store
}

func New(store chatsweep.Store) *Plugin {
	return &Plugin{
		store: store,
	}
}

func (p *Plugin) Name() string { return "cleanup" }

func (p *Plugin) Description() string { return "Forget finished runs from the run registry" }

func (p *Plugin) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/cleanup", HandleCleanupRuns(p.store))
}

func HandleCleanupRuns(
	store chatsweep.Store,
) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var cleanupReq CleanupRequest
		if err := json.NewDecoder(r.Body).Decode(&cleanupReq); err != nil {
			api.WriteErrorResponse(w, err, http.StatusBadRequest)

			return
		}

		if cleanupReq.DaysToKeep <= 0 {
			err := errors.New("days_to_keep must be greater than 0")
			api.WriteErrorResponse(w, err, http.StatusBadRequest)

			return
		}

		olderThan := time.Duration(cleanupReq.DaysToKeep) * 24 * time.Hour

		deletedCount, err := store.CleanupOldRuns(ctx, olderThan)
		if err != nil {
			api.WriteErrorResponse(w, err, http.StatusInternalServerError)

			return
		}

		response := CleanupResponse{
			DeletedCount: deletedCount,
			DaysToKeep:   cleanupReq.DaysToKeep,
		}

		api.WriteJSON(w, http.StatusOK, response)
	}
}
