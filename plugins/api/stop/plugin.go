package stop

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rom8726/chatsweep"
	"github.com/rom8726/chatsweep/api"
)

var _ api.Plugin = (*Plugin)(nil)

type Plugin struct {
	engine        chatsweep.IEngine
	extractUserFn ExtractUserFn
}

func New(engine chatsweep.IEngine, extractUserFn ExtractUserFn) *Plugin {
	if extractUserFn == nil {
		extractUserFn = ExtractUserFromHeader
	}

	return &Plugin{
		engine:        engine,
		extractUserFn: extractUserFn,
	}
}

func (p *Plugin) Name() string { return "stop" }

func (p *Plugin) Description() string { return "Stop a running sweep before its next page" }

func (p *Plugin) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc(
		"POST /api/runs/{run_id}/stop",
		HandleStopRun(p.engine, p.extractUserFn),
	)
}

// ExtractUserFromHeader reads the X-User header and falls back to "api".
func ExtractUserFromHeader(req *http.Request) (string, error) {
	if user := req.Header.Get("X-User"); user != "" {
		return user, nil
	}

	return "api", nil
}

func HandleStopRun(
	engine chatsweep.IEngine,
	extractUserFn ExtractUserFn,
) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		runID := r.PathValue("run_id")
		if runID == "" {
			api.WriteErrorResponse(w, errors.New("run id is required"), http.StatusBadRequest)

			return
		}

		user, err := extractUserFn(r)
		if err != nil {
			api.WriteErrorResponse(w, err, http.StatusUnauthorized)

			return
		}

		// the body is optional
		var stopReq StopRequest
		if r.Body != nil {
			if err := json.NewDecoder(r.Body).Decode(&stopReq); err != nil && !errors.Is(err, io.EOF) {
				api.WriteErrorResponse(w, err, http.StatusBadRequest)

				return
			}
		}

		requestedBy := user
		if stopReq.Reason != "" {
			requestedBy = user + ": " + stopReq.Reason
		}

		if err := engine.Stop(ctx, runID, requestedBy); err != nil {
			api.WriteError(w, err)

			return
		}

		api.WriteJSON(w, http.StatusAccepted, StopResponse{RunID: runID, RequestedBy: requestedBy})
	}
}
