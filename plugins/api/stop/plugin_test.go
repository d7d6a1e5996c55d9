package stop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rom8726/chatsweep"
)

func TestPlugin_NameAndDescription(t *testing.T) {
	plugin := New(nil, nil)

	assert.Equal(t, "stop", plugin.Name())
	assert.NotEmpty(t, plugin.Description())
}

func TestHandleStopRun_Success(t *testing.T) {
	mockEngine := chatsweep.NewMockIEngine(t)
	mockEngine.EXPECT().Stop(mock.Anything, "run-1", "alice: too slow").Return(nil)

	jsonBody, _ := json.Marshal(StopRequest{Reason: "too slow"})
	req := httptest.NewRequest(http.MethodPost, "/api/runs/run-1/stop", bytes.NewBuffer(jsonBody))
	req.Header.Set("X-User", "alice")
	req.SetPathValue("run_id", "run-1")

	w := httptest.NewRecorder()
	HandleStopRun(mockEngine, ExtractUserFromHeader)(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)

	var resp StopResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, "alice: too slow", resp.RequestedBy)
}

func TestHandleStopRun_EmptyBody(t *testing.T) {
	mockEngine := chatsweep.NewMockIEngine(t)
	mockEngine.EXPECT().Stop(mock.Anything, "run-1", "api").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/runs/run-1/stop", nil)
	req.SetPathValue("run_id", "run-1")

	w := httptest.NewRecorder()
	HandleStopRun(mockEngine, ExtractUserFromHeader)(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestHandleStopRun_InvalidBody(t *testing.T) {
	mockEngine := chatsweep.NewMockIEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/runs/run-1/stop", bytes.NewBufferString("{"))
	req.SetPathValue("run_id", "run-1")

	w := httptest.NewRecorder()
	HandleStopRun(mockEngine, ExtractUserFromHeader)(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleStopRun_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", chatsweep.ErrEntityNotFound, http.StatusNotFound},
		{"finished", fmt.Errorf("run run-1: %w", chatsweep.ErrRunNotActive), http.StatusConflict},
		{"other", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockEngine := chatsweep.NewMockIEngine(t)
			mockEngine.EXPECT().Stop(mock.Anything, "run-1", mock.Anything).Return(tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/runs/run-1/stop", nil)
			req.SetPathValue("run_id", "run-1")

			w := httptest.NewRecorder()
			HandleStopRun(mockEngine, ExtractUserFromHeader)(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandleStopRun_ExtractUserError(t *testing.T) {
	mockEngine := chatsweep.NewMockIEngine(t)

	req := httptest.NewRequest(http.MethodPost, "/api/runs/run-1/stop", nil)
	req.SetPathValue("run_id", "run-1")

	w := httptest.NewRecorder()
	HandleStopRun(mockEngine, func(*http.Request) (string, error) {
		return "", errors.New("no user")
	})(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlugin_RegisterRoutes(t *testing.T) {
	mockEngine := chatsweep.NewMockIEngine(t)
	mockEngine.EXPECT().Stop(mock.Anything, "abc", "api").Return(nil)

	mux := http.NewServeMux()
	New(mockEngine, nil).RegisterRoutes(mux)

	req := httptest.NewRequest(http.MethodPost, "/api/runs/abc/stop", nil).WithContext(context.Background())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
}
