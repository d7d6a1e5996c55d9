package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rom8726/chatsweep"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// StatusFromError maps registry and engine errors to an HTTP status.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, chatsweep.ErrEntityNotFound):
		return http.StatusNotFound
	case errors.Is(err, chatsweep.ErrRunNotActive):
		return http.StatusConflict
	case errors.Is(err, chatsweep.ErrNoChannels), errors.Is(err, chatsweep.ErrEmptyTarget):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func WriteErrorResponse(writer http.ResponseWriter, err error, statusCode int) {
	WriteJSON(writer, statusCode, ErrorResponse{Message: err.Error(), Status: statusCode})
}

// WriteError writes err with the status of StatusFromError.
func WriteError(writer http.ResponseWriter, err error) {
	WriteErrorResponse(writer, err, StatusFromError(err))
}

func WriteJSON(writer http.ResponseWriter, statusCode int, value any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(statusCode)

	_ = json.NewEncoder(writer).Encode(value)
}
