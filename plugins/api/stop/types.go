package stop

import (
	"net/http"
)

type ExtractUserFn func(req *http.Request) (string, error)

type StopRequest struct {
	Reason string `json:"reason"`
}

type StopResponse struct {
	RunID       string `json:"run_id"`
	RequestedBy string `json:"requested_by"`
}
