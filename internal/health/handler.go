package health

import (
	"context"
	"net/http"

	"mlserve/internal/pkg/message"
	"mlserve/internal/pkg/web"
)

// StorageChecker reports whether the log store is reachable.
type StorageChecker interface {
	CheckConnectivity(ctx context.Context) error
}

type Handler struct {
	checker StorageChecker
}

func NewHandler(checker StorageChecker) *Handler {
	return &Handler{checker: checker}
}

type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health reports process liveness only. It touches neither the model nor
// the store.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	web.SendJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// DBCheck reports storage readiness with a single round-trip query.
func (h *Handler) DBCheck(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.CheckConnectivity(r.Context()); err != nil {
		web.Fail(w, http.StatusServiceUnavailable, err, message.DBError, nil)
		return
	}

	web.SendJSON(w, http.StatusOK, statusResponse{Status: "ok", Message: message.DBHealthy})
}
