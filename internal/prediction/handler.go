package prediction

import (
	"context"
	"errors"
	"io"
	"net/http"

	"mlserve/internal/feature"
	"mlserve/internal/pkg/message"
	"mlserve/internal/pkg/web"

	"github.com/ferdiebergado/gopherkit/http/response"
)

type Service interface {
	Predict(ctx context.Context, vec feature.Vector) (LogEntry, error)
}

type Handler struct {
	svc          Service
	schema       *feature.Schema
	maxBodyBytes int64
}

func NewHandler(svc Service, schema *feature.Schema, maxBodyBytes int64) *Handler {
	return &Handler{
		svc:          svc,
		schema:       schema,
		maxBodyBytes: maxBodyBytes,
	}
}

type PredictResponse struct {
	Prediction int `json:"prediction"`
}

// Predict validates the payload, scores it and responds only after the
// log entry has been committed. Validation failures never reach the model
// or the store.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			web.Fail(w, http.StatusRequestEntityTooLarge, err, message.InvalidInput, nil)
			return
		}
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	vec, fieldErrs, err := h.schema.Parse(body)
	if err != nil {
		details := map[string]string{"body": "must be a valid JSON object"}
		web.Fail(w, http.StatusUnprocessableEntity, err, message.InvalidInput, details)
		return
	}
	if len(fieldErrs) > 0 {
		web.Fail(w, http.StatusUnprocessableEntity, errors.New("invalid input"), message.InvalidInput, fieldErrs)
		return
	}

	entry, err := h.svc.Predict(r.Context(), vec)
	if err != nil {
		response.ServerError(w, err)
		return
	}

	web.SendJSON(w, http.StatusOK, PredictResponse{Prediction: entry.Prediction})
}
