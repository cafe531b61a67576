package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/logging"
)

// errorResponse is the body of every non-2xx API response
type errorResponse struct {
	Message string             `json:"message"`
	Errors  []string           `json:"errors,omitempty"`
	Fields  domain.FieldErrors `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Logger().WithError(err).Warn("encode response")
	}
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Message: msg})
}

// writeError maps service errors onto HTTP responses. Anything that is not
// a validation, lookup or id problem is logged and hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, err error, notFoundMsg string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Message: verr.Message,
			Errors:  verr.Result.Errors,
			Fields:  verr.Result.FieldErrors,
		})
	case errors.Is(err, domain.ErrInvalidID):
		writeMessage(w, http.StatusBadRequest, "Invalid job id.")
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, context.Canceled):
		logging.FromContext(r.Context()).WithError(err).Info("request abandoned by client")
	default:
		logging.FromContext(r.Context()).
			WithError(err).
			WithField("store_unavailable", errors.Is(err, domain.ErrStoreUnavailable)).
			Errorf("%s %s failed", r.Method, r.URL.Path)
		writeMessage(w, http.StatusInternalServerError, "Internal server error.")
	}
}
