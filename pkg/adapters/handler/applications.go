package handler

import (
	"net/http"

	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
)

const applicationNotFound = "Application not found."

type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

// Submit accepts job_id as a JSON number or numeric string.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	app, err := h.service.Submit(r.Context(), body.scalar("job_id"), body.applicationPayload())
	if err != nil {
		writeError(w, r, err, jobNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// ListForJob returns the applications received for one job (admin only)
func (h *ApplicationHandler) ListForJob(w http.ResponseWriter, r *http.Request) {
	apps, err := h.service.ListForJob(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, jobNotFound)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(w http.ResponseWriter, r *http.Request) {
	app, err := h.service.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, applicationNotFound)
		return
	}
	writeJSON(w, http.StatusOK, app)
}
