package handler

import (
	"net/http"
	"strconv"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
)

const (
	totalCountHeader = "X-Total-Count"
	jobNotFound      = "Job not found."
)

type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

// List returns every job matching the query filters
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := domain.Criteria{
		Search:         q.Get("search"),
		Category:       q.Get("category"),
		Location:       q.Get("location"),
		EmploymentType: q.Get("employment_type"),
		Sort:           domain.SortMode(q.Get("sort")),
	}

	jobs, total, err := h.service.SearchJobs(r.Context(), criteria)
	if err != nil {
		writeError(w, r, err, jobNotFound)
		return
	}

	w.Header().Set(totalCountHeader, strconv.FormatInt(total, 10))
	writeJSON(w, http.StatusOK, jobs)
}

// Meta lists the filter choices currently in use
func (h *JobHandler) Meta(w http.ResponseWriter, r *http.Request) {
	meta, err := h.service.GetJobMeta(r.Context())
	if err != nil {
		writeError(w, r, err, jobNotFound)
		return
	}
	writeJSON(w, http.StatusOK, meta)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	job, err := h.service.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err, jobNotFound)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := decodeObject(r)
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	job, err := h.service.CreateJob(r.Context(), body.jobPayload())
	if err != nil {
		writeError(w, r, err, jobNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteJob(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, err, jobNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Health pings the store
func (h *JobHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Health(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]bool{"ok": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
