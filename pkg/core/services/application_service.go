package services

import (
	"context"
	"strings"
	"time"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/validation"
	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
)

var _ ports.ApplicationService = (*ApplicationService)(nil)

const invalidJobIDMessage = "Valid job_id is required."

type ApplicationService struct {
	repo ports.JobRepository
}

func NewApplicationService(repo ports.JobRepository) *ApplicationService {
	return &ApplicationService{repo: repo}
}

// Submit stores an application for an existing job. rawJobID is the text of
// the job_id value. A missing job is reported as not found even when the
// payload itself is also invalid.
func (s *ApplicationService) Submit(ctx context.Context, rawJobID string, payload domain.ApplicationPayload) (*domain.Application, error) {
	jobID, err := ParseJobReference(rawJobID)
	if err != nil {
		res := validation.ValidateApplication(payload)
		res.IsValid = false
		res.Errors = append([]string{invalidJobIDMessage}, res.Errors...)
		res.FieldErrors["job_id"] = invalidJobIDMessage
		return nil, &domain.ValidationError{Message: invalidJobIDMessage, Result: res}
	}

	exists, err := s.repo.Exists(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	if res := validation.ValidateApplication(payload); !res.IsValid {
		return nil, &domain.ValidationError{Message: "Invalid application payload.", Result: res}
	}

	app := &domain.Application{
		JobID:      jobID,
		Name:       strings.TrimSpace(payload.Name),
		Email:      strings.TrimSpace(payload.Email),
		ResumeLink: strings.TrimSpace(payload.ResumeLink),
		CoverNote:  strings.TrimSpace(payload.CoverNote),
		CreatedAt:  time.Now(),
	}

	if err := s.repo.CreateApplication(ctx, app); err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) ListForJob(ctx context.Context, rawJobID string) ([]domain.Application, error) {
	jobID, err := ParseID(rawJobID)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrNotFound
	}
	return s.repo.ListApplications(ctx, jobID)
}

// Get returns one application by id.
func (s *ApplicationService) Get(ctx context.Context, rawID string) (*domain.Application, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	app, err := s.repo.GetApplication(ctx, id)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, domain.ErrNotFound
	}
	return app, nil
}
