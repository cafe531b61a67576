package services

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/validation"
	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
)

var _ ports.JobService = (*JobService)(nil)

type JobService struct {
	repo ports.JobRepository
}

func NewJobService(repo ports.JobRepository) *JobService {
	return &JobService{repo: repo}
}

// ParseID accepts only a well-formed positive integer.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

// ParseJobReference reads the job_id of a submission. Any integer value is
// accepted, including "-5", "1.0" and "1e3"; whether a job carries that id
// is for the store to answer.
func ParseJobReference(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, domain.ErrInvalidID
	}
	return int64(f), nil
}

// SearchJobs returns every job matching the criteria together with the
// size of the returned set. No paging window is applied.
func (s *JobService) SearchJobs(ctx context.Context, criteria domain.Criteria) ([]domain.Job, int64, error) {
	jobs, err := s.repo.Search(ctx, criteria.Normalize())
	if err != nil {
		return nil, 0, err
	}
	return jobs, int64(len(jobs)), nil
}

func (s *JobService) GetJobMeta(ctx context.Context) (*domain.JobMeta, error) {
	return s.repo.Meta(ctx)
}

func (s *JobService) GetJob(ctx context.Context, rawID string) (*domain.Job, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, domain.ErrNotFound
	}
	return job, nil
}

func (s *JobService) CreateJob(ctx context.Context, payload domain.JobPayload) (*domain.Job, error) {
	if res := validation.ValidateJob(payload); !res.IsValid {
		return nil, &domain.ValidationError{Message: "Invalid job payload.", Result: res}
	}

	job := &domain.Job{
		Title:          strings.TrimSpace(payload.Title),
		Company:        strings.TrimSpace(payload.Company),
		Location:       strings.TrimSpace(payload.Location),
		Category:       strings.TrimSpace(payload.Category),
		Description:    strings.TrimSpace(payload.Description),
		EmploymentType: strings.TrimSpace(payload.EmploymentType),
		SalaryRange:    strings.TrimSpace(payload.SalaryRange),
		CreatedAt:      time.Now(),
	}

	if err := s.repo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a job; its applications go with it.
func (s *JobService) DeleteJob(ctx context.Context, rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrNotFound
	}
	return nil
}

func (s *JobService) Health(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
