package ports

import (
	"context"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
)

// JobRepository defines storage operations for jobs and applications.
// Single-row lookups return (nil, nil) when the row does not exist.
type JobRepository interface {
	Search(ctx context.Context, criteria domain.Criteria) ([]domain.Job, error)
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id int64) (bool, error) // Cascades to applications
	Meta(ctx context.Context) (*domain.JobMeta, error)
	Count(ctx context.Context) (int64, error)
	Dump(ctx context.Context) ([]domain.Job, error) // For migration

	// Applications
	CreateApplication(ctx context.Context, app *domain.Application) error
	GetApplication(ctx context.Context, id int64) (*domain.Application, error)
	ListApplications(ctx context.Context, jobID int64) ([]domain.Application, error)

	Ping(ctx context.Context) error
}

// JobService defines the business logic for browsing and managing jobs
type JobService interface {
	SearchJobs(ctx context.Context, criteria domain.Criteria) ([]domain.Job, int64, error)
	GetJobMeta(ctx context.Context) (*domain.JobMeta, error)
	GetJob(ctx context.Context, rawID string) (*domain.Job, error)
	CreateJob(ctx context.Context, payload domain.JobPayload) (*domain.Job, error)
	DeleteJob(ctx context.Context, rawID string) error
	Health(ctx context.Context) error
}

// ApplicationService defines the business logic for candidate submissions
type ApplicationService interface {
	Submit(ctx context.Context, rawJobID string, payload domain.ApplicationPayload) (*domain.Application, error)
	ListForJob(ctx context.Context, rawJobID string) ([]domain.Application, error)
	Get(ctx context.Context, rawID string) (*domain.Application, error)
}
