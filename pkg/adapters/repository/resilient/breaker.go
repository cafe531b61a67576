// Package resilient wraps a job repository in a circuit breaker so an
// unreachable store fails fast instead of piling up requests.
package resilient

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/logging"
	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
)

var _ ports.JobRepository = (*Repository)(nil)

type Settings struct {
	Name                string
	ConsecutiveFailures uint32        // Trip after this many failures in a row
	OpenTimeout         time.Duration // Time spent open before probing again
}

type Repository struct {
	next ports.JobRepository
	cb   *gobreaker.CircuitBreaker
}

func New(next ports.JobRepository, s Settings) *Repository {
	if s.Name == "" {
		s.Name = "job-store"
	}
	if s.ConsecutiveFailures == 0 {
		s.ConsecutiveFailures = 5
	}
	if s.OpenTimeout == 0 {
		s.OpenTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: 1,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= s.ConsecutiveFailures
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Logger().WithField("breaker", name).Warnf("circuit breaker %s -> %s", from, to)
		},
	})
	return &Repository{next: next, cb: cb}
}

// isSuccessful counts only store faults against the breaker. Callers giving
// up on a request says nothing about the store's health.
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	return !errors.Is(err, domain.ErrStoreUnavailable)
}

func (r *Repository) State() gobreaker.State {
	return r.cb.State()
}

func run[T any](r *Repository, fn func() (T, error)) (T, error) {
	v, err := r.cb.Execute(func() (interface{}, error) {
		res, err := fn()
		return res, err
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, &domain.StoreError{Op: r.cb.Name(), Err: err}
		}
		return zero, err
	}
	return v.(T), nil
}

func (r *Repository) Search(ctx context.Context, criteria domain.Criteria) ([]domain.Job, error) {
	return run(r, func() ([]domain.Job, error) { return r.next.Search(ctx, criteria) })
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	return run(r, func() (*domain.Job, error) { return r.next.GetByID(ctx, id) })
}

func (r *Repository) Exists(ctx context.Context, id int64) (bool, error) {
	return run(r, func() (bool, error) { return r.next.Exists(ctx, id) })
}

func (r *Repository) Create(ctx context.Context, job *domain.Job) error {
	_, err := run(r, func() (struct{}, error) { return struct{}{}, r.next.Create(ctx, job) })
	return err
}

func (r *Repository) Delete(ctx context.Context, id int64) (bool, error) {
	return run(r, func() (bool, error) { return r.next.Delete(ctx, id) })
}

func (r *Repository) Meta(ctx context.Context) (*domain.JobMeta, error) {
	return run(r, func() (*domain.JobMeta, error) { return r.next.Meta(ctx) })
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	return run(r, func() (int64, error) { return r.next.Count(ctx) })
}

func (r *Repository) Dump(ctx context.Context) ([]domain.Job, error) {
	return run(r, func() ([]domain.Job, error) { return r.next.Dump(ctx) })
}

func (r *Repository) CreateApplication(ctx context.Context, app *domain.Application) error {
	_, err := run(r, func() (struct{}, error) { return struct{}{}, r.next.CreateApplication(ctx, app) })
	return err
}

func (r *Repository) GetApplication(ctx context.Context, id int64) (*domain.Application, error) {
	return run(r, func() (*domain.Application, error) { return r.next.GetApplication(ctx, id) })
}

func (r *Repository) ListApplications(ctx context.Context, jobID int64) ([]domain.Application, error) {
	return run(r, func() ([]domain.Application, error) { return r.next.ListApplications(ctx, jobID) })
}

func (r *Repository) Ping(ctx context.Context) error {
	_, err := run(r, func() (struct{}, error) { return struct{}{}, r.next.Ping(ctx) })
	return err
}
