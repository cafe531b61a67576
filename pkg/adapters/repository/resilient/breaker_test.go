package resilient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
)

type flakyRepo struct {
	ports.JobRepository
	err   error
	calls int
}

func (f *flakyRepo) Search(ctx context.Context, c domain.Criteria) ([]domain.Job, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Job{{ID: 1, Title: "Frontend Engineer"}}, nil
}

func (f *flakyRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	f.calls++
	return nil, f.err
}

func TestBreakerTripsOnStoreErrors(t *testing.T) {
	next := &flakyRepo{err: &domain.StoreError{Op: "search jobs", Err: errors.New("connection refused")}}
	repo := New(next, Settings{ConsecutiveFailures: 2, OpenTimeout: time.Minute})
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := repo.Search(ctx, domain.Criteria{}); !errors.Is(err, domain.ErrStoreUnavailable) {
			t.Fatalf("call %d err = %v", i, err)
		}
	}
	if repo.State() != gobreaker.StateOpen {
		t.Fatalf("state = %v, want open", repo.State())
	}

	_, err := repo.Search(ctx, domain.Criteria{})
	if !errors.Is(err, domain.ErrStoreUnavailable) || !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("open breaker err = %v", err)
	}
	if next.calls != 2 {
		t.Errorf("store called %d times, want 2", next.calls)
	}
}

func TestBreakerIgnoresCancellation(t *testing.T) {
	next := &flakyRepo{err: context.Canceled}
	repo := New(next, Settings{ConsecutiveFailures: 1})

	for i := 0; i < 3; i++ {
		if _, err := repo.Search(context.Background(), domain.Criteria{}); !errors.Is(err, context.Canceled) {
			t.Fatalf("err = %v", err)
		}
	}
	if repo.State() != gobreaker.StateClosed {
		t.Errorf("state = %v, want closed", repo.State())
	}
}

func TestBreakerPassesResults(t *testing.T) {
	next := &flakyRepo{}
	repo := New(next, Settings{})

	jobs, err := repo.Search(context.Background(), domain.Criteria{})
	if err != nil || len(jobs) != 1 {
		t.Errorf("Search = %v, %v", jobs, err)
	}

	job, err := repo.GetByID(context.Background(), 7)
	if err != nil || job != nil {
		t.Errorf("GetByID(missing) = %v, %v; want nil, nil", job, err)
	}
}
