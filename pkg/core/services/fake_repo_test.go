package services

import (
	"context"
	"sort"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
)

// fakeRepo is an in-memory ports.JobRepository for service tests.
type fakeRepo struct {
	jobs    map[int64]*domain.Job
	apps    map[int64]*domain.Application
	nextID  int64
	err     error // returned by every call when set
	created []*domain.Job

	createAppErr error // returned by CreateApplication only

}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{jobs: map[int64]*domain.Job{}, apps: map[int64]*domain.Application{}}
}

func (f *fakeRepo) Search(ctx context.Context, c domain.Criteria) ([]domain.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Job{}
	for _, j := range f.jobs {
		out = append(out, *j)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID > out[b].ID })
	return out, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	if f.err != nil {
		return nil, f.err
	}
	j, ok := f.jobs[id]
	if !ok {
		return nil, nil
	}
	cp := *j
	return &cp, nil
}

func (f *fakeRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.jobs[id]
	return ok, nil
}

func (f *fakeRepo) Create(ctx context.Context, job *domain.Job) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	job.ID = f.nextID
	f.jobs[job.ID] = job
	f.created = append(f.created, job)
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	if _, ok := f.jobs[id]; !ok {
		return false, nil
	}
	delete(f.jobs, id)
	for appID, a := range f.apps {
		if a.JobID == id {
			delete(f.apps, appID)
		}
	}
	return true, nil
}

func (f *fakeRepo) Meta(ctx context.Context) (*domain.JobMeta, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.JobMeta{}, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.jobs)), nil
}

func (f *fakeRepo) Dump(ctx context.Context) ([]domain.Job, error) {
	return f.Search(ctx, domain.Criteria{})
}

func (f *fakeRepo) CreateApplication(ctx context.Context, app *domain.Application) error {
	if f.err != nil {
		return f.err
	}
	if f.createAppErr != nil {
		return f.createAppErr
	}
	f.nextID++
	app.ID = f.nextID
	f.apps[app.ID] = app
	return nil
}

func (f *fakeRepo) GetApplication(ctx context.Context, id int64) (*domain.Application, error) {
	a, ok := f.apps[id]
	if !ok {
		return nil, f.err
	}
	return a, f.err
}

func (f *fakeRepo) ListApplications(ctx context.Context, jobID int64) ([]domain.Application, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Application{}
	for _, a := range f.apps {
		if a.JobID == jobID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeRepo) Ping(ctx context.Context) error {
	return f.err
}
