package services

import (
	"context"
	"errors"
	"testing"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
)

func validJobPayload() domain.JobPayload {
	return domain.JobPayload{
		Title:          "  Frontend Engineer ",
		Company:        "Northstar Commerce",
		Location:       "New York, USA",
		Category:       "Engineering",
		Description:    "Build things.",
		EmploymentType: "Full-time",
		SalaryRange:    "$110k - $140k",
	}
}

func TestParseID(t *testing.T) {
	for raw, wantErr := range map[string]bool{
		"1":     false,
		" 42 ":  false,
		"0":     true,
		"-3":    true,
		"abc":   true,
		"1.5":   true,
		"":      true,
		"9e999": true,
	} {
		_, err := ParseID(raw)
		if (err != nil) != wantErr {
			t.Errorf("ParseID(%q) err = %v, wantErr %v", raw, err, wantErr)
		}
		if err != nil && !errors.Is(err, domain.ErrInvalidID) {
			t.Errorf("ParseID(%q) err = %v, want ErrInvalidID", raw, err)
		}
	}
}

func TestCreateJob(t *testing.T) {
	repo := newFakeRepo()
	svc := NewJobService(repo)

	job, err := svc.CreateJob(context.Background(), validJobPayload())
	if err != nil {
		t.Fatal(err)
	}
	if job.ID == 0 || job.ApplicationCount != 0 {
		t.Errorf("job = %+v", job)
	}
	if job.Title != "Frontend Engineer" {
		t.Errorf("title not trimmed: %q", job.Title)
	}
	if job.CreatedAt.IsZero() {
		t.Error("created_at not assigned")
	}
}

func TestCreateJobInvalid(t *testing.T) {
	repo := newFakeRepo()
	svc := NewJobService(repo)

	_, err := svc.CreateJob(context.Background(), domain.JobPayload{})
	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if len(verr.Result.FieldErrors) != 7 {
		t.Errorf("field errors = %v", verr.Result.FieldErrors)
	}
	if len(repo.created) != 0 {
		t.Error("invalid payload must not reach the store")
	}
}

func TestGetJob(t *testing.T) {
	repo := newFakeRepo()
	svc := NewJobService(repo)
	created, _ := svc.CreateJob(context.Background(), validJobPayload())

	tests := []struct {
		name    string
		rawID   string
		wantErr error
	}{
		{name: "Found", rawID: "1"},
		{name: "Missing", rawID: "999999", wantErr: domain.ErrNotFound},
		{name: "Not an integer", rawID: "abc", wantErr: domain.ErrInvalidID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job, err := svc.GetJob(context.Background(), tt.rawID)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil || job.ID != created.ID {
				t.Errorf("GetJob = %+v, %v", job, err)
			}
		})
	}
}

func TestDeleteJob(t *testing.T) {
	repo := newFakeRepo()
	svc := NewJobService(repo)
	svc.CreateJob(context.Background(), validJobPayload())

	if err := svc.DeleteJob(context.Background(), "1"); err != nil {
		t.Fatal(err)
	}
	if err := svc.DeleteJob(context.Background(), "1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
	if err := svc.DeleteJob(context.Background(), "x"); !errors.Is(err, domain.ErrInvalidID) {
		t.Errorf("bad id err = %v, want ErrInvalidID", err)
	}
}

func TestSearchJobsTotalAndStoreFailure(t *testing.T) {
	repo := newFakeRepo()
	svc := NewJobService(repo)
	svc.CreateJob(context.Background(), validJobPayload())
	svc.CreateJob(context.Background(), validJobPayload())

	jobs, total, err := svc.SearchJobs(context.Background(), domain.Criteria{})
	if err != nil || total != 2 || len(jobs) != 2 {
		t.Errorf("SearchJobs = %d jobs, total %d, err %v", len(jobs), total, err)
	}

	repo.err = &domain.StoreError{Op: "search jobs", Err: errors.New("connection refused")}
	jobs, _, err = svc.SearchJobs(context.Background(), domain.Criteria{})
	if !errors.Is(err, domain.ErrStoreUnavailable) || jobs != nil {
		t.Errorf("err = %v, want ErrStoreUnavailable", err)
	}
}

func TestSeedSampleJobs(t *testing.T) {
	repo := newFakeRepo()
	svc := NewJobService(repo)

	n, err := svc.SeedSampleJobs(context.Background())
	if err != nil || n != len(SampleJobs) {
		t.Fatalf("first seed = %d, %v", n, err)
	}
	for i := 1; i < len(repo.created); i++ {
		if !repo.created[i].CreatedAt.After(repo.created[i-1].CreatedAt) {
			t.Error("sample timestamps must increase")
		}
	}

	n, err = svc.SeedSampleJobs(context.Background())
	if err != nil || n != 0 {
		t.Errorf("second seed = %d, %v; want 0", n, err)
	}
}
