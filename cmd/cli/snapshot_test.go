package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/wadjakorntonsri/go-job-board/pkg/adapters/repository/sqlstore"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/services"
)

func openRepo(t *testing.T, name string) *sqlstore.SQLRepository {
	t.Helper()
	repo, err := sqlstore.NewSQLRepository(fmt.Sprintf("file:%s_%s?mode=memory&cache=shared", t.Name(), name))
	if err != nil {
		t.Fatalf("Failed to init db: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestExportImportRoundTrip(t *testing.T) {
	ctx := context.Background()
	src := openRepo(t, "src")

	if _, err := services.NewJobService(src).SeedSampleJobs(ctx); err != nil {
		t.Fatalf("seed: %v", err)
	}
	jobs, err := src.Dump(ctx)
	if err != nil {
		t.Fatal(err)
	}
	app := &domain.Application{
		JobID:      jobs[0].ID,
		Name:       "Ada",
		Email:      "ada@example.com",
		ResumeLink: "https://example.com/ada.pdf",
		CoverNote:  "Hello",
	}
	if err := src.CreateApplication(ctx, app); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := exportSnapshot(ctx, src, &buf); err != nil {
		t.Fatalf("export: %v", err)
	}

	var snap snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if len(snap.Jobs) != len(services.SampleJobs) || len(snap.Applications) != 1 {
		t.Fatalf("Unexpected snapshot sizes: %d jobs, %d applications", len(snap.Jobs), len(snap.Applications))
	}

	dst := openRepo(t, "dst")
	stats, err := importSnapshot(ctx, dst, &buf)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if stats.Jobs != len(services.SampleJobs) || stats.Applications != 1 || stats.Skipped != 0 {
		t.Errorf("Unexpected stats: %+v", stats)
	}

	imported, err := dst.Search(ctx, domain.Criteria{Sort: domain.SortApplications})
	if err != nil {
		t.Fatal(err)
	}
	if imported[0].Title != jobs[0].Title || imported[0].ApplicationCount != 1 {
		t.Errorf("Application did not follow its job: %+v", imported[0])
	}
}

func TestImportSkipsInvalidRecords(t *testing.T) {
	ctx := context.Background()
	repo := openRepo(t, "db")

	input := `{
	  "jobs": [
	    {"id": 7, "title": "Go Engineer", "company": "Acme", "location": "Remote", "category": "Engineering",
	     "description": "Build things.", "employment_type": "Full-time", "salary_range": "$1"},
	    {"id": 8, "title": "", "company": "Acme"}
	  ],
	  "applications": [
	    {"job_id": 7, "name": "Ada", "email": "not-an-email", "resume_link": "https://example.com", "cover_note": "Hi"},
	    {"job_id": 8, "name": "Bob", "email": "bob@example.com", "resume_link": "https://example.com", "cover_note": "Hi"},
	    {"job_id": 7, "name": "Cy", "email": "cy@example.com", "resume_link": "https://example.com", "cover_note": "Hi"}
	  ]
	}`

	stats, err := importSnapshot(ctx, repo, strings.NewReader(input))
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	want := importStats{Jobs: 1, Applications: 1, Skipped: 3}
	if stats != want {
		t.Errorf("Expected %+v, got %+v", want, stats)
	}
}

func TestImportRejectsMalformedInput(t *testing.T) {
	repo := openRepo(t, "db")
	if _, err := importSnapshot(context.Background(), repo, strings.NewReader("{")); err == nil {
		t.Error("Expected decode error")
	}
}
