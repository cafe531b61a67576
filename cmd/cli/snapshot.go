package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
	"github.com/wadjakorntonsri/go-job-board/pkg/core/validation"
	"github.com/wadjakorntonsri/go-job-board/pkg/logging"
	"github.com/wadjakorntonsri/go-job-board/pkg/ports"
)

// snapshot is the export file layout. Application job ids refer to job ids
// inside the same file.
type snapshot struct {
	Jobs         []domain.Job         `json:"jobs"`
	Applications []domain.Application `json:"applications"`
}

type importStats struct {
	Jobs         int
	Applications int
	Skipped      int
}

func exportSnapshot(ctx context.Context, repo ports.JobRepository, w io.Writer) error {
	jobs, err := repo.Dump(ctx)
	if err != nil {
		return err
	}

	snap := snapshot{Jobs: jobs, Applications: []domain.Application{}}
	for _, job := range jobs {
		apps, err := repo.ListApplications(ctx, job.ID)
		if err != nil {
			return err
		}
		snap.Applications = append(snap.Applications, apps...)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// importSnapshot inserts every valid record from r. Jobs get fresh ids and
// applications follow their job; invalid or orphaned records are skipped.
func importSnapshot(ctx context.Context, repo ports.JobRepository, r io.Reader) (importStats, error) {
	var snap snapshot
	var stats importStats
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return stats, fmt.Errorf("decode snapshot: %w", err)
	}
	log := logging.FromContext(ctx)

	ids := make(map[int64]int64, len(snap.Jobs))
	for _, j := range snap.Jobs {
		payload := domain.JobPayload{
			Title:          j.Title,
			Company:        j.Company,
			Location:       j.Location,
			Category:       j.Category,
			Description:    j.Description,
			EmploymentType: j.EmploymentType,
			SalaryRange:    j.SalaryRange,
		}
		if res := validation.ValidateJob(payload); !res.IsValid {
			log.WithField("job_id", j.ID).Warnf("skipping job: %v", res.Errors)
			stats.Skipped++
			continue
		}

		oldID := j.ID
		job := j
		job.ID = 0
		if err := repo.Create(ctx, &job); err != nil {
			return stats, err
		}
		ids[oldID] = job.ID
		stats.Jobs++
	}

	for _, a := range snap.Applications {
		jobID, ok := ids[a.JobID]
		if !ok {
			log.WithField("application_id", a.ID).Warn("skipping application for unknown job")
			stats.Skipped++
			continue
		}
		payload := domain.ApplicationPayload{
			Name:       a.Name,
			Email:      a.Email,
			ResumeLink: a.ResumeLink,
			CoverNote:  a.CoverNote,
		}
		if res := validation.ValidateApplication(payload); !res.IsValid {
			log.WithField("application_id", a.ID).Warnf("skipping application: %v", res.Errors)
			stats.Skipped++
			continue
		}

		app := a
		app.ID = 0
		app.JobID = jobID
		if err := repo.CreateApplication(ctx, &app); err != nil {
			return stats, err
		}
		stats.Applications++
	}
	return stats, nil
}
