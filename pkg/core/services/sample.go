package services

import (
	"context"
	"time"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
)

// SampleJobs is the starter listing used to seed an empty board.
var SampleJobs = []domain.JobPayload{
	{
		Title:          "Senior Product Designer",
		Company:        "Orbit Labs",
		Location:       "Remote",
		Category:       "Design",
		Description:    "Lead end-to-end product design across the hiring funnel. Work with product, engineering, and growth teams on clear user journeys, polished UI systems, and measurable conversion improvements.",
		EmploymentType: "Full-time",
		SalaryRange:    "$95k - $120k",
	},
	{
		Title:          "Frontend Engineer",
		Company:        "Northstar Commerce",
		Location:       "New York, USA",
		Category:       "Engineering",
		Description:    "Build performant candidate and employer experiences using React and modern frontend tooling, together with backend engineers shipping job discovery and employer dashboard features.",
		EmploymentType: "Full-time",
		SalaryRange:    "$110k - $140k",
	},
	{
		Title:          "Growth Marketing Manager",
		Company:        "Aster Works",
		Location:       "London, UK",
		Category:       "Marketing",
		Description:    "Own campaign strategy across paid, lifecycle, and content channels. Analyze funnel performance, launch experiments, and sharpen the employer acquisition motion.",
		EmploymentType: "Contract",
		SalaryRange:    "$70k - $90k",
	},
	{
		Title:          "Customer Success Lead",
		Company:        "Brightlane HR",
		Location:       "Dhaka, Bangladesh",
		Category:       "Operations",
		Description:    "Support hiring teams from onboarding through long-term expansion. Improve help resources, partner with product on customer issues, and shape operational processes.",
		EmploymentType: "Full-time",
		SalaryRange:    "$45k - $60k",
	},
}

// SeedSampleJobs inserts SampleJobs when the board is empty and reports how
// many jobs were added.
func (s *JobService) SeedSampleJobs(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	// Space the timestamps so "newest" lists the last sample first.
	base := time.Now().Add(-time.Duration(len(SampleJobs)) * time.Minute)
	for i, p := range SampleJobs {
		job := &domain.Job{
			Title:          p.Title,
			Company:        p.Company,
			Location:       p.Location,
			Category:       p.Category,
			Description:    p.Description,
			EmploymentType: p.EmploymentType,
			SalaryRange:    p.SalaryRange,
			CreatedAt:      base.Add(time.Duration(i) * time.Minute),
		}
		if err := s.repo.Create(ctx, job); err != nil {
			return i, err
		}
	}
	return len(SampleJobs), nil
}
