package domain

import "time"

// Job represents a posted opening
type Job struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Category         string    `json:"category"`
	Description      string    `json:"description"`
	EmploymentType   string    `json:"employment_type"`
	SalaryRange      string    `json:"salary_range"`
	CreatedAt        time.Time `json:"created_at"`
	ApplicationCount int64     `json:"application_count"` // Derived from applications, never stored
}

// JobPayload is the writable part of a Job as submitted by an admin
type JobPayload struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	EmploymentType string `json:"employment_type"`
	SalaryRange    string `json:"salary_range"`
}

// JobMeta lists the distinct values currently used by stored jobs
type JobMeta struct {
	Categories      []string `json:"categories"`
	Locations       []string `json:"locations"`
	EmploymentTypes []string `json:"employment_types"`
}
