package domain

import "time"

// Application represents a candidate submission for a single job
type Application struct {
	ID         int64     `json:"id"`
	JobID      int64     `json:"job_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ResumeLink string    `json:"resume_link"`
	CoverNote  string    `json:"cover_note"`
	CreatedAt  time.Time `json:"created_at"`
}

type ApplicationPayload struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	ResumeLink string `json:"resume_link"`
	CoverNote  string `json:"cover_note"`
}
