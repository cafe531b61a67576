// Package validation checks job and application payloads before they are
// persisted. Checks never short-circuit: every violation is reported, and
// the first message recorded for a field is the one kept in the field map.
package validation

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
)

// emailPart is one run of characters that are neither "@" nor whitespace.
// RE2's \s is ASCII only, so Unicode separators, \v and BOM are listed too.
const emailPart = `[^\s\v\p{Z}\x{FEFF}@]+`

// emailPattern is a sanity check (local@domain.tld without whitespace), not RFC 5322.
var emailPattern = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

type collector struct {
	errors []string
	fields domain.FieldErrors
}

func newCollector() *collector {
	return &collector{errors: []string{}, fields: domain.FieldErrors{}}
}

func (c *collector) add(key, msg string) {
	c.errors = append(c.errors, msg)
	if _, exists := c.fields[key]; !exists {
		c.fields[key] = msg
	}
}

func (c *collector) requireText(key, label, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(key, label+" is required.")
	}
}

func (c *collector) requireURL(key, label, value string) {
	if strings.TrimSpace(value) == "" {
		c.add(key, label+" is required.")
		return
	}
	if !isAbsoluteURL(value) {
		c.add(key, label+" must be a valid URL.")
	}
}

func (c *collector) result() domain.ValidationResult {
	return domain.ValidationResult{
		IsValid:     len(c.errors) == 0,
		Errors:      c.errors,
		FieldErrors: c.fields,
	}
}

// ValidateJob checks a job payload. Fields are checked in a fixed order so
// the error list is reproducible.
func ValidateJob(p domain.JobPayload) domain.ValidationResult {
	c := newCollector()
	c.requireText("title", "Title", p.Title)
	c.requireText("company", "Company", p.Company)
	c.requireText("location", "Location", p.Location)
	c.requireText("category", "Category", p.Category)
	c.requireText("description", "Description", p.Description)
	c.requireText("employment_type", "Employment type", p.EmploymentType)
	c.requireText("salary_range", "Salary range", p.SalaryRange)
	return c.result()
}

// ValidateApplication checks an application payload. The email format
// check runs last and only when an email was supplied at all.
func ValidateApplication(p domain.ApplicationPayload) domain.ValidationResult {
	c := newCollector()
	c.requireText("name", "Name", p.Name)
	c.requireText("email", "Email", p.Email)
	c.requireURL("resume_link", "Resume link", p.ResumeLink)
	c.requireText("cover_note", "Cover note", p.CoverNote)

	if p.Email != "" && !emailPattern.MatchString(strings.TrimSpace(p.Email)) {
		c.add("email", "Email must be properly formatted.")
	}
	return c.result()
}

// isAbsoluteURL accepts any URL with a scheme. Web schemes also need a host,
// which may follow the scheme without slashes ("http:example.com").
func isAbsoluteURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Scheme == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp", "ws", "wss":
		return webHost(u) != ""
	}
	return true
}

func webHost(u *url.URL) string {
	if u.Host != "" {
		return u.Host
	}
	rest := u.Opaque
	if rest == "" {
		rest = u.Path
	}
	rest = strings.TrimLeft(rest, `/\`)
	if i := strings.IndexAny(rest, `/\`); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
