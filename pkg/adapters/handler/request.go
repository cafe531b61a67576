package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/wadjakorntonsri/go-job-board/pkg/core/domain"
)

var errNotObject = errors.New("request body is not a JSON object")

// jsonObject is a request body read member by member. A member of the wrong
// type reads as missing, so validation reports it against its own field.
type jsonObject map[string]json.RawMessage

func decodeObject(r *http.Request) (jsonObject, error) {
	var obj jsonObject
	if err := json.NewDecoder(r.Body).Decode(&obj); err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, errNotObject
	}
	return obj, nil
}

// text returns a JSON string member, or "" for anything else.
func (o jsonObject) text(key string) string {
	var s string
	if err := json.Unmarshal(o[key], &s); err != nil {
		return ""
	}
	return s
}

// scalar returns the contents of a string member or the literal of a
// number member.
func (o jsonObject) scalar(key string) string {
	raw := bytes.TrimSpace(o[key])
	if len(raw) == 0 {
		return ""
	}
	switch c := raw[0]; {
	case c == '"':
		return o.text(key)
	case c == '-' || (c >= '0' && c <= '9'):
		return string(raw)
	}
	return ""
}

func (o jsonObject) jobPayload() domain.JobPayload {
	return domain.JobPayload{
		Title:          o.text("title"),
		Company:        o.text("company"),
		Location:       o.text("location"),
		Category:       o.text("category"),
		Description:    o.text("description"),
		EmploymentType: o.text("employment_type"),
		SalaryRange:    o.text("salary_range"),
	}
}

func (o jsonObject) applicationPayload() domain.ApplicationPayload {
	return domain.ApplicationPayload{
		Name:       o.text("name"),
		Email:      o.text("email"),
		ResumeLink: o.text("resume_link"),
		CoverNote:  o.text("cover_note"),
	}
}
