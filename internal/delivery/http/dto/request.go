package dto

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"talentx/internal/domain/application"
	"talentx/internal/domain/invitation"

	"github.com/google/uuid"
)

// utcTimestamp accepts only UTC instants written with a Z suffix.
var utcTimestamp = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?Z$`)

// FieldErrors maps a request field to what is wrong with it.
type FieldErrors map[string]string

func (f FieldErrors) add(field, msg string) {
	if _, ok := f[field]; !ok {
		f[field] = msg
	}
}

func (f FieldErrors) OrNil() FieldErrors {
	if len(f) == 0 {
		return nil
	}
	return f
}

type CreateJobRequest struct {
	Title       string   `json:"title"`
	CompanyName string   `json:"companyName"`
	TechStack   []string `json:"techStack"`
	Deadline    string   `json:"deadline"`
}

// Validate checks shape and returns the parsed deadline. Whether the deadline
// lies in the future is the use case's call.
func (r CreateJobRequest) Validate() (time.Time, FieldErrors) {
	errs := FieldErrors{}

	switch n := utf8.RuneCountInString(r.Title); {
	case n == 0:
		errs.add("title", "Title is required")
	case n > 200:
		errs.add("title", "Title too long")
	}

	switch n := utf8.RuneCountInString(r.CompanyName); {
	case n == 0:
		errs.add("companyName", "Company name is required")
	case n > 100:
		errs.add("companyName", "Company name too long")
	}

	switch {
	case len(r.TechStack) == 0:
		errs.add("techStack", "At least one technology is required")
	case len(r.TechStack) > 20:
		errs.add("techStack", "Too many technologies")
	}
	for _, t := range r.TechStack {
		if t == "" {
			errs.add("techStack", "Technologies must not be empty")
		}
	}

	var deadline time.Time
	if !utcTimestamp.MatchString(r.Deadline) {
		errs.add("deadline", "Invalid deadline format. Use ISO 8601 format.")
	} else if t, err := time.Parse(time.RFC3339Nano, r.Deadline); err != nil {
		errs.add("deadline", "Invalid deadline format. Use ISO 8601 format.")
	} else {
		deadline = t
	}

	return deadline, errs.OrNil()
}

type ApplyRequest struct {
	Source application.Source `json:"source"`
}

func (r ApplyRequest) Validate() FieldErrors {
	if !r.Source.Valid() {
		return FieldErrors{"source": "Source must be MANUAL or INVITATION"}
	}
	return nil
}

type InviteRequest struct {
	TalentID string `json:"talentId"`
}

func (r InviteRequest) Validate() (uuid.UUID, FieldErrors) {
	id, err := uuid.Parse(strings.TrimSpace(r.TalentID))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, FieldErrors{"talentId": "Invalid talent ID"}
	}
	return id, nil
}

type RespondRequest struct {
	Status invitation.Status `json:"status"`
}

func (r RespondRequest) Validate() FieldErrors {
	if !r.Status.IsResponse() {
		return FieldErrors{"status": "Status must be ACCEPTED or DECLINED"}
	}
	return nil
}
