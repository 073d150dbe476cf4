package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

/*

An Internship is one tracked application. Internships are values: the book never edits one in place,
an edit is always a replace of the old value with a new one.

Two Internships are the "same internship" when company and role match (ignoring case, surrounding
whitespace and Unicode normalization form). ID is only the storage identity and is not part of that.

*/

type Status string

const (
	StatusInterested   Status = "Interested"
	StatusApplied      Status = "Applied"
	StatusInterviewing Status = "Interviewing"
	StatusOffered      Status = "Offered"
	StatusRejected     Status = "Rejected"
	StatusAccepted     Status = "Accepted"
)

// Statuses in pipeline order, which is also the order ByStatus sorts in
var Statuses = []Status{
	StatusInterested,
	StatusApplied,
	StatusInterviewing,
	StatusOffered,
	StatusRejected,
	StatusAccepted,
}

// ParseStatus matches s against the known statuses, ignoring case
func ParseStatus(s string) (Status, error) {
	for _, st := range Statuses {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidArgument, s)
}

func (s Status) rank() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return len(Statuses)
}

const DateLayout = "2006-01-02"

type Internship struct {
	ID       uuid.UUID
	Company  string `validate:"required,max=100"`
	Role     string `validate:"required,max=100"`
	Status   Status `validate:"required,oneof=Interested Applied Interviewing Offered Rejected Accepted"`
	Location string `validate:"max=100"`
	Deadline time.Time
	Remark   string `validate:"max=500"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// NewInternship builds a validated Internship with a fresh ID. An empty status defaults to Interested.
func NewInternship(company, role string, status Status, location string, deadline time.Time, remark string) (Internship, error) {
	if status == "" {
		status = StatusInterested
	}
	i := Internship{
		ID:       uuid.New(),
		Company:  strings.TrimSpace(company),
		Role:     strings.TrimSpace(role),
		Status:   status,
		Location: strings.TrimSpace(location),
		Deadline: truncateDate(deadline),
		Remark:   strings.TrimSpace(remark),
	}
	if err := i.Validate(); err != nil {
		return Internship{}, err
	}
	return i, nil
}

// Validate checks the field constraints declared on the struct
func (i Internship) Validate() error {
	if err := validate.Struct(i); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidArgument, err.Error())
	}
	return nil
}

// IsZero reports whether i is the zero value, which stands for "no internship" in the API
func (i Internship) IsZero() bool {
	return i.ID == uuid.Nil && i.Company == "" && i.Role == "" && i.Status == "" &&
		i.Location == "" && i.Deadline.IsZero() && i.Remark == ""
}

// IsSameInternship is the domain equality used for duplicate detection and find-and-replace
func (i Internship) IsSameInternship(other Internship) bool {
	return foldKey(i.Company) == foldKey(other.Company) && foldKey(i.Role) == foldKey(other.Role)
}

// Equal compares every field, ID included
func (i Internship) Equal(other Internship) bool {
	return i.ID == other.ID &&
		i.Company == other.Company &&
		i.Role == other.Role &&
		i.Status == other.Status &&
		i.Location == other.Location &&
		i.Deadline.Equal(other.Deadline) &&
		i.Remark == other.Remark
}

func (i Internship) WithCompany(c string) Internship {
	i.Company = strings.TrimSpace(c)
	return i
}

func (i Internship) WithRole(r string) Internship {
	i.Role = strings.TrimSpace(r)
	return i
}

func (i Internship) WithStatus(s Status) Internship {
	i.Status = s
	return i
}

func (i Internship) WithLocation(l string) Internship {
	i.Location = strings.TrimSpace(l)
	return i
}

func (i Internship) WithDeadline(d time.Time) Internship {
	i.Deadline = truncateDate(d)
	return i
}

func (i Internship) WithRemark(r string) Internship {
	i.Remark = strings.TrimSpace(r)
	return i
}

func (i Internship) DeadlineString() string {
	if i.Deadline.IsZero() {
		return ""
	}
	return i.Deadline.Format(DateLayout)
}

func (i Internship) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s - %s [%s]", i.Company, i.Role, i.Status)
	if i.Location != "" {
		fmt.Fprintf(&b, " @ %s", i.Location)
	}
	if d := i.DeadlineString(); d != "" {
		fmt.Fprintf(&b, " due %s", d)
	}
	if i.Remark != "" {
		fmt.Fprintf(&b, " (%s)", i.Remark)
	}
	return b.String()
}

// foldKey normalizes text for equality and ordering. A Caser is stateful so each call gets its own.
func foldKey(s string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(s)))
}

func truncateDate(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
