package model

import (
	"fmt"
	"strings"
	"time"
)

type Predicate func(Internship) bool

// ShowAll is the default predicate
func ShowAll(Internship) bool { return true }

func containsFolded(field, value string) bool {
	return strings.Contains(foldKey(field), foldKey(value))
}

func CompanyContains(v string) Predicate {
	return func(i Internship) bool { return containsFolded(i.Company, v) }
}

func RoleContains(v string) Predicate {
	return func(i Internship) bool { return containsFolded(i.Role, v) }
}

func LocationContains(v string) Predicate {
	return func(i Internship) bool { return containsFolded(i.Location, v) }
}

func RemarkContains(v string) Predicate {
	return func(i Internship) bool { return containsFolded(i.Remark, v) }
}

func StatusIs(s Status) Predicate {
	return func(i Internship) bool { return i.Status == s }
}

// DeadlineBefore keeps internships due on or before d
func DeadlineBefore(d time.Time) Predicate {
	d = truncateDate(d)
	return func(i Internship) bool { return !i.Deadline.IsZero() && !i.Deadline.After(d) }
}

// PredicateFor builds the predicate a filter parameter and value describe
func PredicateFor(prefix, value string) (Predicate, error) {
	if strings.TrimSpace(value) == "" {
		return nil, fmt.Errorf("%w: empty filter value", ErrInvalidArgument)
	}
	switch prefix {
	case PrefixCompany:
		return CompanyContains(value), nil
	case PrefixRole:
		return RoleContains(value), nil
	case PrefixLocation:
		return LocationContains(value), nil
	case PrefixRemark:
		return RemarkContains(value), nil
	case PrefixStatus:
		s, err := ParseStatus(value)
		if err != nil {
			return nil, err
		}
		return StatusIs(s), nil
	case PrefixDeadline:
		d, err := time.Parse(DateLayout, strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: deadline must look like %s", ErrInvalidArgument, DateLayout)
		}
		return DeadlineBefore(d), nil
	}
	return nil, fmt.Errorf("%w: cannot filter by %q", ErrInvalidArgument, prefix)
}
