package model

import (
	"fmt"
	"strings"
)

// A Comparator orders two Internships: negative if a sorts first, positive if b does, zero for a tie
type Comparator func(a, b Internship) int

type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	}
	return "", fmt.Errorf("%w: unknown sort order %q", ErrInvalidArgument, s)
}

// Field prefixes, shared by the command syntax and the sort/filter metadata
const (
	PrefixCompany  = "c/"
	PrefixRole     = "r/"
	PrefixStatus   = "s/"
	PrefixLocation = "l/"
	PrefixDeadline = "d/"
	PrefixRemark   = "m/"
)

func ByCompany(a, b Internship) int { return strings.Compare(foldKey(a.Company), foldKey(b.Company)) }

func ByRole(a, b Internship) int { return strings.Compare(foldKey(a.Role), foldKey(b.Role)) }

func ByStatus(a, b Internship) int { return a.Status.rank() - b.Status.rank() }

func ByLocation(a, b Internship) int {
	return strings.Compare(foldKey(a.Location), foldKey(b.Location))
}

// ByDeadline puts internships without a deadline last
func ByDeadline(a, b Internship) int {
	switch {
	case a.Deadline.IsZero() && b.Deadline.IsZero():
		return 0
	case a.Deadline.IsZero():
		return 1
	case b.Deadline.IsZero():
		return -1
	}
	return a.Deadline.Compare(b.Deadline)
}

// Reversed flips c. Ties stay ties, so a stable sort keeps their prior order in both directions.
func Reversed(c Comparator) Comparator {
	return func(a, b Internship) int { return c(b, a) }
}

// ComparatorFor maps a field prefix and order to a Comparator
func ComparatorFor(prefix string, order SortOrder) (Comparator, error) {
	var c Comparator
	switch prefix {
	case PrefixCompany:
		c = ByCompany
	case PrefixRole:
		c = ByRole
	case PrefixStatus:
		c = ByStatus
	case PrefixLocation:
		c = ByLocation
	case PrefixDeadline:
		c = ByDeadline
	default:
		return nil, fmt.Errorf("%w: cannot sort by %q", ErrInvalidArgument, prefix)
	}
	if order == Descending {
		return Reversed(c), nil
	}
	return c, nil
}
