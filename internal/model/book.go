package model

import (
	"fmt"
	"slices"
)

/*

An InternshipBook owns the master, ordered list of Internships.

No two Internships in the book are the same internship (see Internship.IsSameInternship). The book
checks that on create and replace, but trusts whole-list replacements (SetInternships, ResetData)
since those come from a snapshot that was already unique when it was written.

Every method either succeeds completely or leaves the book untouched.

*/

// ReadOnlyInternshipBook is what persistence hands in and what the manager hands out
type ReadOnlyInternshipBook interface {
	Internships() []Internship
}

type InternshipBook struct {
	internships []Internship
}

func NewInternshipBook() *InternshipBook {
	return &InternshipBook{internships: make([]Internship, 0)}
}

// NewInternshipBookFrom copies the contents of src
func NewInternshipBookFrom(src ReadOnlyInternshipBook) (*InternshipBook, error) {
	b := NewInternshipBook()
	if err := b.ResetData(src); err != nil {
		return nil, err
	}
	return b, nil
}

// Internships returns a copy of the stored sequence
func (b *InternshipBook) Internships() []Internship {
	return slices.Clone(b.internships)
}

func (b *InternshipBook) Len() int { return len(b.internships) }

// SetInternships replaces the whole contents with a copy of list. Any earlier sort is lost.
func (b *InternshipBook) SetInternships(list []Internship) {
	b.internships = slices.Clone(list)
	if b.internships == nil {
		b.internships = make([]Internship, 0)
	}
}

func (b *InternshipBook) ResetData(src ReadOnlyInternshipBook) error {
	if absentBook(src) {
		return fmt.Errorf("%w: nil internship book", ErrInvalidArgument)
	}
	b.SetInternships(src.Internships())
	return nil
}

func (b *InternshipBook) HasInternship(i Internship) bool {
	return b.indexOf(i) >= 0
}

// CreateInternship appends i to the end of the book
func (b *InternshipBook) CreateInternship(i Internship) error {
	if i.IsZero() {
		return fmt.Errorf("%w: empty internship", ErrInvalidArgument)
	}
	if b.HasInternship(i) {
		return fmt.Errorf("%w: %s - %s", ErrDuplicateInternship, i.Company, i.Role)
	}
	b.internships = append(b.internships, i)
	return nil
}

// RemoveInternship deletes the internship that is the same internship as i
func (b *InternshipBook) RemoveInternship(i Internship) error {
	if i.IsZero() {
		return fmt.Errorf("%w: empty internship", ErrInvalidArgument)
	}
	idx := b.indexOf(i)
	if idx < 0 {
		return fmt.Errorf("%w: %s - %s", ErrInternshipNotFound, i.Company, i.Role)
	}
	b.internships = slices.Delete(b.internships, idx, idx+1)
	return nil
}

// SetInternship swaps target for edited at target's position
func (b *InternshipBook) SetInternship(target, edited Internship) error {
	if edited.IsZero() {
		return fmt.Errorf("%w: empty internship", ErrInvalidArgument)
	}
	idx := b.indexOf(target)
	if idx < 0 {
		return fmt.Errorf("%w: %s - %s", ErrInternshipNotFound, target.Company, target.Role)
	}
	for j, existing := range b.internships {
		if j != idx && existing.IsSameInternship(edited) {
			return fmt.Errorf("%w: %s - %s", ErrDuplicateInternship, edited.Company, edited.Role)
		}
	}
	b.internships[idx] = edited
	return nil
}

// SortInternships reorders the book with a stable sort, so ties keep their current relative order
func (b *InternshipBook) SortInternships(c Comparator) error {
	if c == nil {
		return fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	slices.SortStableFunc(b.internships, c)
	return nil
}

// Equal compares contents and order
func (b *InternshipBook) Equal(other *InternshipBook) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return slices.EqualFunc(b.internships, other.internships, Internship.Equal)
}

// absentBook also catches a nil *InternshipBook stored in the interface
func absentBook(src ReadOnlyInternshipBook) bool {
	b, ok := src.(*InternshipBook)
	return src == nil || (ok && b == nil)
}

func (b *InternshipBook) indexOf(i Internship) int {
	return slices.IndexFunc(b.internships, i.IsSameInternship)
}
