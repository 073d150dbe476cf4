package model

import (
	"fmt"

	"github.com/rs/zerolog"
)

/*

The ModelManager is the in-memory model of the internship tracker. It owns the InternshipBook, the
UserPrefs and the ViewState, and keeps the FilteredView in step with them.

Two kinds of view operations exist:
  - state setters (UpdateSortComparator, SetComparatorPrefix/Order, SetFilterParameter/Value) only
    record what the caller asks for
  - apply operations (SortInternships, UpdateFilteredInternshipList) change what the view shows

Mutations re-sort (and on create re-filter) with whatever comparator and predicate are active, even
if the metadata strings were never updated to describe them.

*/

type Option func(*ModelManager)

func WithLogger(l zerolog.Logger) Option {
	return func(m *ModelManager) { m.log = l }
}

type ModelManager struct {
	book     *InternshipBook
	prefs    *UserPrefs
	state    *ViewState
	filtered *FilteredView
	log      zerolog.Logger
}

func NewModelManager(book ReadOnlyInternshipBook, prefs ReadOnlyUserPrefs, opts ...Option) (*ModelManager, error) {
	if book == nil || prefs == nil {
		return nil, fmt.Errorf("%w: book and prefs are required", ErrInvalidArgument)
	}
	b, err := NewInternshipBookFrom(book)
	if err != nil {
		return nil, err
	}
	p, err := NewUserPrefsFrom(prefs)
	if err != nil {
		return nil, err
	}
	m := &ModelManager{
		book:  b,
		prefs: p,
		state: NewViewState(),
		log:   zerolog.Nop(),
	}
	for _, o := range opts {
		o(m)
	}
	m.log.Debug().Int("internships", b.Len()).Str("data_path", p.InternshipFilePath()).Msg("initializing model")

	m.book.SortInternships(m.state.Comparator())
	m.filtered = newFilteredView(m.book, m.state.Predicate())
	return m, nil
}

// NewEmptyModelManager starts with no internships and default prefs
func NewEmptyModelManager(opts ...Option) *ModelManager {
	m, _ := NewModelManager(NewInternshipBook(), NewUserPrefs(), opts...)
	return m
}

//////// UserPrefs

func (m *ModelManager) UserPrefs() ReadOnlyUserPrefs { return m.prefs }

func (m *ModelManager) SetUserPrefs(p ReadOnlyUserPrefs) error {
	return m.prefs.ResetData(p)
}

func (m *ModelManager) GuiSettings() GuiSettings { return m.prefs.GuiSettings() }

func (m *ModelManager) SetGuiSettings(g GuiSettings) { m.prefs.SetGuiSettings(g) }

func (m *ModelManager) InternshipBookFilePath() string { return m.prefs.InternshipFilePath() }

func (m *ModelManager) SetInternshipBookFilePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty internship file path", ErrInvalidArgument)
	}
	m.prefs.SetInternshipFilePath(path)
	return nil
}

//////// InternshipBook

func (m *ModelManager) InternshipBook() ReadOnlyInternshipBook { return m.book }

// SetInternshipBook replaces every internship and re-sorts. The active filter still applies.
func (m *ModelManager) SetInternshipBook(src ReadOnlyInternshipBook) error {
	if err := m.book.ResetData(src); err != nil {
		return err
	}
	m.log.Debug().Int("internships", m.book.Len()).Msg("internship book reset")
	m.sortAndRefresh()
	return nil
}

func (m *ModelManager) HasInternship(i Internship) bool {
	return m.book.HasInternship(i)
}

func (m *ModelManager) CreateInternship(i Internship) error {
	if err := m.book.CreateInternship(i); err != nil {
		return err
	}
	m.log.Debug().Str("company", i.Company).Str("role", i.Role).Msg("internship created")
	m.filtered.setPredicate(m.state.Predicate())
	m.sortAndRefresh()
	return nil
}

func (m *ModelManager) DeleteInternship(target Internship) error {
	if err := m.book.RemoveInternship(target); err != nil {
		return err
	}
	m.log.Debug().Str("company", target.Company).Str("role", target.Role).Msg("internship deleted")
	m.filtered.refresh()
	return nil
}

func (m *ModelManager) SetInternship(target, edited Internship) error {
	if target.IsZero() || edited.IsZero() {
		return fmt.Errorf("%w: target and edited internship are required", ErrInvalidArgument)
	}
	if err := m.book.SetInternship(target, edited); err != nil {
		return err
	}
	m.log.Debug().Str("company", edited.Company).Str("role", edited.Role).Msg("internship replaced")
	m.sortAndRefresh()
	return nil
}

func (m *ModelManager) sortAndRefresh() {
	// the active comparator is never nil, ViewState refuses it
	m.book.SortInternships(m.state.Comparator())
	m.filtered.refresh()
}

//////// Sorting

// SortInternships sorts the book with c right away. It does not make c the active comparator.
func (m *ModelManager) SortInternships(c Comparator) error {
	if err := m.book.SortInternships(c); err != nil {
		return err
	}
	m.filtered.refresh()
	return nil
}

// UpdateSortComparator records c as the comparator later mutations sort with. Nothing is re-sorted.
func (m *ModelManager) UpdateSortComparator(c Comparator) error {
	return m.state.SetComparator(c)
}

func (m *ModelManager) SetComparatorPrefix(prefix string) { m.state.SetComparatorPrefix(prefix) }

func (m *ModelManager) ComparatorPrefix() string { return m.state.ComparatorPrefix() }

func (m *ModelManager) SetComparatorOrder(o SortOrder) { m.state.SetComparatorOrder(o) }

func (m *ModelManager) ComparatorOrder() SortOrder { return m.state.ComparatorOrder() }

//////// Filtering

func (m *ModelManager) SetFilterParameter(p string) { m.state.SetFilterParameter(p) }

func (m *ModelManager) FilterParameter() string { return m.state.FilterParameter() }

func (m *ModelManager) SetFilterValue(v string) { m.state.SetFilterValue(v) }

func (m *ModelManager) FilterValue() string { return m.state.FilterValue() }

// FilteredInternshipList is the live view. Callers must not modify what they read from it.
func (m *ModelManager) FilteredInternshipList() *FilteredView { return m.filtered }

// UpdateFilteredInternshipList makes p the active predicate and re-derives the view before returning
func (m *ModelManager) UpdateFilteredInternshipList(p Predicate) error {
	if err := m.state.SetPredicate(p); err != nil {
		return err
	}
	m.filtered.setPredicate(p)
	m.filtered.refresh()
	m.log.Debug().Int("visible", m.filtered.Len()).Int("total", m.book.Len()).Msg("filter applied")
	return nil
}

// Equal compares book, prefs and the currently materialized view. Meant for tests.
func (m *ModelManager) Equal(other *ModelManager) bool {
	if m == other {
		return true
	}
	if m == nil || other == nil {
		return false
	}
	return m.book.Equal(other.book) && m.prefs.Equal(other.prefs) && m.filtered.Equal(other.filtered)
}
