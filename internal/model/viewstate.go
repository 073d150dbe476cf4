package model

import "fmt"

const DefaultFilterMetadata = "default"

// ViewState holds the active predicate and comparator plus the strings describing them. The
// descriptions are display metadata only; nothing here keeps them in step with the functions.
type ViewState struct {
	predicate       Predicate
	filterParameter string
	filterValue     string

	comparator       Comparator
	comparatorPrefix string
	comparatorOrder  SortOrder
}

// NewViewState returns the defaults: show everything, sorted by company ascending
func NewViewState() *ViewState {
	return &ViewState{
		predicate:        ShowAll,
		filterParameter:  DefaultFilterMetadata,
		filterValue:      DefaultFilterMetadata,
		comparator:       ByCompany,
		comparatorPrefix: PrefixCompany,
		comparatorOrder:  Ascending,
	}
}

func (v *ViewState) Predicate() Predicate { return v.predicate }

func (v *ViewState) SetPredicate(p Predicate) error {
	if p == nil {
		return fmt.Errorf("%w: nil predicate", ErrInvalidArgument)
	}
	v.predicate = p
	return nil
}

func (v *ViewState) Comparator() Comparator { return v.comparator }

func (v *ViewState) SetComparator(c Comparator) error {
	if c == nil {
		return fmt.Errorf("%w: nil comparator", ErrInvalidArgument)
	}
	v.comparator = c
	return nil
}

func (v *ViewState) FilterParameter() string    { return v.filterParameter }
func (v *ViewState) FilterValue() string        { return v.filterValue }
func (v *ViewState) ComparatorPrefix() string   { return v.comparatorPrefix }
func (v *ViewState) ComparatorOrder() SortOrder { return v.comparatorOrder }

// Empty strings fall back to the defaults so the metadata is never blank

func (v *ViewState) SetFilterParameter(p string) {
	v.filterParameter = orDefault(p, DefaultFilterMetadata)
}

func (v *ViewState) SetFilterValue(val string) {
	v.filterValue = orDefault(val, DefaultFilterMetadata)
}

func (v *ViewState) SetComparatorPrefix(p string) {
	v.comparatorPrefix = orDefault(p, PrefixCompany)
}

func (v *ViewState) SetComparatorOrder(o SortOrder) {
	v.comparatorOrder = SortOrder(orDefault(string(o), string(Ascending)))
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
