package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewState_Defaults(t *testing.T) {
	v := NewViewState()
	assert.Equal(t, DefaultFilterMetadata, v.FilterParameter())
	assert.Equal(t, DefaultFilterMetadata, v.FilterValue())
	assert.Equal(t, PrefixCompany, v.ComparatorPrefix())
	assert.Equal(t, Ascending, v.ComparatorOrder())
	assert.NotNil(t, v.Predicate())
	assert.NotNil(t, v.Comparator())
}

func TestViewState_RejectsNil(t *testing.T) {
	v := NewViewState()
	require.ErrorIs(t, v.SetPredicate(nil), ErrInvalidArgument)
	require.ErrorIs(t, v.SetComparator(nil), ErrInvalidArgument)
	assert.NotNil(t, v.Predicate())
	assert.NotNil(t, v.Comparator())
}

func TestViewState_Metadata(t *testing.T) {
	v := NewViewState()
	v.SetFilterParameter(PrefixStatus)
	v.SetFilterValue("Offered")
	v.SetComparatorPrefix(PrefixRole)
	v.SetComparatorOrder(Descending)

	assert.Equal(t, PrefixStatus, v.FilterParameter())
	assert.Equal(t, "Offered", v.FilterValue())
	assert.Equal(t, PrefixRole, v.ComparatorPrefix())
	assert.Equal(t, Descending, v.ComparatorOrder())

	v.SetFilterParameter("")
	v.SetComparatorPrefix("")
	v.SetComparatorOrder("")
	assert.Equal(t, DefaultFilterMetadata, v.FilterParameter())
	assert.Equal(t, PrefixCompany, v.ComparatorPrefix())
	assert.Equal(t, Ascending, v.ComparatorOrder())
}
