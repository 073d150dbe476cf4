package command

import (
	"testing"

	"intrack/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, m *model.ModelManager, input string) (Result, error) {
	t.Helper()
	cmd, err := Parse(input)
	require.NoError(t, err)
	return cmd.Execute(m)
}

func shown(m *model.ModelManager) []string {
	var out []string
	for _, i := range m.FilteredInternshipList().Items() {
		out = append(out, i.Company)
	}
	return out
}

func seeded(t *testing.T) *model.ModelManager {
	t.Helper()
	m := model.NewEmptyModelManager()
	for _, in := range []string{
		"add c/Globex r/Intern s/Offered d/2026-03-01",
		"add c/Acme r/Intern s/Applied d/2026-05-01",
		"add c/Initech r/Intern s/Offered",
	} {
		_, err := run(t, m, in)
		require.NoError(t, err)
	}
	return m
}

func TestAddCommand(t *testing.T) {
	m := seeded(t)
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, shown(m))

	_, err := run(t, m, "add c/acme r/INTERN")
	require.ErrorIs(t, err, model.ErrDuplicateInternship)
	assert.Len(t, shown(m), 3)
}

func TestFilterAndList(t *testing.T) {
	m := seeded(t)

	res, err := run(t, m, "filter s/offered")
	require.NoError(t, err)
	assert.Equal(t, "2 internships listed", res.Feedback)
	assert.Equal(t, []string{"Globex", "Initech"}, shown(m))
	assert.Equal(t, model.PrefixStatus, m.FilterParameter())
	assert.Equal(t, "offered", m.FilterValue())

	_, err = run(t, m, "list")
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, shown(m))
	assert.Equal(t, model.DefaultFilterMetadata, m.FilterParameter())
}

func TestSortCommand(t *testing.T) {
	m := seeded(t)

	_, err := run(t, m, "sort d/")
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex", "Acme", "Initech"}, shown(m))
	assert.Equal(t, model.PrefixDeadline, m.ComparatorPrefix())

	_, err = run(t, m, "sort c/ desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"Initech", "Globex", "Acme"}, shown(m))
	assert.Equal(t, model.Descending, m.ComparatorOrder())

	// later mutations keep the sort the command made active
	_, err = run(t, m, "add c/Hooli r/Intern")
	require.NoError(t, err)
	assert.Equal(t, []string{"Initech", "Hooli", "Globex", "Acme"}, shown(m))
}

func TestDeleteAndEditUseShownIndex(t *testing.T) {
	m := seeded(t)
	_, err := run(t, m, "filter s/Offered")
	require.NoError(t, err)

	_, err = run(t, m, "delete 2")
	require.NoError(t, err)
	assert.Equal(t, []string{"Globex"}, shown(m))
	assert.False(t, m.HasInternship(model.Internship{Company: "Initech", Role: "Intern"}))

	_, err = run(t, m, "edit 1 s/Rejected")
	require.NoError(t, err)
	assert.Empty(t, shown(m), "edited internship no longer matches the filter")

	_, err = run(t, m, "delete 1")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestEditCommand_Errors(t *testing.T) {
	m := seeded(t)

	_, err := run(t, m, "edit 1 c/Globex")
	require.ErrorIs(t, err, model.ErrDuplicateInternship)
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, shown(m))

	_, err = run(t, m, "edit 1 c/")
	require.ErrorIs(t, err, model.ErrInvalidArgument)

	_, err = run(t, m, "edit 9 c/Nope")
	require.ErrorIs(t, err, ErrInvalidFormat)
}

func TestClearAndExit(t *testing.T) {
	m := seeded(t)
	_, err := run(t, m, "clear")
	require.NoError(t, err)
	assert.Empty(t, shown(m))

	res, err := run(t, m, "exit")
	require.NoError(t, err)
	assert.True(t, res.Exit)
}

func TestRestoreView(t *testing.T) {
	m := seeded(t)
	require.NoError(t, RestoreView(m, model.PrefixDeadline, model.Descending, model.PrefixStatus, "Offered"))
	assert.Equal(t, []string{"Initech", "Globex"}, shown(m))
	assert.Equal(t, model.PrefixDeadline, m.ComparatorPrefix())
	assert.Equal(t, "Offered", m.FilterValue())

	fresh := seeded(t)
	require.NoError(t, RestoreView(fresh, "", "", model.DefaultFilterMetadata, model.DefaultFilterMetadata))
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, shown(fresh))

	assert.Error(t, RestoreView(fresh, "x/", model.Ascending, "", ""))

	partial := seeded(t)
	assert.Error(t, RestoreView(partial, model.PrefixDeadline, model.Descending, "x/", "Offered"))
	assert.Equal(t, model.PrefixCompany, partial.ComparatorPrefix(), "sort is not applied when the filter is unusable")
	assert.Equal(t, model.Ascending, partial.ComparatorOrder())
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, shown(partial))
}
