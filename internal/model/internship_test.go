package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInternship(t *testing.T, company, role string, status Status) Internship {
	t.Helper()
	i, err := NewInternship(company, role, status, "", time.Time{}, "")
	require.NoError(t, err)
	return i
}

func TestNewInternship(t *testing.T) {
	deadline := time.Date(2026, 11, 3, 17, 45, 0, 0, time.UTC)
	i, err := NewInternship("  Acme ", "Backend Intern", "", "Singapore", deadline, "referral")
	require.NoError(t, err)

	assert.NotZero(t, i.ID)
	assert.Equal(t, "Acme", i.Company)
	assert.Equal(t, StatusInterested, i.Status)
	assert.Equal(t, "2026-11-03", i.DeadlineString())
	assert.Equal(t, "Acme - Backend Intern [Interested] @ Singapore due 2026-11-03 (referral)", i.String())
}

func TestNewInternship_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		company string
		role    string
		status  Status
	}{
		{"missing company", "", "Intern", StatusApplied},
		{"blank role", "Acme", "   ", StatusApplied},
		{"unknown status", "Acme", "Intern", Status("Ghosted")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInternship(tt.company, tt.role, tt.status, "", time.Time{}, "")
			require.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestIsSameInternship(t *testing.T) {
	a := mustInternship(t, "Acme", "Backend Intern", StatusApplied)

	assert.True(t, a.IsSameInternship(mustInternship(t, "ACME", "backend intern", StatusRejected)))
	assert.True(t, a.IsSameInternship(a.WithRemark("edited")))
	assert.False(t, a.IsSameInternship(mustInternship(t, "Acme", "Frontend Intern", StatusApplied)))
	assert.False(t, a.IsSameInternship(mustInternship(t, "Globex", "Backend Intern", StatusApplied)))

	// NFC and NFD spellings of the same name
	assert.True(t, mustInternship(t, "Caf\u00e9", "Intern", "").IsSameInternship(mustInternship(t, "Cafe\u0301", "Intern", "")))
}

func TestEqual(t *testing.T) {
	a := mustInternship(t, "Acme", "Intern", StatusApplied)
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(a.WithStatus(StatusOffered)))
	assert.False(t, a.Equal(mustInternship(t, "Acme", "Intern", StatusApplied)), "different ids")
}

func TestIsZero(t *testing.T) {
	assert.True(t, Internship{}.IsZero())
	assert.False(t, mustInternship(t, "Acme", "Intern", "").IsZero())
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus(" offered ")
	require.NoError(t, err)
	assert.Equal(t, StatusOffered, s)

	_, err = ParseStatus("maybe")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
