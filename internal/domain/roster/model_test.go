package roster_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/opshr/rosterkit/internal/domain/roster"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dateP(year int, month time.Month, day int) *time.Time {
	d := date(year, month, day)
	return &d
}

func intP(n int) *int {
	return &n
}

func TestRecord_IsActive(t *testing.T) {
	require.True(t, roster.Record{Name: "Ana"}.IsActive())
	require.False(t, roster.Record{Name: "Ben", ResignationDate: dateP(2025, 3, 1)}.IsActive())
}

func TestRecord_TenureDays(t *testing.T) {
	ref := date(2026, 8, 25)

	days, ok := roster.Record{StartDate: dateP(2026, 8, 1)}.TenureDays(ref)
	require.True(t, ok)
	require.Equal(t, 24, days)

	// Resignation bounds the tenure, not the reference date.
	days, ok = roster.Record{
		StartDate:       dateP(2026, 1, 1),
		ResignationDate: dateP(2026, 2, 1),
	}.TenureDays(ref)
	require.True(t, ok)
	require.Equal(t, 31, days)

	_, ok = roster.Record{}.TenureDays(ref)
	require.False(t, ok)
}

func TestRecord_TenureDays_IgnoresClockTime(t *testing.T) {
	ref := time.Date(2026, 8, 25, 17, 45, 3, 0, time.Local)
	days, ok := roster.Record{StartDate: dateP(2026, 8, 24)}.TenureDays(ref)
	require.True(t, ok)
	require.Equal(t, 1, days)
}

func TestRecord_ProbationDaysRemaining(t *testing.T) {
	ref := date(2026, 8, 25)

	days, ok := roster.Record{ProbationEnd: dateP(2026, 9, 4)}.ProbationDaysRemaining(ref)
	require.True(t, ok)
	require.Equal(t, 10, days)

	days, ok = roster.Record{ProbationEnd: dateP(2026, 8, 20)}.ProbationDaysRemaining(ref)
	require.True(t, ok)
	require.Equal(t, -5, days)

	_, ok = roster.Record{}.ProbationDaysRemaining(ref)
	require.False(t, ok)
}

func TestRecord_Matches(t *testing.T) {
	rec := roster.Record{Name: "Mina Park", Team: "GURM", Title: "Data Analyst", Part: "Platform"}

	require.True(t, rec.Matches("mina"))
	require.True(t, rec.Matches("gurm"))
	require.True(t, rec.Matches("ANALYST"))
	require.True(t, rec.Matches("  mina  "))
	require.True(t, rec.Matches(""))
	// Part is not a searched field.
	require.False(t, rec.Matches("platform"))
	require.False(t, rec.Matches("nobody"))
}

func TestRecord_TenureDisplay(t *testing.T) {
	require.Equal(t, "1y 2m", roster.Record{CurrentExperienceMonths: intP(14)}.TenureDisplay())
	require.Equal(t, "2y", roster.Record{CurrentExperienceMonths: intP(24)}.TenureDisplay())
	require.Equal(t, "7m", roster.Record{CurrentExperienceMonths: intP(7)}.TenureDisplay())
	require.Equal(t, "0m", roster.Record{CurrentExperienceMonths: intP(0)}.TenureDisplay())
	require.Equal(t, "about a year", roster.Record{TenureText: "about a year"}.TenureDisplay())
	require.Equal(t, "-", roster.Record{}.TenureDisplay())
}

func TestRecord_TotalExperienceDisplay(t *testing.T) {
	require.Equal(t, "3y 1m", roster.Record{TotalExperienceMonths: intP(37)}.TotalExperienceDisplay())
	require.Equal(t, "5 years", roster.Record{TotalExperienceText: "5 years"}.TotalExperienceDisplay())
	require.Equal(t, "-", roster.Record{}.TotalExperienceDisplay())
}

func TestRoster_Active(t *testing.T) {
	r := roster.New([]roster.Record{
		{EmployeeID: "E1"},
		{EmployeeID: "E2", ResignationDate: dateP(2025, 1, 1)},
		{EmployeeID: "E3"},
	})

	require.Equal(t, 3, r.Len())
	active := r.Active()
	require.Len(t, active, 2)
	require.Equal(t, "E1", active[0].EmployeeID)
	require.Equal(t, "E3", active[1].EmployeeID)
	require.NotEmpty(t, r.ID)
}
