package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/opshr/rosterkit/internal/domain/roster"
)

// Summary renders the headline roster report.
func Summary(s roster.Summary, styles Styles) string {
	var sb strings.Builder
	sb.WriteString(styles.Title.Render("Roster summary"))
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("Total headcount:  %d\n", s.TotalCount))
	sb.WriteString(fmt.Sprintf("Active headcount: %d\n", s.ActiveCount))
	sb.WriteString(fmt.Sprintf("Average tenure:   %s\n", averageTenure(s.AverageTenureDays)))

	if len(s.ByTeam) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Bold.Render("Active headcount by team"))
		sb.WriteString("\n")
		for _, g := range s.ByTeam {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", orDash(g.Name), g.Count))
		}
	}
	if len(s.ByStatus) > 0 {
		sb.WriteString("\n")
		sb.WriteString(styles.Bold.Render("Headcount by employment status"))
		sb.WriteString("\n")
		for _, g := range s.ByStatus {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", orDash(g.Name), g.Count))
		}
	}
	return sb.String()
}

// RecordTable renders employees as a table, one row per record, in the
// order given.
func RecordTable(records []roster.Record, styles Styles) string {
	t := NewTable("", "ID", "Name", "Team", "Title", "Contract", "Tenure", "Experience")
	for _, rec := range records {
		t.AddRow(
			rec.EmployeeID,
			rec.Name,
			orDash(rec.Team),
			orDash(rec.Title),
			orDash(rec.ContractType),
			rec.TenureDisplay(),
			rec.TotalExperienceDisplay(),
		)
	}
	return t.Render(styles)
}

// Probation renders upcoming probation deadlines with the days
// remaining relative to ref.
func Probation(records []roster.Record, ref time.Time, styles Styles) string {
	t := NewTable("Probation deadlines", "Name", "Team", "Ends", "Remaining")
	for _, rec := range records {
		ends := "-"
		if rec.ProbationEnd != nil {
			ends = rec.ProbationEnd.Format("2006-01-02")
		}
		remaining := "-"
		if days, ok := rec.ProbationDaysRemaining(ref); ok {
			remaining = fmt.Sprintf("D-%d", days)
		}
		t.AddRow(rec.Name, orDash(rec.Team), ends, remaining)
	}
	return t.Render(styles)
}

// averageTenure formats a mean tenure in days as years and months with
// the raw day count alongside.
func averageTenure(days *float64) string {
	if days == nil {
		return "not available"
	}
	total := int(math.Round(*days))
	months := total / 30
	years, rem := months/12, months%12
	switch {
	case years > 0 && rem > 0:
		return fmt.Sprintf("%dy %dm (%d days)", years, rem, total)
	case years > 0:
		return fmt.Sprintf("%dy (%d days)", years, total)
	default:
		return fmt.Sprintf("%dm (%d days)", rem, total)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
