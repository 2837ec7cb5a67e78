package roster

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Record is one employee row materialized from the roster source.
// Optional dates and counts are nil when the source field was blank or
// could not be parsed.
type Record struct {
	EmployeeID string
	PayrollID  string
	Name       string
	Gender     string
	Birthdate  *time.Time
	AgeGroup   string
	Team       string
	Part       string
	Title      string

	StartDate       *time.Time
	ProbationEnd    *time.Time
	ResignationDate *time.Time

	TenureText          string
	PriorExperienceText string
	TotalExperienceText string

	ContractType string
	Phone        string
	Email        string
	WorkLocation string
	JobType      string

	EmploymentStatus       string
	EmploymentStatusDetail string

	PriorExperienceMonths   *int
	CurrentExperienceMonths *int
	TotalExperienceMonths   *int
}

// IsActive reports whether the employee is still on the roster. A record
// is active exactly when no resignation date is recorded; the free-text
// status fields never participate in this decision.
func (r Record) IsActive() bool {
	return r.ResignationDate == nil
}

// TenureDays returns the whole days between the start date and ref. For
// resigned employees the resignation date bounds the tenure instead of
// ref. The second return is false when no start date is known.
func (r Record) TenureDays(ref time.Time) (int, bool) {
	if r.StartDate == nil {
		return 0, false
	}
	end := dateOnly(ref)
	if r.ResignationDate != nil {
		end = dateOnly(*r.ResignationDate)
	}
	return daysBetween(dateOnly(*r.StartDate), end), true
}

// ProbationDaysRemaining returns the days from ref until the probation
// end date, negative when the deadline has already passed. The second
// return is false when no probation end is recorded.
func (r Record) ProbationDaysRemaining(ref time.Time) (int, bool) {
	if r.ProbationEnd == nil {
		return 0, false
	}
	return daysBetween(dateOnly(ref), dateOnly(*r.ProbationEnd)), true
}

// Matches reports whether the keyword is a case-insensitive substring of
// the name, team or title. A blank keyword matches every record.
func (r Record) Matches(keyword string) bool {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return true
	}
	for _, field := range []string{r.Name, r.Team, r.Title} {
		if strings.Contains(strings.ToLower(field), keyword) {
			return true
		}
	}
	return false
}

// TenureDisplay renders the current tenure for tables, preferring the
// numeric months field and falling back to the source display text.
func (r Record) TenureDisplay() string {
	if r.CurrentExperienceMonths != nil {
		return formatMonths(*r.CurrentExperienceMonths)
	}
	if r.TenureText != "" {
		return r.TenureText
	}
	return "-"
}

// TotalExperienceDisplay renders total career experience for tables.
func (r Record) TotalExperienceDisplay() string {
	if r.TotalExperienceMonths != nil {
		return formatMonths(*r.TotalExperienceMonths)
	}
	if r.TotalExperienceText != "" {
		return r.TotalExperienceText
	}
	return "-"
}

func formatMonths(months int) string {
	years, rem := months/12, months%12
	switch {
	case years > 0 && rem > 0:
		return fmt.Sprintf("%dy %dm", years, rem)
	case years > 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dm", rem)
	}
}

// dateOnly strips the clock from t, keeping the calendar day in UTC so
// differences between roster dates come out in whole days.
func dateOnly(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

// Roster is the ordered collection of records loaded for one
// invocation. Order follows the source and is never re-sorted here. ID
// correlates log lines emitted while this roster is in use.
type Roster struct {
	ID      string
	Records []Record
}

// New wraps loaded records in a Roster with a fresh correlation ID.
func New(records []Record) *Roster {
	return &Roster{
		ID:      uuid.NewString(),
		Records: records,
	}
}

// Len returns the total headcount, resigned employees included.
func (r *Roster) Len() int {
	return len(r.Records)
}

// Active returns the records without a resignation date, in roster order.
func (r *Roster) Active() []Record {
	active := make([]Record, 0, len(r.Records))
	for _, rec := range r.Records {
		if rec.IsActive() {
			active = append(active, rec)
		}
	}
	return active
}
