package roster

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Service answers read-only queries over a loaded roster. Every query
// is a pure computation; the service holds no state beyond its logger.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new roster query service.
func NewService(logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{logger: logger}
}

// GroupCount is one bucket of a summary breakdown.
type GroupCount struct {
	Name  string
	Count int
}

// Summary holds the headline statistics for a roster.
type Summary struct {
	TotalCount        int
	ActiveCount       int
	AverageTenureDays *float64
	ByTeam            []GroupCount
	ByStatus          []GroupCount
}

// Summarize computes headline counts and breakdowns. ByTeam covers
// active records only, ByStatus covers everyone; both come back sorted
// by bucket name so output is reproducible. AverageTenureDays is nil
// when no active record has a known start date. A zero ref means today.
func (s *Service) Summarize(r *Roster, ref time.Time) Summary {
	if ref.IsZero() {
		ref = time.Now()
	}

	teamCounts := make(map[string]int)
	statusCounts := make(map[string]int)
	summary := Summary{TotalCount: r.Len()}

	var tenureSum, tenureN int
	for _, rec := range r.Records {
		statusCounts[rec.EmploymentStatus]++
		if !rec.IsActive() {
			continue
		}
		summary.ActiveCount++
		teamCounts[rec.Team]++
		if days, ok := rec.TenureDays(ref); ok {
			tenureSum += days
			tenureN++
		}
	}
	if tenureN > 0 {
		avg := float64(tenureSum) / float64(tenureN)
		summary.AverageTenureDays = &avg
	}
	summary.ByTeam = sortedCounts(teamCounts)
	summary.ByStatus = sortedCounts(statusCounts)

	s.logger.Debug("summarized roster",
		zap.String("roster_id", r.ID),
		zap.Int("total", summary.TotalCount),
		zap.Int("active", summary.ActiveCount))
	return summary
}

// List returns records in roster order, optionally narrowed to active
// employees. No sorting is applied.
func (s *Service) List(r *Roster, opts ListOptions) []Record {
	if opts.ActiveOnly {
		return r.Active()
	}
	return append([]Record(nil), r.Records...)
}

// Search returns the records whose name, team or title contains the
// keyword, case-insensitively, in roster order. A blank keyword matches
// the whole roster.
func (s *Service) Search(r *Roster, keyword string) []Record {
	keyword = strings.TrimSpace(keyword)
	matches := make([]Record, 0, len(r.Records))
	for _, rec := range r.Records {
		if rec.Matches(keyword) {
			matches = append(matches, rec)
		}
	}
	s.logger.Debug("searched roster",
		zap.String("roster_id", r.ID),
		zap.String("keyword", keyword),
		zap.Int("matches", len(matches)))
	return matches
}

// ProbationEnding returns the active records whose probation ends
// between the reference date and WithinDays after it, inclusive on both
// ends, sorted by deadline with the most urgent first. Deadlines already
// past the reference date are excluded.
func (s *Service) ProbationEnding(r *Roster, opts ProbationOptions) ([]Record, error) {
	if opts.WithinDays < 0 {
		return nil, fmt.Errorf("%w: within days must not be negative, got %d", ErrInvalidParameter, opts.WithinDays)
	}
	ref := opts.ReferenceDate
	if ref.IsZero() {
		ref = time.Now()
	}

	results := make([]Record, 0)
	for _, rec := range r.Records {
		if !rec.IsActive() {
			continue
		}
		remaining, ok := rec.ProbationDaysRemaining(ref)
		if !ok {
			continue
		}
		if remaining >= 0 && remaining <= opts.WithinDays {
			results = append(results, rec)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ProbationEnd.Before(*results[j].ProbationEnd)
	})

	s.logger.Debug("probation window computed",
		zap.String("roster_id", r.ID),
		zap.Int("within_days", opts.WithinDays),
		zap.Int("matches", len(results)))
	return results, nil
}

func sortedCounts(counts map[string]int) []GroupCount {
	out := make([]GroupCount, 0, len(counts))
	for name, count := range counts {
		out = append(out, GroupCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
