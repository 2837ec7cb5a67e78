package roster

import "time"

// ListOptions provides filtering options for listing records.
type ListOptions struct {
	ActiveOnly bool
}

// ProbationOptions parameterizes the probation deadline query. A zero
// ReferenceDate means today.
type ProbationOptions struct {
	WithinDays    int
	ReferenceDate time.Time
}
