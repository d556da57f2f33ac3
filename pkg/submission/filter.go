package submission

import "time"

// Filter narrows a Find. Zero values leave that bound open; both time
// bounds are inclusive.
type Filter struct {
	Name  string
	Start time.Time
	End   time.Time
}

// Matches reports whether s satisfies the filter.
func (f Filter) Matches(s Submission) bool {
	if f.Name != "" && s.FormName != f.Name {
		return false
	}
	if !f.Start.IsZero() && s.CreatedAt.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && s.CreatedAt.After(f.End) {
		return false
	}
	return true
}

// DefaultFilter is the admin listing default: any name, the last lookback
// window ending at now.
func DefaultFilter(now time.Time, lookback time.Duration) Filter {
	return Filter{Start: now.Add(-lookback), End: now}
}
