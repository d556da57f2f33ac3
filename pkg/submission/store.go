package submission

import "context"

// Store persists submissions. Implementations must be safe for concurrent
// use.
type Store interface {
	// Create validates s, assigns its ID and CreatedAt, and persists it.
	// Invalid records are refused with an error matching ErrInvalid.
	Create(ctx context.Context, s *Submission) error
	// FormNames returns the distinct form names, sorted.
	FormNames(ctx context.Context) ([]string, error)
	// Find returns matching submissions ordered by name, then created_at.
	Find(ctx context.Context, filter Filter) ([]Submission, error)
}
