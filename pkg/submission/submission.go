package submission

import (
	"cmp"
	"slices"
	"time"
)

// Submission is one completed form post. It is created once and never
// updated.
type Submission struct {
	ID        string    `json:"id" yaml:"id"`
	FormName  string    `json:"name" yaml:"name"`
	Fields    Fields    `json:"content" yaml:"content"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// Validate reports blank required attributes. The returned error is a
// *ValidationError matching ErrInvalid.
func (s Submission) Validate() error {
	problems := map[string]string{}
	if s.FormName == "" {
		problems[AttrName] = msgBlank
	}
	if s.Fields.Empty() {
		problems[AttrContent] = msgBlank
	}
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Fields: problems}
}

// Sort orders submissions by form name, then creation time.
func Sort(records []Submission) {
	slices.SortStableFunc(records, func(a, b Submission) int {
		if c := cmp.Compare(a.FormName, b.FormName); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}
