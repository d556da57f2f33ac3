package submission

import (
	"errors"
	"slices"
	"strings"
)

// Attribute names reported by ValidationError, matching the persisted
// column names.
const (
	AttrName    = "name"
	AttrContent = "content"

	msgBlank = "can't be blank"
)

// ErrInvalid is matched by every *ValidationError.
var ErrInvalid = errors.New("submission: invalid record")

// ValidationError lists the attributes that failed validation with their
// messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return ErrInvalid.Error()
	}
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	slices.Sort(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, cap1(name)+" "+e.Fields[name])
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func cap1(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
