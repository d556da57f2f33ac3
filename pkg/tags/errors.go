package tags

import (
	"errors"
	"fmt"
)

// ErrMissingNameAttribute is matched by every MissingNameError.
var ErrMissingNameAttribute = errors.New("tags: missing name attribute")

// MissingNameError reports a tag that requires a non-empty name attribute.
// It is a template authoring error, not an end-user input error.
type MissingNameError struct {
	Tag string
}

func (e *MissingNameError) Error() string {
	return fmt.Sprintf("`%s' tag requires a `name' attribute", e.Tag)
}

func (e *MissingNameError) Is(target error) bool {
	return target == ErrMissingNameAttribute
}

// UndefinedTagError reports an r: tag with no registered handler.
type UndefinedTagError struct {
	Tag  string
	Line int
}

func (e *UndefinedTagError) Error() string {
	return fmt.Sprintf("tags: undefined tag `%s' on line %d", e.Tag, e.Line)
}

func requireName(tag Tag) (string, error) {
	name := tag.Attrs.Get("name")
	if name == "" {
		return "", &MissingNameError{Tag: tag.Name}
	}
	return name, nil
}
