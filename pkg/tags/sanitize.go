package tags

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	errorPolicyOnce sync.Once
	errorPolicy     *bluemonday.Policy
)

// sanitizeMessage strips markup from capture error messages, which can carry
// fragments of the submitted data.
func sanitizeMessage(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(messageSanitizer().Sanitize(trimmed))
}

func messageSanitizer() *bluemonday.Policy {
	errorPolicyOnce.Do(func() {
		errorPolicy = bluemonday.StrictPolicy()
	})
	return errorPolicy
}
