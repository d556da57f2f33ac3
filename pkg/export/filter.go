package export

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-dbform/pkg/submission"
)

// ErrInvalidDatetime reports malformed datetime filter components.
var ErrInvalidDatetime = errors.New("export: invalid datetime")

// Filter parameter names.
const (
	ParamName      = "filter[name]"
	ParamStartTime = "start_time"
	ParamEndTime   = "end_time"
)

// DatetimeParam names one component of a datetime select, e.g.
// DatetimeParam("start_time", 1) is "filter[start_time(1i)]".
func DatetimeParam(field string, component int) string {
	return fmt.Sprintf("filter[%s(%di)]", field, component)
}

// ParseFilter decodes filter[name], filter[start_time(1i..5i)] and
// filter[end_time(1i..5i)]. A bound is only applied when its year component
// is present. Times are interpreted in loc, UTC when nil.
func ParseFilter(values url.Values, loc *time.Location) (submission.Filter, error) {
	var filter submission.Filter
	filter.Name = strings.TrimSpace(values.Get(ParamName))

	var err error
	if filter.Start, err = ParseDatetime(values, ParamStartTime, loc); err != nil {
		return submission.Filter{}, err
	}
	if filter.End, err = ParseDatetime(values, ParamEndTime, loc); err != nil {
		return submission.Filter{}, err
	}
	return filter, nil
}

// ParseDatetime assembles year, month, day, hour and minute components of
// field. It returns the zero time when the year is absent. Month and day
// default to 1, hour and minute to 0.
func ParseDatetime(values url.Values, field string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if strings.TrimSpace(values.Get(DatetimeParam(field, 1))) == "" {
		return time.Time{}, nil
	}

	defaults := [5]int{0, 1, 1, 0, 0}
	var parts [5]int
	for i := range parts {
		raw := strings.TrimSpace(values.Get(DatetimeParam(field, i+1)))
		if raw == "" {
			parts[i] = defaults[i]
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s component %d is %q", ErrInvalidDatetime, field, i+1, raw)
		}
		parts[i] = n
	}

	year, month, day, hour, minute := parts[0], parts[1], parts[2], parts[3], parts[4]
	if month < 1 || month > 12 || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return time.Time{}, fmt.Errorf("%w: %s out of range", ErrInvalidDatetime, field)
	}
	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)
	if ts.Day() != day || int(ts.Month()) != month {
		return time.Time{}, fmt.Errorf("%w: %s has no day %d in month %d", ErrInvalidDatetime, field, day, month)
	}
	return ts, nil
}

// EncodeFilter is the inverse of ParseFilter, used by the admin view and
// CLI to build export links.
func EncodeFilter(filter submission.Filter) url.Values {
	values := url.Values{}
	values.Set(ParamName, filter.Name)
	encodeDatetime(values, ParamStartTime, filter.Start)
	encodeDatetime(values, ParamEndTime, filter.End)
	return values
}

func encodeDatetime(values url.Values, field string, ts time.Time) {
	if ts.IsZero() {
		return
	}
	parts := []int{ts.Year(), int(ts.Month()), ts.Day(), ts.Hour(), ts.Minute()}
	for i, part := range parts {
		values.Set(DatetimeParam(field, i+1), strconv.Itoa(part))
	}
}
