package postgres

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-dbform/pkg/submission"
)

const (
	insertSQL = `INSERT INTO form_responses (id, name, content, created_at) VALUES ($1::uuid, $2, $3, $4)`

	formNamesSQL = `SELECT DISTINCT name FROM form_responses ORDER BY name`

	selectSQL = `SELECT id::text, name, content, created_at FROM form_responses`
)

// findQuery builds the parameterised export query for filter.
func findQuery(filter submission.Filter) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	placeholder := func(value any) string {
		args = append(args, value)
		return "$" + strconv.Itoa(len(args))
	}

	if filter.Name != "" {
		conditions = append(conditions, "name = "+placeholder(filter.Name))
	}
	if !filter.Start.IsZero() {
		conditions = append(conditions, "created_at >= "+placeholder(filter.Start.UTC()))
	}
	if !filter.End.IsZero() {
		conditions = append(conditions, "created_at <= "+placeholder(filter.End.UTC()))
	}

	var query strings.Builder
	query.WriteString(selectSQL)
	if len(conditions) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY name, created_at")
	return query.String(), args
}
