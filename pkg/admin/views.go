package admin

import (
	"embed"
	"fmt"
	"io/fs"
	"time"

	"github.com/goliatone/go-dbform/pkg/export"
	"github.com/goliatone/go-dbform/pkg/render/template"
	"github.com/goliatone/go-dbform/pkg/render/template/gotemplate"
)

//go:embed templates/*.tmpl
var templateFiles embed.FS

const indexView = "index"

// DefaultViews returns a pongo2 engine over the embedded admin templates.
func DefaultViews() (template.TemplateRenderer, error) {
	sub, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		return nil, fmt.Errorf("admin: templates: %w", err)
	}
	engine, err := gotemplate.New(gotemplate.WithFS(sub))
	if err != nil {
		return nil, fmt.Errorf("admin: views: %w", err)
	}
	return engine, nil
}

// DatetimePart is one component input of a datetime filter.
type DatetimePart struct {
	Param string
	Label string
	Value int
}

var partLabels = [5]string{"Year", "Month", "Day", "Hour", "Minute"}

func datetimeParts(field string, ts time.Time) []DatetimePart {
	values := [5]int{ts.Year(), int(ts.Month()), ts.Day(), ts.Hour(), ts.Minute()}
	parts := make([]DatetimePart, 0, len(values))
	for i, value := range values {
		parts = append(parts, DatetimePart{
			Param: export.DatetimeParam(field, i+1),
			Label: partLabels[i],
			Value: value,
		})
	}
	return parts
}
