package admin

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-dbform/pkg/export"
)

// OpenAPIDocument describes the admin surface mounted at basePath. The
// document is validated before it is returned.
func OpenAPIDocument(basePath string) (*openapi3.T, error) {
	base := normalizeBase(basePath)
	if base == "/" {
		base = ""
	}

	filterSchema := openapi3.NewObjectSchema().
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("start_time", openapi3.NewDateTimeSchema()).
		WithProperty("end_time", openapi3.NewDateTimeSchema())
	indexSchema := openapi3.NewObjectSchema().
		WithProperty("form_names", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("filter", filterSchema)

	index := &openapi3.Operation{
		OperationID: "listFormNames",
		Summary:     "List captured form names with the default export filter",
		Responses: openapi3.NewResponses(
			openapi3.WithStatus(200, &openapi3.ResponseRef{Value: openapi3.NewResponse().
				WithDescription("Form names and default filter").
				WithContent(openapi3.Content{
					"application/json": openapi3.NewMediaType().WithSchema(indexSchema),
					"text/html":        openapi3.NewMediaType().WithSchema(openapi3.NewStringSchema()),
				})}),
		),
	}

	exportResponses := openapi3.NewResponses(
		openapi3.WithStatus(200, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("form-responses XML document").
			WithContent(openapi3.NewContentWithSchema(openapi3.NewStringSchema(), []string{"application/xml"}))}),
		openapi3.WithStatus(400, &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription("Malformed datetime filter component")}),
	)
	exportGet := &openapi3.Operation{
		OperationID: "exportFormResponses",
		Summary:     "Export filtered form responses as XML",
		Parameters:  exportParameters(),
		Responses:   exportResponses,
	}
	exportPost := &openapi3.Operation{
		OperationID: "exportFormResponsesForm",
		Summary:     "Export filtered form responses as XML from a posted filter form",
		RequestBody: &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
			WithContent(openapi3.NewContentWithSchema(exportFormSchema(), []string{"application/x-www-form-urlencoded"}))},
		Responses: exportResponses,
	}

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   "dbform admin",
			Version: "1.0.0",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(base+"/", &openapi3.PathItem{Get: index}),
			openapi3.WithPath(base+exportRoute, &openapi3.PathItem{Get: exportGet, Post: exportPost}),
		),
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("admin: openapi document: %w", err)
	}
	return doc, nil
}

func exportParameters() openapi3.Parameters {
	params := openapi3.Parameters{
		{Value: openapi3.NewQueryParameter(export.ParamName).
			WithDescription("Exact form name; empty exports every form").
			WithSchema(openapi3.NewStringSchema())},
	}
	for _, field := range []string{export.ParamStartTime, export.ParamEndTime} {
		for i, label := range partLabels {
			params = append(params, &openapi3.ParameterRef{Value: openapi3.NewQueryParameter(export.DatetimeParam(field, i+1)).
				WithDescription(label + " component of " + field).
				WithSchema(openapi3.NewIntegerSchema())})
		}
	}
	return params
}

func exportFormSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperty(export.ParamName, openapi3.NewStringSchema())
	for _, field := range []string{export.ParamStartTime, export.ParamEndTime} {
		for i := range partLabels {
			schema = schema.WithProperty(export.DatetimeParam(field, i+1), openapi3.NewIntegerSchema())
		}
	}
	return schema
}
