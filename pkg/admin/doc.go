// Package admin serves the form response administration surface: an index
// listing captured form names with a default filter, an XML export of the
// filtered submissions, and an OpenAPI description of both.
//
// The surface is a chi router meant to be mounted under a base path, by
// default /admin/form_responses:
//
//	GET       {base}               index (HTML, or JSON when requested)
//	GET|POST  {base}/export        XML export
//	GET       {base}/openapi.json  OpenAPI 3 document
//
// When a CSRF key is configured, unsafe requests are checked with
// gorilla/csrf and the index form carries the token field.
package admin
