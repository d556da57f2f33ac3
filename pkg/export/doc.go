// Package export serialises captured submissions as an XML document and
// decodes the admin filter parameters that select them.
package export
