// Package render holds the HTML building blocks shared by the database form
// tags: the attribute renderer, a small element builder, hidden field helpers
// and form-level message normalisation. Attribute values and text bodies are
// HTML-escaped on output; element bodies are treated as trusted markup.
package render
