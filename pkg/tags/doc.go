// Package tags expands the database form tag vocabulary into HTML.
//
// A Registry maps qualified tag names (database:form, database:text,
// database:option, ...) to handlers. Handlers receive the declared
// attributes, a callback that expands the tag's children and the per-render
// Context. The Context carries the scoped state nested tags inherit (the
// enclosing form, the validate flag and the current select or radio group)
// plus a render-wide counter used to number radio options.
//
// Tags requiring a name attribute fail with an error matching
// ErrMissingNameAttribute; the whole render is aborted.
package tags
