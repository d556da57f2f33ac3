// Package template defines the view rendering seam used by the admin screens.
// Adapters live in subpackages; gotemplate provides the pongo2 backed engine.
package template
