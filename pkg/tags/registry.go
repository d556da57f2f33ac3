package tags

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/goliatone/go-dbform/pkg/render"
)

// Tag is the invocation a handler receives.
type Tag struct {
	// Name is the qualified tag name the invocation resolved to.
	Name  string
	Attrs render.Attributes

	expand func(*Context) (string, error)
}

// Expand renders the tag's children using ctx.
func (t Tag) Expand(ctx *Context) (string, error) {
	if t.expand == nil {
		return "", nil
	}
	return t.expand(ctx)
}

// Handler renders one tag invocation.
type Handler func(tag Tag, ctx *Context) (string, error)

// Descriptor bundles a handler with its documentation.
type Descriptor struct {
	Name        string
	Description string
	Handler     Handler
}

// Registry tracks tag descriptors keyed by qualified name. Callers can
// register new tags or override defaults.
type Registry struct {
	mu   sync.RWMutex
	tags map[string]Descriptor
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		tags: make(map[string]Descriptor),
	}
}

// Clone returns a copy of the registry to allow isolated mutations.
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cloned := NewRegistry()
	for name, descriptor := range r.tags {
		cloned.tags[name] = descriptor
	}
	return cloned
}

// Register associates a descriptor with the provided name. Existing entries
// are replaced.
func (r *Registry) Register(name string, descriptor Descriptor) error {
	if name = normalize(name); name == "" {
		return fmt.Errorf("tags: tag name is required")
	}
	if descriptor.Handler == nil {
		return fmt.Errorf("tags: handler for %q is nil", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	descriptor.Name = name
	r.tags[name] = descriptor
	return nil
}

// MustRegister mirrors Register but panics on error, simplifying default
// registry setup.
func (r *Registry) MustRegister(name string, descriptor Descriptor) {
	if err := r.Register(name, descriptor); err != nil {
		panic(err)
	}
}

// Descriptor fetches a descriptor by qualified name.
func (r *Registry) Descriptor(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.tags[normalize(name)]
	return descriptor, ok
}

// Names returns a sorted slice of registered tag names.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tags))
	for name := range r.tags {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve looks a tag name up relative to its enclosing tags, innermost
// first. Inside database:form, "text" resolves to "database:form:text" or
// "database:text" before falling back to the bare name.
func (r *Registry) Resolve(name string, enclosing []string) (Descriptor, bool) {
	name = normalize(name)
	r.mu.RLock()
	defer r.mu.RUnlock()

	for idx := len(enclosing) - 1; idx >= 0; idx-- {
		prefix := enclosing[idx]
		for prefix != "" {
			if descriptor, ok := r.tags[prefix+":"+name]; ok {
				return descriptor, true
			}
			cut := strings.LastIndexByte(prefix, ':')
			if cut < 0 {
				break
			}
			prefix = prefix[:cut]
		}
	}

	descriptor, ok := r.tags[name]
	return descriptor, ok
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
