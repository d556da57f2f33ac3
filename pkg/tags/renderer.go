package tags

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-dbform/pkg/markup"
	"github.com/goliatone/go-dbform/pkg/render"
)

// DefaultValidationScript is the client-side validation library referenced
// by validating forms.
const DefaultValidationScript = "/javascripts/validation.js"

type Option func(*config)

type config struct {
	registry         *Registry
	validationScript string
}

// WithRegistry swaps the tag registry, e.g. a clone with extra tags.
func WithRegistry(registry *Registry) Option {
	return func(cfg *config) {
		if registry != nil {
			cfg.registry = registry
		}
	}
}

// WithValidationScript overrides the script src emitted by validating forms.
func WithValidationScript(src string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(src); trimmed != "" {
			cfg.validationScript = trimmed
		}
	}
}

// Renderer expands page markup. It holds no per-render state and is safe for
// concurrent use.
type Renderer struct {
	registry *Registry
	settings settings
}

// New constructs a renderer backed by the default registry unless overridden.
func New(options ...Option) *Renderer {
	cfg := config{validationScript: DefaultValidationScript}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = NewDefaultRegistry()
	}
	return &Renderer{
		registry: cfg.registry,
		settings: settings{validationScript: cfg.validationScript},
	}
}

// Registry exposes the registry backing the renderer.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// RenderString parses src and expands it for page.
func (r *Renderer) RenderString(ctx context.Context, src string, page Page) (string, error) {
	nodes, err := markup.Parse(src)
	if err != nil {
		return "", err
	}
	return r.Render(ctx, nodes, page)
}

// Render expands parsed nodes with a fresh Context.
func (r *Renderer) Render(ctx context.Context, nodes []*markup.Node, page Page) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return r.expand(nodes, newContext(page, r.settings), nil)
}

func (r *Renderer) expand(nodes []*markup.Node, ctx *Context, enclosing []string) (string, error) {
	var builder strings.Builder
	for _, node := range nodes {
		if node.Kind == markup.TextNode {
			builder.WriteString(node.Text)
			continue
		}

		descriptor, ok := r.registry.Resolve(node.Name, enclosing)
		if !ok {
			return "", &UndefinedTagError{Tag: node.Name, Line: node.Line}
		}

		children := node.Children
		nested := make([]string, len(enclosing), len(enclosing)+1)
		copy(nested, enclosing)
		nested = append(nested, descriptor.Name)

		tag := Tag{
			Name:  descriptor.Name,
			Attrs: render.Attributes(node.AttrMap()),
			expand: func(child *Context) (string, error) {
				return r.expand(children, child, nested)
			},
		}

		out, err := descriptor.Handler(tag, ctx)
		if err != nil {
			return "", err
		}
		builder.WriteString(out)
	}
	return builder.String(), nil
}

// Expand is a convenience wrapper around a default renderer.
func Expand(ctx context.Context, src string, page Page) (string, error) {
	out, err := New().RenderString(ctx, src, page)
	if err != nil {
		return "", fmt.Errorf("tags: expand: %w", err)
	}
	return out, nil
}
