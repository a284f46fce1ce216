// Package render maps (resume document, theme) to HTML through four
// interchangeable layout renderers sharing one contract: visible sections
// sorted by order, personal info in a fixed header position, per-layout
// fallback styling when no theme is selected.
package render

import (
	"fmt"
	"sort"
	"sync"

	"resume-builder/internal/model"
)

// Renderer converts a resume document into a rendered byte representation.
// Render is pure: it never mutates its inputs and the same inputs always
// produce the same output.
type Renderer interface {
	Name() string
	ContentType() string
	Render(resume model.ResumeData, theme *model.Theme) ([]byte, error)
}

// Registry stores renderers by name, providing discovery and duplication
// safeguards.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

func NewRegistry() *Registry {
	return &Registry{renderers: make(map[string]Renderer)}
}

// Register adds a renderer by its Name(). Duplicate names return an error.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	name := renderer.Name()
	if name == "" {
		return fmt.Errorf("render: renderer name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[name]; exists {
		return fmt.Errorf("render: renderer %q already registered", name)
	}
	r.renderers[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get retrieves a renderer by name.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("render: renderer %q not found", name)
	}
	return renderer, nil
}

// Resolve returns the renderer for the given template id, falling back to
// the default template when the id has no registered renderer. A selection
// pointing at a missing template is not an error for the user.
func (r *Registry) Resolve(name string) Renderer {
	if renderer, err := r.Get(name); err == nil {
		return renderer
	}
	renderer, err := r.Get(model.DefaultTemplate().ID)
	if err != nil {
		panic(fmt.Sprintf("render: default renderer missing: %v", err))
	}
	return renderer
}

// List returns a sorted list of renderer names.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry returns a registry with the four built-in template
// renderers registered.
func DefaultRegistry() *Registry {
	reg := NewRegistry()
	for _, sp := range templateSpecs {
		renderer, err := newHTMLRenderer(sp)
		if err != nil {
			panic(fmt.Sprintf("render: build %s renderer: %v", sp.id, err))
		}
		reg.MustRegister(renderer)
	}
	return reg
}
