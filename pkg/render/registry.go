package render

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownCapability is returned when a capability was never registered.
// Unlike a missing layout variant, this is a configuration error and never
// falls back.
var ErrUnknownCapability = errors.New("render: unknown capability")

// ErrMissingDefault is returned when a capability has variants but no
// "default" entry to fall back to.
var ErrMissingDefault = errors.New("render: capability has no default renderer")

// Registry stores renderers by capability and layout variant. Lookups for an
// unregistered variant fall back to the capability's "default" entry.
// Registration happens once at process start; afterwards the registry is
// effectively read-only and safe to share across concurrent renders.
type Registry struct {
	mu           sync.RWMutex
	capabilities map[string]map[string]Renderer
}

// NewRegistry creates an empty registry instance.
func NewRegistry() *Registry {
	return &Registry{
		capabilities: make(map[string]map[string]Renderer),
	}
}

// Register adds a renderer for a capability under a layout variant. An empty
// variant registers the "default" entry. Duplicate (capability, variant)
// pairs return an error.
func (r *Registry) Register(capability, variant string, renderer Renderer) error {
	if renderer == nil {
		return fmt.Errorf("render: renderer is required")
	}
	if capability == "" {
		return fmt.Errorf("render: capability is required")
	}
	if variant == "" {
		variant = DefaultVariant
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	variants, ok := r.capabilities[capability]
	if !ok {
		variants = make(map[string]Renderer)
		r.capabilities[capability] = variants
	}
	if _, exists := variants[variant]; exists {
		return fmt.Errorf("render: renderer for %s/%s already registered", capability, variant)
	}

	variants[variant] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(capability, variant string, renderer Renderer) {
	if err := r.Register(capability, variant, renderer); err != nil {
		panic(err)
	}
}

// Resolve returns the renderer for a capability and layout key. A miss on the
// layout falls back to the capability's "default" entry; a miss on the
// capability itself is a configuration error.
func (r *Registry) Resolve(capability, layout string) (Renderer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variants, ok := r.capabilities[capability]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCapability, capability)
	}
	if layout != "" {
		if renderer, ok := variants[layout]; ok {
			return renderer, nil
		}
	}
	renderer, ok := variants[DefaultVariant]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMissingDefault, capability)
	}
	return renderer, nil
}

// MustResolve panics if resolution fails.
func (r *Registry) MustResolve(capability, layout string) Renderer {
	renderer, err := r.Resolve(capability, layout)
	if err != nil {
		panic(err)
	}
	return renderer
}

// Has reports whether a capability holds an explicit entry for a variant.
func (r *Registry) Has(capability, variant string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variants, ok := r.capabilities[capability]
	if !ok {
		return false
	}
	if variant == "" {
		variant = DefaultVariant
	}
	_, ok = variants[variant]
	return ok
}

// Capabilities returns a sorted list of registered capability names.
func (r *Registry) Capabilities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.capabilities))
	for name := range r.capabilities {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants returns the sorted layout keys registered for a capability.
func (r *Registry) Variants(capability string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	variants, ok := r.capabilities[capability]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
