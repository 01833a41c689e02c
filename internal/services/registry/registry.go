// Package registry holds the ontology type registry: entity type
// declarations are collected with Define, then a single resolution pass
// (Resolve) checks the structural rules and flattens inheritance into an
// effective schema per type. Forward references between types are legal
// until Resolve runs.
package registry

import (
	"sort"

	"github.com/ontoforge/bfograph/internal/entities"
)

// Registry manages the set of entity type definitions
type Registry struct {
	types map[string]*entities.EntityType
	order []string // definition order, for deterministic error reporting
	root  string   // set by Resolve
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{
		types: make(map[string]*entities.EntityType),
	}
}

// Define registers a type declaration. The parent and relationship targets
// need not be defined yet; they are checked by Resolve.
func (r *Registry) Define(t *entities.EntityType) error {
	if t == nil || t.Name == "" {
		return &entities.SchemaDefinitionError{TypeName: "", Reason: "type name is required"}
	}
	if _, exists := r.types[t.Name]; exists {
		return &entities.SchemaDefinitionError{TypeName: t.Name, Reason: "duplicate type name"}
	}
	for _, p := range t.Properties {
		if err := p.Validate(); err != nil {
			return &entities.SchemaDefinitionError{TypeName: t.Name, Element: p.Name, Reason: err.Error()}
		}
	}
	for _, rel := range t.Relationships {
		if err := rel.Validate(); err != nil {
			return &entities.SchemaDefinitionError{TypeName: t.Name, Element: rel.Name, Reason: err.Error()}
		}
	}
	r.types[t.Name] = t
	r.order = append(r.order, t.Name)
	r.root = ""
	return nil
}

// DefineAll registers a batch of type declarations, stopping at the first error
func (r *Registry) DefineAll(types []*entities.EntityType) error {
	for _, t := range types {
		if err := r.Define(t); err != nil {
			return err
		}
	}
	return nil
}

// Type returns the type definition by name, or nil if not defined
func (r *Registry) Type(name string) *entities.EntityType {
	return r.types[name]
}

// Types returns all defined type names, sorted
func (r *Registry) Types() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Root returns the root type name. Empty until Resolve has run.
func (r *Registry) Root() string {
	return r.root
}

// Resolved reports whether the registry has been successfully resolved
func (r *Registry) Resolved() bool {
	return r.root != ""
}

// IsAssignable reports whether typeName equals ancestor or descends from it.
// It walks the parent chain, so it is usable before Resolve as long as the
// chain is defined.
func (r *Registry) IsAssignable(typeName, ancestor string) bool {
	seen := make(map[string]bool)
	for name := typeName; name != ""; {
		if name == ancestor {
			return true
		}
		if seen[name] {
			return false
		}
		seen[name] = true
		t := r.types[name]
		if t == nil {
			return false
		}
		name = t.Parent
	}
	return false
}

// AncestorChain returns the inheritance chain from typeName up to the root,
// starting with typeName itself
func (r *Registry) AncestorChain(typeName string) []string {
	var chain []string
	seen := make(map[string]bool)
	for name := typeName; name != "" && !seen[name]; {
		t := r.types[name]
		if t == nil {
			break
		}
		chain = append(chain, name)
		seen[name] = true
		name = t.Parent
	}
	return chain
}

// Resolve validates the taxonomy's structural rules and flattens inherited
// properties and relationships into each type's effective schema. It may be
// called again after further Define calls; the pass recomputes from scratch.
func (r *Registry) Resolve() error {
	res := newResolver(r)
	if err := res.run(); err != nil {
		return err
	}
	r.root = res.root
	return nil
}
