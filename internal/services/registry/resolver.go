package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ontoforge/bfograph/internal/entities"
)

// resolver runs the post-definition resolution pass over a registry
type resolver struct {
	reg  *Registry
	errs []error
	root string
}

func newResolver(reg *Registry) *resolver {
	return &resolver{reg: reg}
}

func (v *resolver) addError(typeName, element, reason string) {
	v.errs = append(v.errs, &entities.SchemaDefinitionError{
		TypeName: typeName,
		Element:  element,
		Reason:   reason,
	})
}

// run executes the pass: tree shape, inheritance flattening, target checks
func (v *resolver) run() error {
	v.validateTree()
	if len(v.errs) > 0 {
		return errors.Join(v.errs...)
	}

	order := v.topoOrder()
	for _, name := range order {
		v.flatten(v.reg.types[name])
	}
	v.validateTargets()

	if len(v.errs) > 0 {
		return errors.Join(v.errs...)
	}
	return nil
}

// validateTree checks that the hierarchy forms a single-rooted tree
func (v *resolver) validateTree() {
	var roots []string
	for _, name := range v.reg.order {
		t := v.reg.types[name]
		if t.Parent == "" {
			roots = append(roots, name)
			continue
		}
		if _, ok := v.reg.types[t.Parent]; !ok {
			v.addError(name, "", fmt.Sprintf("undefined parent type: %s", t.Parent))
		}
	}

	switch len(roots) {
	case 0:
		if len(v.reg.types) > 0 {
			v.addError("", "", "no root type defined")
		}
	case 1:
		v.root = roots[0]
	default:
		v.addError("", "", fmt.Sprintf("multiple root types: %s", strings.Join(roots, ", ")))
	}
}

// topoOrder returns type names root-first so parents flatten before children.
// Types whose parent chain never reaches the root (a parent cycle) are
// reported and excluded.
func (v *resolver) topoOrder() []string {
	children := make(map[string][]string)
	for _, name := range v.reg.order {
		t := v.reg.types[name]
		if t.Parent != "" {
			children[t.Parent] = append(children[t.Parent], name)
		}
	}

	var order []string
	visited := make(map[string]bool)
	queue := []string{v.root}
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if visited[name] {
			continue
		}
		visited[name] = true
		order = append(order, name)
		queue = append(queue, children[name]...)
	}

	for _, name := range v.reg.order {
		if !visited[name] {
			v.addError(name, "", "parent chain does not reach the root type")
		}
	}
	return order
}

// flatten computes the type's effective schema from its parent's effective
// schema plus its own declarations, enforcing the redeclaration rules
func (v *resolver) flatten(t *entities.EntityType) {
	var props []*entities.PropertySpec
	var rels []*entities.RelationshipSpec
	if t.Parent != "" {
		parent := v.reg.types[t.Parent]
		props = append(props, parent.EffectiveProperties...)
		rels = append(rels, parent.EffectiveRelationships...)
	}

	propIdx := make(map[string]int, len(props))
	for i, p := range props {
		propIdx[p.Name] = i
	}
	relIdx := make(map[string]int, len(rels))
	for i, rel := range rels {
		relIdx[rel.Name] = i
	}

	for _, p := range t.Properties {
		if _, ok := propIdx[p.Name]; ok {
			v.addError(t.Name, p.Name, "redeclares an inherited property")
			continue
		}
		if _, ok := relIdx[p.Name]; ok {
			v.addError(t.Name, p.Name, "property name conflicts with an inherited relationship")
			continue
		}
		propIdx[p.Name] = len(props)
		props = append(props, p)
	}

	for _, rel := range t.Relationships {
		if _, ok := propIdx[rel.Name]; ok {
			v.addError(t.Name, rel.Name, "relationship name conflicts with an inherited property")
			continue
		}
		i, inherited := relIdx[rel.Name]
		if !inherited {
			relIdx[rel.Name] = len(rels)
			rels = append(rels, rel)
			continue
		}
		if reason := v.narrowingError(rels[i], rel); reason != "" {
			v.addError(t.Name, rel.Name, reason)
			continue
		}
		rels[i] = rel
	}

	t.EffectiveProperties = props
	t.EffectiveRelationships = rels
}

// narrowingError reports why decl is not a legal redeclaration of the
// inherited relationship, or "" if it strictly narrows it
func (v *resolver) narrowingError(inherited, decl *entities.RelationshipSpec) string {
	if decl.Label != inherited.Label {
		return fmt.Sprintf("redeclaration changes label %s to %s", inherited.Label, decl.Label)
	}
	if decl.Direction != inherited.Direction {
		return fmt.Sprintf("redeclaration changes direction %s to %s", inherited.Direction, decl.Direction)
	}
	if !v.reg.IsAssignable(decl.Target, inherited.Target) {
		return fmt.Sprintf("redeclaration target %s is not a descendant of %s", decl.Target, inherited.Target)
	}
	if !decl.Cardinality.Narrows(inherited.Cardinality) {
		return fmt.Sprintf("redeclaration cardinality %s does not strictly narrow %s",
			decl.Cardinality, inherited.Cardinality)
	}
	return ""
}

// validateTargets checks that relationship targets reference defined types
func (v *resolver) validateTargets() {
	for _, name := range v.reg.order {
		t := v.reg.types[name]
		for _, rel := range t.Relationships {
			if _, ok := v.reg.types[rel.Target]; !ok {
				v.addError(name, rel.Name, fmt.Sprintf("references undefined target type: %s", rel.Target))
			}
		}
	}
}
