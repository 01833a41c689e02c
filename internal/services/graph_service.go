package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ontoforge/bfograph/internal/entities"
	"github.com/ontoforge/bfograph/internal/infrastructure/metrics"
	"github.com/ontoforge/bfograph/internal/repositories"
	"github.com/ontoforge/bfograph/internal/services/registry"
)

// GraphService creates and traverses instances of registered entity types.
// It is the enforcement boundary for the resolved schema: abstractness,
// property types, required properties, relationship target types and
// cardinality are all checked here before anything reaches a repository.
type GraphService struct {
	registry  *registry.Registry
	nodes     repositories.NodeRepository
	edges     repositories.EdgeRepository
	collector *metrics.Collector // optional, nil-safe
}

// NewGraphService creates a GraphService over a resolved registry.
// collector may be nil.
func NewGraphService(
	reg *registry.Registry,
	nodes repositories.NodeRepository,
	edges repositories.EdgeRepository,
	collector *metrics.Collector,
) *GraphService {
	return &GraphService{
		registry:  reg,
		nodes:     nodes,
		edges:     edges,
		collector: collector,
	}
}

// CreateNode instantiates an entity type with the given property values.
// Defaults are applied for absent properties; abstract types are rejected.
func (s *GraphService) CreateNode(ctx context.Context, typeName string, props map[string]any) (*entities.Node, error) {
	if !s.registry.Resolved() {
		return nil, fmt.Errorf("registry is not resolved")
	}
	t := s.registry.Type(typeName)
	if t == nil {
		return nil, fmt.Errorf("unknown entity type: %s", typeName)
	}
	if t.Abstract {
		s.collector.RecordRejection("abstract_type")
		return nil, &entities.AbstractInstantiationError{TypeName: typeName}
	}

	resolved := make(map[string]any, len(t.EffectiveProperties))
	for name, value := range props {
		spec := t.EffectiveProperty(name)
		if spec == nil {
			s.collector.RecordRejection("property")
			return nil, fmt.Errorf("type %s has no property %s", typeName, name)
		}
		if err := spec.CheckValue(value); err != nil {
			s.collector.RecordRejection("property")
			return nil, err
		}
		resolved[name] = value
	}

	for _, spec := range t.EffectiveProperties {
		if _, ok := resolved[spec.Name]; ok {
			continue
		}
		switch {
		case spec.DefaultFunc != nil:
			resolved[spec.Name] = spec.DefaultFunc()
		case spec.Default != nil:
			resolved[spec.Name] = spec.Default
		case spec.Required:
			s.collector.RecordRejection("property")
			return nil, fmt.Errorf("type %s: required property %s is missing", typeName, spec.Name)
		}
	}

	id := uuid.NewString()
	if uid, ok := resolved["uid"].(string); ok && uid != "" {
		id = uid
	}

	node := &entities.Node{
		ID:         id,
		Type:       typeName,
		Properties: resolved,
	}
	if err := s.nodes.Create(ctx, node); err != nil {
		return nil, fmt.Errorf("failed to create node: %w", err)
	}
	s.collector.RecordNodeCreated()
	return node, nil
}

// GetNode retrieves a node by ID
func (s *GraphService) GetNode(ctx context.Context, id string) (*entities.Node, error) {
	return s.nodes.Get(ctx, id)
}

// ListNodes retrieves all nodes of the given entity type
func (s *GraphService) ListNodes(ctx context.Context, typeName string) ([]*entities.Node, error) {
	if s.registry.Type(typeName) == nil {
		return nil, fmt.Errorf("unknown entity type: %s", typeName)
	}
	return s.nodes.ListByType(ctx, typeName)
}

// Link connects sourceID to targetID via the named relationship on the
// source's type. Inverse relationship pairs share one stored edge, so linking
// through either name of a pair produces the same edge; relinking an existing
// pair is a no-op.
func (s *GraphService) Link(ctx context.Context, sourceID, relationship, targetID string) error {
	source, target, spec, err := s.resolveLink(ctx, sourceID, relationship, targetID)
	if err != nil {
		return err
	}

	edge, constraint := s.buildEdge(source, target, spec)
	if err := s.edges.Create(ctx, edge, constraint); err != nil {
		if err == repositories.ErrCardinalityViolated {
			s.collector.RecordRejection("cardinality")
			return fmt.Errorf("relationship %s on %s: %w", relationship, source.Type, err)
		}
		return fmt.Errorf("failed to create edge: %w", err)
	}
	s.collector.RecordEdgeCreated()
	return nil
}

// Unlink removes the edge behind the named relationship between sourceID and
// targetID. Removing an edge through either name of an inverse pair removes
// it for both.
func (s *GraphService) Unlink(ctx context.Context, sourceID, relationship, targetID string) error {
	source, target, spec, err := s.resolveLink(ctx, sourceID, relationship, targetID)
	if err != nil {
		return err
	}

	edge, _ := s.buildEdge(source, target, spec)
	removed, err := s.edges.Delete(ctx, edge)
	if err != nil {
		return fmt.Errorf("failed to delete edge: %w", err)
	}
	if removed {
		s.collector.RecordEdgeDeleted()
	}
	return nil
}

// Related returns the nodes reachable from nodeID through the named
// relationship. The result is recomputed from the store on every call.
func (s *GraphService) Related(ctx context.Context, nodeID, relationship string) ([]*entities.Node, error) {
	node, err := s.nodes.Get(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get node: %w", err)
	}
	spec, err := s.relationshipSpec(node.Type, relationship)
	if err != nil {
		return nil, err
	}

	filter := &repositories.EdgeFilter{Label: spec.Label}
	if spec.Direction == entities.Outgoing {
		filter.SourceID = nodeID
	} else {
		filter.TargetID = nodeID
	}
	edges, err := s.edges.Query(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}

	nodes := make([]*entities.Node, 0, len(edges))
	for _, edge := range edges {
		otherID := edge.TargetID
		if spec.Direction == entities.Incoming {
			otherID = edge.SourceID
		}
		other, err := s.nodes.Get(ctx, otherID)
		if err != nil {
			return nil, fmt.Errorf("failed to get related node %s: %w", otherID, err)
		}
		nodes = append(nodes, other)
	}
	return nodes, nil
}

// DeleteNode removes a node and every edge touching it
func (s *GraphService) DeleteNode(ctx context.Context, id string) error {
	if _, err := s.nodes.Get(ctx, id); err != nil {
		return err
	}
	if err := s.edges.DeleteByNode(ctx, id); err != nil {
		return fmt.Errorf("failed to delete edges: %w", err)
	}
	if err := s.nodes.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete node: %w", err)
	}
	s.collector.RecordNodeDeleted()
	return nil
}

// resolveLink loads both endpoints, finds the relationship spec on the
// source's type and checks the target's type against the spec
func (s *GraphService) resolveLink(ctx context.Context, sourceID, relationship, targetID string) (*entities.Node, *entities.Node, *entities.RelationshipSpec, error) {
	source, err := s.nodes.Get(ctx, sourceID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get source node: %w", err)
	}
	target, err := s.nodes.Get(ctx, targetID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get target node: %w", err)
	}

	spec, err := s.relationshipSpec(source.Type, relationship)
	if err != nil {
		return nil, nil, nil, err
	}
	if !s.registry.IsAssignable(target.Type, spec.Target) {
		s.collector.RecordRejection("relationship_type")
		return nil, nil, nil, &entities.RelationshipTypeError{
			SourceType:   source.Type,
			Relationship: relationship,
			TargetType:   target.Type,
			WantTarget:   spec.Target,
		}
	}
	return source, target, spec, nil
}

func (s *GraphService) relationshipSpec(typeName, relationship string) (*entities.RelationshipSpec, error) {
	t := s.registry.Type(typeName)
	if t == nil {
		return nil, fmt.Errorf("unknown entity type: %s", typeName)
	}
	spec := t.EffectiveRelationship(relationship)
	if spec == nil {
		return nil, fmt.Errorf("type %s has no relationship %s", typeName, relationship)
	}
	return spec, nil
}

// buildEdge maps a relationship use onto its stored edge and cardinality
// constraint. An outgoing relationship stores declarer -> other; an incoming
// one stores other -> declarer. Each end's bound comes from the relationship
// spec reading that end: the declarer's own spec for its end, the inverse
// spec on the other node's type (same label, opposite direction) for the
// other end. An end with no spec reading it is unbounded.
func (s *GraphService) buildEdge(declarer, other *entities.Node, spec *entities.RelationshipSpec) (*entities.Edge, *repositories.EdgeConstraint) {
	edge := &entities.Edge{Label: spec.Label}
	constraint := &repositories.EdgeConstraint{}

	if spec.Direction == entities.Outgoing {
		edge.SourceID, edge.SourceType = declarer.ID, declarer.Type
		edge.TargetID, edge.TargetType = other.ID, other.Type
		constraint.SourceMax = spec.Cardinality.Max()
		constraint.TargetMax = s.inverseMax(other.Type, spec.Label, entities.Incoming)
	} else {
		edge.SourceID, edge.SourceType = other.ID, other.Type
		edge.TargetID, edge.TargetType = declarer.ID, declarer.Type
		constraint.TargetMax = spec.Cardinality.Max()
		constraint.SourceMax = s.inverseMax(other.Type, spec.Label, entities.Outgoing)
	}
	return edge, constraint
}

func (s *GraphService) inverseMax(typeName, label string, direction entities.Direction) int {
	t := s.registry.Type(typeName)
	if t == nil {
		return 0
	}
	for _, spec := range t.EffectiveRelationships {
		if spec.Label == label && spec.Direction == direction {
			return spec.Cardinality.Max()
		}
	}
	return 0
}
