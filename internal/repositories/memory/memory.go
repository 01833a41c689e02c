// Package memory provides in-memory implementations of the graph
// repositories. They back the runnable examples and the service tests; the
// postgres package is the durable implementation.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/ontoforge/bfograph/internal/entities"
	"github.com/ontoforge/bfograph/internal/repositories"
)

// Store holds nodes and edges in process memory.
// A single mutex guards both maps so edge constraints see a consistent view.
type Store struct {
	mu    sync.RWMutex
	nodes map[string]*entities.Node
	edges map[string]*entities.Edge // keyed by sourceID#label#targetID
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		nodes: make(map[string]*entities.Node),
		edges: make(map[string]*entities.Edge),
	}
}

// Nodes returns the store's NodeRepository view
func (s *Store) Nodes() repositories.NodeRepository { return &nodeRepo{s} }

// Edges returns the store's EdgeRepository view
func (s *Store) Edges() repositories.EdgeRepository { return &edgeRepo{s} }

func edgeKey(e *entities.Edge) string {
	return e.SourceID + "#" + e.Label + "#" + e.TargetID
}

// copyNode clones a node including its property map, so neither the caller's
// node nor a returned one shares state with the store.
func copyNode(n *entities.Node) *entities.Node {
	copied := *n
	if n.Properties != nil {
		copied.Properties = make(map[string]any, len(n.Properties))
		for k, v := range n.Properties {
			copied.Properties[k] = v
		}
	}
	return &copied
}

type nodeRepo struct{ s *Store }

func (r *nodeRepo) Create(ctx context.Context, node *entities.Node) error {
	if err := node.Validate(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := copyNode(node)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.s.nodes[node.ID] = stored
	return nil
}

func (r *nodeRepo) Get(ctx context.Context, id string) (*entities.Node, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	node, ok := r.s.nodes[id]
	if !ok {
		return nil, repositories.ErrNodeNotFound
	}
	return copyNode(node), nil
}

func (r *nodeRepo) ListByType(ctx context.Context, nodeType string) ([]*entities.Node, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var nodes []*entities.Node
	for _, node := range r.s.nodes {
		if node.Type == nodeType {
			nodes = append(nodes, copyNode(node))
		}
	}
	return nodes, nil
}

func (r *nodeRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.nodes, id)
	for key, edge := range r.s.edges {
		if edge.SourceID == id || edge.TargetID == id {
			delete(r.s.edges, key)
		}
	}
	return nil
}

type edgeRepo struct{ s *Store }

func (r *edgeRepo) Create(ctx context.Context, edge *entities.Edge, constraint *repositories.EdgeConstraint) error {
	if err := edge.Validate(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.edges[edgeKey(edge)]; exists {
		return nil
	}

	if constraint != nil {
		var outgoing, incoming int
		for _, e := range r.s.edges {
			if e.Label != edge.Label {
				continue
			}
			if e.SourceID == edge.SourceID {
				outgoing++
			}
			if e.TargetID == edge.TargetID {
				incoming++
			}
		}
		if constraint.SourceMax > 0 && outgoing >= constraint.SourceMax {
			return repositories.ErrCardinalityViolated
		}
		if constraint.TargetMax > 0 && incoming >= constraint.TargetMax {
			return repositories.ErrCardinalityViolated
		}
	}

	stored := *edge
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.s.edges[edgeKey(edge)] = &stored
	return nil
}

func (r *edgeRepo) Delete(ctx context.Context, edge *entities.Edge) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := edgeKey(edge)
	_, existed := r.s.edges[key]
	delete(r.s.edges, key)
	return existed, nil
}

func (r *edgeRepo) Query(ctx context.Context, filter *repositories.EdgeFilter) ([]*entities.Edge, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var edges []*entities.Edge
	for _, edge := range r.s.edges {
		if filter != nil {
			if filter.SourceID != "" && edge.SourceID != filter.SourceID {
				continue
			}
			if filter.SourceType != "" && edge.SourceType != filter.SourceType {
				continue
			}
			if filter.Label != "" && edge.Label != filter.Label {
				continue
			}
			if filter.TargetID != "" && edge.TargetID != filter.TargetID {
				continue
			}
			if filter.TargetType != "" && edge.TargetType != filter.TargetType {
				continue
			}
		}
		copied := *edge
		edges = append(edges, &copied)
	}
	return edges, nil
}

func (r *edgeRepo) DeleteByNode(ctx context.Context, nodeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for key, edge := range r.s.edges {
		if edge.SourceID == nodeID || edge.TargetID == nodeID {
			delete(r.s.edges, key)
		}
	}
	return nil
}
