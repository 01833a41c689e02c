package repositories

import (
	"context"
	"errors"

	"github.com/ontoforge/bfograph/internal/entities"
)

// ErrCardinalityViolated is returned when creating an edge would exceed the
// cardinality bound of the relationship on either endpoint
var ErrCardinalityViolated = errors.New("relationship cardinality violated")

// EdgeFilter defines filter criteria for querying edges
type EdgeFilter struct {
	SourceID   string // Filter by source node ID (optional)
	SourceType string // Filter by source entity type (optional)
	Label      string // Filter by edge label (optional)
	TargetID   string // Filter by target node ID (optional)
	TargetType string // Filter by target entity type (optional)
}

// EdgeConstraint carries the cardinality bounds to enforce when creating an
// edge. A zero bound means unbounded. SourceMax bounds edges with the same
// label leaving the source node; TargetMax bounds edges with the same label
// arriving at the target node.
type EdgeConstraint struct {
	SourceMax int
	TargetMax int
}

// EdgeRepository defines the interface for edge persistence
type EdgeRepository interface {
	// Create persists a new edge, enforcing the given cardinality
	// constraint atomically with the write. Returns
	// ErrCardinalityViolated if a bound would be exceeded. Creating an
	// identical edge twice is a no-op.
	Create(ctx context.Context, edge *entities.Edge, constraint *EdgeConstraint) error

	// Delete removes an edge. It reports whether a stored edge was
	// actually removed; deleting an absent edge is a no-op returning false.
	Delete(ctx context.Context, edge *entities.Edge) (bool, error)

	// Query retrieves edges matching the filter. The result is a finite
	// snapshot; re-running the query restarts the traversal.
	Query(ctx context.Context, filter *EdgeFilter) ([]*entities.Edge, error)

	// DeleteByNode removes all edges touching the given node
	DeleteByNode(ctx context.Context, nodeID string) error
}
