package repositories

import (
	"context"
	"errors"

	"github.com/ontoforge/bfograph/internal/entities"
)

// ErrNodeNotFound is returned when a node handle does not resolve
var ErrNodeNotFound = errors.New("node not found")

// NodeRepository defines the interface for node persistence
type NodeRepository interface {
	// Create persists a new node
	Create(ctx context.Context, node *entities.Node) error

	// Get retrieves a node by ID; returns ErrNodeNotFound if absent
	Get(ctx context.Context, id string) (*entities.Node, error)

	// ListByType retrieves all nodes of the given entity type
	ListByType(ctx context.Context, nodeType string) ([]*entities.Node, error)

	// Delete removes a node and all edges touching it
	Delete(ctx context.Context, id string) error
}
