package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ontoforge/bfograph/internal/entities"
	"github.com/ontoforge/bfograph/internal/repositories"
)

// PostgresNodeRepository implements NodeRepository using PostgreSQL
type PostgresNodeRepository struct {
	db *sql.DB
}

// NewPostgresNodeRepository creates a new PostgreSQL node repository
func NewPostgresNodeRepository(db *sql.DB) repositories.NodeRepository {
	return &PostgresNodeRepository{db: db}
}

// Create persists a new node
func (r *PostgresNodeRepository) Create(ctx context.Context, node *entities.Node) error {
	if err := node.Validate(); err != nil {
		return fmt.Errorf("invalid node: %w", err)
	}

	propsJSON, err := json.Marshal(node.Properties)
	if err != nil {
		return fmt.Errorf("failed to marshal node properties: %w", err)
	}

	query := `
		INSERT INTO nodes (id, node_type, properties, created_at)
		VALUES ($1, $2, $3, $4)
	`
	createdAt := node.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err = r.db.ExecContext(ctx, query, node.ID, node.Type, string(propsJSON), createdAt)
	if err != nil {
		return fmt.Errorf("failed to create node: %w", err)
	}

	return nil
}

// Get retrieves a node by ID
func (r *PostgresNodeRepository) Get(ctx context.Context, id string) (*entities.Node, error) {
	query := `
		SELECT id, node_type, properties, created_at
		FROM nodes
		WHERE id = $1
	`
	var node entities.Node
	var propsJSON string
	err := r.db.QueryRowContext(ctx, query, id).Scan(&node.ID, &node.Type, &propsJSON, &node.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, repositories.ErrNodeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get node: %w", err)
	}

	if err := json.Unmarshal([]byte(propsJSON), &node.Properties); err != nil {
		return nil, fmt.Errorf("failed to unmarshal node properties: %w", err)
	}

	return &node, nil
}

// ListByType retrieves all nodes of the given entity type
func (r *PostgresNodeRepository) ListByType(ctx context.Context, nodeType string) ([]*entities.Node, error) {
	query := `
		SELECT id, node_type, properties, created_at
		FROM nodes
		WHERE node_type = $1
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query, nodeType)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}
	defer rows.Close()

	var nodes []*entities.Node
	for rows.Next() {
		var node entities.Node
		var propsJSON string
		if err := rows.Scan(&node.ID, &node.Type, &propsJSON, &node.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan node: %w", err)
		}
		if err := json.Unmarshal([]byte(propsJSON), &node.Properties); err != nil {
			return nil, fmt.Errorf("failed to unmarshal node properties: %w", err)
		}
		nodes = append(nodes, &node)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating nodes: %w", err)
	}

	return nodes, nil
}

// Delete removes a node. Edges are removed by the ON DELETE CASCADE
// constraints on the edges table.
func (r *PostgresNodeRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM nodes WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete node: %w", err)
	}
	return nil
}
