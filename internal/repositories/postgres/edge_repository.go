package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/ontoforge/bfograph/internal/entities"
	"github.com/ontoforge/bfograph/internal/repositories"
)

// PostgresEdgeRepository implements EdgeRepository using PostgreSQL
type PostgresEdgeRepository struct {
	db *sql.DB
}

// NewPostgresEdgeRepository creates a new PostgreSQL edge repository
func NewPostgresEdgeRepository(db *sql.DB) repositories.EdgeRepository {
	return &PostgresEdgeRepository{db: db}
}

// Create persists a new edge, checking cardinality bounds inside the write
// transaction. Bounded endpoint node rows are locked first, so concurrent
// creates against the same endpoint serialize and cannot both pass the count
func (r *PostgresEdgeRepository) Create(ctx context.Context, edge *entities.Edge, constraint *repositories.EdgeConstraint) error {
	if err := edge.Validate(); err != nil {
		return fmt.Errorf("invalid edge: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if constraint != nil {
		if err := lockBoundedEndpoints(ctx, tx, edge, constraint); err != nil {
			return err
		}
	}

	var exists bool
	existsQuery := `
		SELECT EXISTS(
			SELECT 1 FROM edges
			WHERE source_id = $1 AND label = $2 AND target_id = $3
		)
	`
	if err := tx.QueryRowContext(ctx, existsQuery, edge.SourceID, edge.Label, edge.TargetID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check edge existence: %w", err)
	}
	if exists {
		return nil
	}

	if constraint != nil {
		if constraint.SourceMax > 0 {
			count, err := countEdges(ctx, tx,
				`SELECT COUNT(*) FROM edges WHERE source_id = $1 AND label = $2`,
				edge.SourceID, edge.Label)
			if err != nil {
				return err
			}
			if count >= constraint.SourceMax {
				return repositories.ErrCardinalityViolated
			}
		}
		if constraint.TargetMax > 0 {
			count, err := countEdges(ctx, tx,
				`SELECT COUNT(*) FROM edges WHERE target_id = $1 AND label = $2`,
				edge.TargetID, edge.Label)
			if err != nil {
				return err
			}
			if count >= constraint.TargetMax {
				return repositories.ErrCardinalityViolated
			}
		}
	}

	query := `
		INSERT INTO edges (source_id, source_type, label, target_id, target_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (source_id, label, target_id) DO NOTHING
	`
	_, err = tx.ExecContext(ctx, query,
		edge.SourceID, edge.SourceType, edge.Label, edge.TargetID, edge.TargetType, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to create edge: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// lockBoundedEndpoints takes FOR UPDATE locks on the node rows whose edge
// counts are bounded. Lock order is sorted by ID so two transactions locking
// the same pair cannot deadlock.
func lockBoundedEndpoints(ctx context.Context, tx *sql.Tx, edge *entities.Edge, constraint *repositories.EdgeConstraint) error {
	var ids []string
	if constraint.SourceMax > 0 {
		ids = append(ids, edge.SourceID)
	}
	if constraint.TargetMax > 0 {
		ids = append(ids, edge.TargetID)
	}
	sort.Strings(ids)

	for _, id := range ids {
		var locked string
		err := tx.QueryRowContext(ctx, `SELECT id FROM nodes WHERE id = $1 FOR UPDATE`, id).Scan(&locked)
		if err == sql.ErrNoRows {
			return repositories.ErrNodeNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to lock node %s: %w", id, err)
		}
	}
	return nil
}

func countEdges(ctx context.Context, tx *sql.Tx, query string, args ...any) (int, error) {
	var count int
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count edges: %w", err)
	}
	return count, nil
}

// Delete removes an edge and reports whether a row was actually deleted
func (r *PostgresEdgeRepository) Delete(ctx context.Context, edge *entities.Edge) (bool, error) {
	if err := edge.Validate(); err != nil {
		return false, fmt.Errorf("invalid edge: %w", err)
	}

	query := `
		DELETE FROM edges
		WHERE source_id = $1 AND label = $2 AND target_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, edge.SourceID, edge.Label, edge.TargetID)
	if err != nil {
		return false, fmt.Errorf("failed to delete edge: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return affected > 0, nil
}

// Query retrieves edges matching the filter
func (r *PostgresEdgeRepository) Query(ctx context.Context, filter *repositories.EdgeFilter) ([]*entities.Edge, error) {
	query := `
		SELECT source_id, source_type, label, target_id, target_type, created_at
		FROM edges
		WHERE 1 = 1
	`
	var args []any
	argIdx := 1

	// Build dynamic WHERE clause based on filter
	if filter != nil {
		if filter.SourceID != "" {
			query += fmt.Sprintf(" AND source_id = $%d", argIdx)
			args = append(args, filter.SourceID)
			argIdx++
		}
		if filter.SourceType != "" {
			query += fmt.Sprintf(" AND source_type = $%d", argIdx)
			args = append(args, filter.SourceType)
			argIdx++
		}
		if filter.Label != "" {
			query += fmt.Sprintf(" AND label = $%d", argIdx)
			args = append(args, filter.Label)
			argIdx++
		}
		if filter.TargetID != "" {
			query += fmt.Sprintf(" AND target_id = $%d", argIdx)
			args = append(args, filter.TargetID)
			argIdx++
		}
		if filter.TargetType != "" {
			query += fmt.Sprintf(" AND target_type = $%d", argIdx)
			args = append(args, filter.TargetType)
			argIdx++
		}
	}

	query += " ORDER BY created_at"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query edges: %w", err)
	}
	defer rows.Close()

	var edges []*entities.Edge
	for rows.Next() {
		var edge entities.Edge
		err := rows.Scan(
			&edge.SourceID, &edge.SourceType, &edge.Label,
			&edge.TargetID, &edge.TargetType, &edge.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan edge: %w", err)
		}
		edges = append(edges, &edge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating edges: %w", err)
	}

	return edges, nil
}

// DeleteByNode removes all edges touching the given node
func (r *PostgresEdgeRepository) DeleteByNode(ctx context.Context, nodeID string) error {
	query := `DELETE FROM edges WHERE source_id = $1 OR target_id = $1`
	_, err := r.db.ExecContext(ctx, query, nodeID)
	if err != nil {
		return fmt.Errorf("failed to delete edges by node: %w", err)
	}
	return nil
}
