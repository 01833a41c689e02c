package entities

import (
	"fmt"
	"time"
)

// Edge represents an actual relationship between two nodes
// Example: heart:1#PART_OF@mouse:2
// This means: node "heart:1" is connected by a PART_OF edge to node "mouse:2".
// Inverse relationship pairs (part_of / has_part) share a single edge; the
// incoming side is read by filtering on the target end.
type Edge struct {
	SourceID   string // Source node ID
	SourceType string // Source entity type
	Label      string // Edge label (e.g., "PART_OF", "INHERES_IN")
	TargetID   string // Target node ID
	TargetType string // Target entity type
	CreatedAt  time.Time
}

// String returns a string representation of the edge
// Format: source_type:source_id#label@target_type:target_id
func (e *Edge) String() string {
	return fmt.Sprintf("%s:%s#%s@%s:%s",
		e.SourceType, e.SourceID, e.Label, e.TargetType, e.TargetID)
}

// Validate checks if the edge is valid
func (e *Edge) Validate() error {
	if e.SourceID == "" {
		return fmt.Errorf("source ID is required")
	}
	if e.SourceType == "" {
		return fmt.Errorf("source type is required")
	}
	if e.Label == "" {
		return fmt.Errorf("label is required")
	}
	if e.TargetID == "" {
		return fmt.Errorf("target ID is required")
	}
	if e.TargetType == "" {
		return fmt.Errorf("target type is required")
	}
	return nil
}
