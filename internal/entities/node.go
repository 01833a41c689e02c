package entities

import (
	"fmt"
	"time"
)

// Node represents a persisted instance of an entity type
// Example: Organism:550e8400-... with properties {species: "Mus musculus"}
type Node struct {
	ID         string         // Unique node handle (UUID)
	Type       string         // Entity type name (e.g., "Organism")
	Properties map[string]any // Property values keyed by property name
	CreatedAt  time.Time
}

// String returns a string representation of the node
// Format: type:id
func (n *Node) String() string {
	return fmt.Sprintf("%s:%s", n.Type, n.ID)
}

// Validate checks if the node is valid
func (n *Node) Validate() error {
	if n.ID == "" {
		return fmt.Errorf("node ID is required")
	}
	if n.Type == "" {
		return fmt.Errorf("node type is required")
	}
	return nil
}

// Property returns the named property value, or nil if unset
func (n *Node) Property(name string) any {
	if n.Properties == nil {
		return nil
	}
	return n.Properties[name]
}
