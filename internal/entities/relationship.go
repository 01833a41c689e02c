package entities

import "fmt"

// Direction indicates which end of a stored edge a relationship reads
type Direction int

const (
	// Outgoing relationships traverse edges from the declaring instance.
	Outgoing Direction = iota
	// Incoming relationships traverse edges pointing at the declaring
	// instance. Declaring an incoming relationship with the same label as
	// an outgoing one on the target type forms an inverse pair sharing a
	// single stored edge (part_of / has_part).
	Incoming
)

// String returns the schema-facing name of the direction
func (d Direction) String() string {
	if d == Incoming {
		return "incoming"
	}
	return "outgoing"
}

// RelationshipSpec represents a relationship declaration on an entity type
// Example: "part_of -> Continuant via PART_OF, zero_or_more"
type RelationshipSpec struct {
	Name        string      // Relationship name (e.g., "part_of", "inheres_in")
	Label       string      // Edge label shared by inverse pairs (e.g., "PART_OF")
	Direction   Direction   // Which end of the edge this name reads
	Target      string      // Accepted target entity type (or any descendant)
	Cardinality Cardinality // Edge-count constraint on the declaring instance
}

// String returns a string representation of the relationship spec
// Format: name -[label]-> target (direction, cardinality)
func (r *RelationshipSpec) String() string {
	return fmt.Sprintf("%s -[%s]-> %s (%s, %s)",
		r.Name, r.Label, r.Target, r.Direction, r.Cardinality)
}

// Validate checks if the relationship spec is valid
func (r *RelationshipSpec) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("relationship name is required")
	}
	if r.Label == "" {
		return fmt.Errorf("relationship %s: label is required", r.Name)
	}
	if r.Target == "" {
		return fmt.Errorf("relationship %s: target type is required", r.Name)
	}
	return nil
}
