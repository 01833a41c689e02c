package entities

import "fmt"

// SchemaDefinitionError reports an invalid type declaration: a duplicate or
// incompatible property/relationship name within an inheritance chain, a
// missing parent, or a malformed spec.
type SchemaDefinitionError struct {
	TypeName string // Type being defined
	Element  string // Offending property/relationship name (may be empty)
	Reason   string
}

func (e *SchemaDefinitionError) Error() string {
	if e.Element != "" {
		return fmt.Sprintf("schema definition error: type %s, element %s: %s", e.TypeName, e.Element, e.Reason)
	}
	return fmt.Sprintf("schema definition error: type %s: %s", e.TypeName, e.Reason)
}

// AbstractInstantiationError reports an attempt to create an instance of an
// abstract type.
type AbstractInstantiationError struct {
	TypeName string
}

func (e *AbstractInstantiationError) Error() string {
	return fmt.Sprintf("cannot instantiate abstract type: %s", e.TypeName)
}

// RelationshipTypeError reports an attempt to link via a relationship to a
// target outside its declared accepted type or descendants.
type RelationshipTypeError struct {
	SourceType   string // Type of the instance being linked from
	Relationship string // Relationship name
	TargetType   string // Actual type of the offered target
	WantTarget   string // Declared accepted type
}

func (e *RelationshipTypeError) Error() string {
	return fmt.Sprintf("relationship %s on %s accepts %s or descendants, got %s",
		e.Relationship, e.SourceType, e.WantTarget, e.TargetType)
}
