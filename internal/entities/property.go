package entities

import (
	"fmt"
	"time"
)

// PropertyType identifies the scalar type of a property value
type PropertyType string

const (
	TypeString   PropertyType = "string"
	TypeInt      PropertyType = "int"
	TypeFloat    PropertyType = "float"
	TypeDateTime PropertyType = "datetime"
	TypeJSON     PropertyType = "json"
)

// ValidPropertyType reports whether t is one of the supported scalar types
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case TypeString, TypeInt, TypeFloat, TypeDateTime, TypeJSON:
		return true
	}
	return false
}

// PropertySpec represents a property declaration on an entity type
// Example: "species: string, required" or "mass_kg: float"
type PropertySpec struct {
	Name     string       // Property name (e.g., "species", "mass_kg")
	Type     PropertyType // Scalar type
	Required bool         // Whether a value must be supplied at instantiation
	Default  any          // Static default value (optional)
	// DefaultFunc produces a default at instantiation time, for values
	// that cannot be static (generated IDs, timestamps).
	DefaultFunc func() any
}

// Validate checks if the property spec is valid
func (p *PropertySpec) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("property name is required")
	}
	if !ValidPropertyType(p.Type) {
		return fmt.Errorf("property %s: invalid type: %s", p.Name, p.Type)
	}
	if p.Default != nil && p.DefaultFunc != nil {
		return fmt.Errorf("property %s: both default value and default func set", p.Name)
	}
	return nil
}

// CheckValue verifies that v is acceptable for the property's declared type
func (p *PropertySpec) CheckValue(v any) error {
	switch p.Type {
	case TypeString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("property %s: expected string, got %T", p.Name, v)
		}
	case TypeInt:
		switch v.(type) {
		case int, int32, int64:
		default:
			return fmt.Errorf("property %s: expected int, got %T", p.Name, v)
		}
	case TypeFloat:
		switch v.(type) {
		case float32, float64, int:
		default:
			return fmt.Errorf("property %s: expected float, got %T", p.Name, v)
		}
	case TypeDateTime:
		switch t := v.(type) {
		case time.Time:
		case string:
			if _, err := time.Parse(time.RFC3339, t); err != nil {
				return fmt.Errorf("property %s: expected RFC3339 datetime: %w", p.Name, err)
			}
		default:
			return fmt.Errorf("property %s: expected datetime, got %T", p.Name, v)
		}
	case TypeJSON:
		// Any JSON-serializable value is accepted; serialization errors
		// surface at persistence time.
	}
	return nil
}
