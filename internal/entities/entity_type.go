package entities

// EntityType represents one type in the ontology taxonomy
// Example: "Quality(SpecificallyDependentContinuant), abstract, properties value/unit"
//
// Properties and Relationships hold only the declarations made directly on
// this type. EffectiveProperties and EffectiveRelationships are the flat
// schema after inheritance is resolved; they are populated by the registry's
// resolution pass and are empty before it runs.
type EntityType struct {
	Name     string // Type name (e.g., "Object", "Process")
	Parent   string // Parent type name; empty only for the root
	Abstract bool   // Abstract types cannot be instantiated directly

	Properties    []*PropertySpec     // Declared properties
	Relationships []*RelationshipSpec // Declared relationships

	EffectiveProperties    []*PropertySpec     // Declared + inherited, resolved
	EffectiveRelationships []*RelationshipSpec // Declared + inherited, resolved
}

// GetProperty returns the declared property spec by name
func (t *EntityType) GetProperty(name string) *PropertySpec {
	for _, p := range t.Properties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// GetRelationship returns the declared relationship spec by name
func (t *EntityType) GetRelationship(name string) *RelationshipSpec {
	for _, r := range t.Relationships {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// EffectiveProperty returns the resolved property spec by name, including
// inherited properties
func (t *EntityType) EffectiveProperty(name string) *PropertySpec {
	for _, p := range t.EffectiveProperties {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// EffectiveRelationship returns the resolved relationship spec by name,
// including inherited relationships
func (t *EntityType) EffectiveRelationship(name string) *RelationshipSpec {
	for _, r := range t.EffectiveRelationships {
		if r.Name == name {
			return r
		}
	}
	return nil
}
