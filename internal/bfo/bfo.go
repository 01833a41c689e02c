// Package bfo declares the Basic Formal Ontology 2.0 class taxonomy as a set
// of entity type definitions. The taxonomy is a single tree rooted at Entity,
// split at the top into Continuant (entities that persist through time) and
// Occurrent (entities that happen or unfold in time).
//
// Register loads the taxonomy into a registry; domain ontologies add their
// own types under these before the registry is resolved.
package bfo

import (
	"time"

	"github.com/google/uuid"

	"github.com/ontoforge/bfograph/internal/entities"
	"github.com/ontoforge/bfograph/internal/services/registry"
)

// Type names.
const (
	Entity = "Entity"

	Continuant                            = "Continuant"
	IndependentContinuant                 = "IndependentContinuant"
	MaterialEntity                        = "MaterialEntity"
	Object                                = "Object"
	FiatObjectPart                        = "FiatObjectPart"
	ObjectAggregate                       = "ObjectAggregate"
	ImmaterialEntity                      = "ImmaterialEntity"
	Site                                  = "Site"
	ContinuantFiatBoundary                = "ContinuantFiatBoundary"
	ZeroDimensionalContinuantFiatBoundary = "ZeroDimensionalContinuantFiatBoundary"
	OneDimensionalContinuantFiatBoundary  = "OneDimensionalContinuantFiatBoundary"
	TwoDimensionalContinuantFiatBoundary  = "TwoDimensionalContinuantFiatBoundary"
	SpatialRegion                         = "SpatialRegion"
	ZeroDimensionalSpatialRegion          = "ZeroDimensionalSpatialRegion"
	OneDimensionalSpatialRegion           = "OneDimensionalSpatialRegion"
	TwoDimensionalSpatialRegion           = "TwoDimensionalSpatialRegion"
	ThreeDimensionalSpatialRegion         = "ThreeDimensionalSpatialRegion"
	GenericallyDependentContinuant        = "GenericallyDependentContinuant"
	SpecificallyDependentContinuant       = "SpecificallyDependentContinuant"
	Quality                               = "Quality"
	RelationalQuality                     = "RelationalQuality"
	RealizableEntity                      = "RealizableEntity"
	Role                                  = "Role"
	Disposition                           = "Disposition"
	Function                              = "Function"

	Occurrent                     = "Occurrent"
	Process                       = "Process"
	History                       = "History"
	ProcessProfile                = "ProcessProfile"
	ProcessBoundary               = "ProcessBoundary"
	TemporalRegion                = "TemporalRegion"
	ZeroDimensionalTemporalRegion = "ZeroDimensionalTemporalRegion"
	OneDimensionalTemporalRegion  = "OneDimensionalTemporalRegion"
	SpatioTemporalRegion          = "SpatioTemporalRegion"
)

// Edge labels. Inverse relationship names (part_of / has_part) share one
// label and therefore one stored edge.
const (
	LabelExistsAt              = "EXISTS_AT"
	LabelPartOf                = "PART_OF"
	LabelLocatedIn             = "LOCATED_IN"
	LabelOccupiesSpatialRegion = "OCCUPIES_SPATIAL_REGION"
	LabelInheresIn             = "INHERES_IN"
	LabelParticipatesIn        = "PARTICIPATES_IN"
	LabelSpatiallyContains     = "SPATIALLY_CONTAINS"
	LabelRealizes              = "REALIZES"
	LabelOccursIn              = "OCCURS_IN"
	LabelHasProcessBoundary    = "HAS_PROCESS_BOUNDARY"
	LabelPrecedes              = "PRECEDES"
	LabelTemporallyContains    = "TEMPORALLY_CONTAINS"
)

// Types returns fresh declarations of every BFO class, in taxonomy order
func Types() []*entities.EntityType {
	types := []*entities.EntityType{root()}
	types = append(types, continuantTypes()...)
	types = append(types, occurrentTypes()...)
	return types
}

// Register defines the BFO taxonomy in the given registry. The registry is
// not resolved here; callers resolve after adding any domain types.
func Register(r *registry.Registry) error {
	return r.DefineAll(Types())
}

// New returns a resolved registry containing only the BFO taxonomy
func New() (*registry.Registry, error) {
	r := registry.New()
	if err := Register(r); err != nil {
		return nil, err
	}
	if err := r.Resolve(); err != nil {
		return nil, err
	}
	return r, nil
}

// root declares Entity, the single root of the taxonomy. Every class
// inherits its identity and audit properties.
func root() *entities.EntityType {
	return &entities.EntityType{
		Name:     Entity,
		Abstract: true,
		Properties: []*entities.PropertySpec{
			{Name: "uid", Type: entities.TypeString, DefaultFunc: func() any { return uuid.NewString() }},
			{Name: "name", Type: entities.TypeString},
			{Name: "description", Type: entities.TypeString},
			{Name: "created_at", Type: entities.TypeDateTime, DefaultFunc: func() any { return time.Now() }},
			{Name: "modified_at", Type: entities.TypeDateTime, DefaultFunc: func() any { return time.Now() }},
		},
	}
}
