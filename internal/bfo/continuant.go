package bfo

import "github.com/ontoforge/bfograph/internal/entities"

// continuantTypes declares the Continuant branch: entities that persist
// through time while maintaining their identity.
func continuantTypes() []*entities.EntityType {
	return []*entities.EntityType{
		{
			Name:     Continuant,
			Parent:   Entity,
			Abstract: true,
			Relationships: []*entities.RelationshipSpec{
				{Name: "exists_at", Label: LabelExistsAt, Direction: entities.Outgoing, Target: TemporalRegion, Cardinality: entities.ZeroOrMore},
				{Name: "part_of", Label: LabelPartOf, Direction: entities.Outgoing, Target: Continuant, Cardinality: entities.ZeroOrMore},
				{Name: "has_part", Label: LabelPartOf, Direction: entities.Incoming, Target: Continuant, Cardinality: entities.ZeroOrMore},
				{Name: "located_in", Label: LabelLocatedIn, Direction: entities.Outgoing, Target: Continuant, Cardinality: entities.ZeroOrMore},
				{Name: "occupies_spatial_region", Label: LabelOccupiesSpatialRegion, Direction: entities.Outgoing, Target: SpatialRegion, Cardinality: entities.ZeroOrMore},
			},
		},
		{
			Name:     IndependentContinuant,
			Parent:   Continuant,
			Abstract: true,
			Relationships: []*entities.RelationshipSpec{
				{Name: "bearer_of", Label: LabelInheresIn, Direction: entities.Incoming, Target: SpecificallyDependentContinuant, Cardinality: entities.ZeroOrMore},
				{Name: "participates_in", Label: LabelParticipatesIn, Direction: entities.Outgoing, Target: Process, Cardinality: entities.ZeroOrMore},
			},
		},
		{
			Name:     MaterialEntity,
			Parent:   IndependentContinuant,
			Abstract: true,
			Properties: []*entities.PropertySpec{
				{Name: "mass_kg", Type: entities.TypeFloat},
			},
		},
		{Name: Object, Parent: MaterialEntity},
		{Name: FiatObjectPart, Parent: MaterialEntity},
		{Name: ObjectAggregate, Parent: MaterialEntity},
		{
			Name:     ImmaterialEntity,
			Parent:   IndependentContinuant,
			Abstract: true,
		},
		{Name: Site, Parent: ImmaterialEntity},
		{
			Name:     ContinuantFiatBoundary,
			Parent:   ImmaterialEntity,
			Abstract: true,
		},
		{Name: ZeroDimensionalContinuantFiatBoundary, Parent: ContinuantFiatBoundary},
		{Name: OneDimensionalContinuantFiatBoundary, Parent: ContinuantFiatBoundary},
		{Name: TwoDimensionalContinuantFiatBoundary, Parent: ContinuantFiatBoundary},
		{
			Name:     SpatialRegion,
			Parent:   ImmaterialEntity,
			Abstract: true,
			Properties: []*entities.PropertySpec{
				{Name: "coordinates", Type: entities.TypeJSON},
				{Name: "coordinate_system", Type: entities.TypeString},
			},
			Relationships: []*entities.RelationshipSpec{
				{Name: "spatially_contains", Label: LabelSpatiallyContains, Direction: entities.Outgoing, Target: SpatialRegion, Cardinality: entities.ZeroOrMore},
				{Name: "spatially_contained_in", Label: LabelSpatiallyContains, Direction: entities.Incoming, Target: SpatialRegion, Cardinality: entities.ZeroOrMore},
			},
		},
		{Name: ZeroDimensionalSpatialRegion, Parent: SpatialRegion},
		{Name: OneDimensionalSpatialRegion, Parent: SpatialRegion},
		{Name: TwoDimensionalSpatialRegion, Parent: SpatialRegion},
		{Name: ThreeDimensionalSpatialRegion, Parent: SpatialRegion},
		{Name: GenericallyDependentContinuant, Parent: Continuant},
		{
			Name:     SpecificallyDependentContinuant,
			Parent:   Continuant,
			Abstract: true,
			Relationships: []*entities.RelationshipSpec{
				// A dependent entity inheres in exactly one bearer.
				{Name: "inheres_in", Label: LabelInheresIn, Direction: entities.Outgoing, Target: IndependentContinuant, Cardinality: entities.ExactlyOne},
			},
		},
		{
			Name:     Quality,
			Parent:   SpecificallyDependentContinuant,
			Abstract: true,
			Properties: []*entities.PropertySpec{
				{Name: "value", Type: entities.TypeString},
				{Name: "unit", Type: entities.TypeString},
			},
		},
		{Name: RelationalQuality, Parent: Quality},
		{
			Name:     RealizableEntity,
			Parent:   SpecificallyDependentContinuant,
			Abstract: true,
			Relationships: []*entities.RelationshipSpec{
				{Name: "realized_by", Label: LabelRealizes, Direction: entities.Incoming, Target: Process, Cardinality: entities.ZeroOrMore},
			},
		},
		{Name: Role, Parent: RealizableEntity},
		{Name: Disposition, Parent: RealizableEntity},
		{Name: Function, Parent: Disposition},
	}
}
