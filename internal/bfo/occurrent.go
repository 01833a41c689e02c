package bfo

import "github.com/ontoforge/bfograph/internal/entities"

// occurrentTypes declares the Occurrent branch: entities that happen or
// unfold in time.
func occurrentTypes() []*entities.EntityType {
	return []*entities.EntityType{
		{
			Name:     Occurrent,
			Parent:   Entity,
			Abstract: true,
			Properties: []*entities.PropertySpec{
				{Name: "start_time", Type: entities.TypeDateTime},
				{Name: "end_time", Type: entities.TypeDateTime},
			},
			Relationships: []*entities.RelationshipSpec{
				{Name: "occurs_in", Label: LabelOccursIn, Direction: entities.Outgoing, Target: TemporalRegion, Cardinality: entities.ZeroOrMore},
				{Name: "part_of", Label: LabelPartOf, Direction: entities.Outgoing, Target: Occurrent, Cardinality: entities.ZeroOrMore},
				{Name: "has_part", Label: LabelPartOf, Direction: entities.Incoming, Target: Occurrent, Cardinality: entities.ZeroOrMore},
			},
		},
		{
			Name:     Process,
			Parent:   Occurrent,
			Abstract: true,
			Relationships: []*entities.RelationshipSpec{
				{Name: "has_participant", Label: LabelParticipatesIn, Direction: entities.Incoming, Target: IndependentContinuant, Cardinality: entities.ZeroOrMore},
				{Name: "realizes", Label: LabelRealizes, Direction: entities.Outgoing, Target: RealizableEntity, Cardinality: entities.ZeroOrMore},
				{Name: "has_process_boundary", Label: LabelHasProcessBoundary, Direction: entities.Outgoing, Target: ProcessBoundary, Cardinality: entities.ZeroOrMore},
				{Name: "precedes", Label: LabelPrecedes, Direction: entities.Outgoing, Target: Process, Cardinality: entities.ZeroOrMore},
				{Name: "preceded_by", Label: LabelPrecedes, Direction: entities.Incoming, Target: Process, Cardinality: entities.ZeroOrMore},
			},
		},
		{Name: History, Parent: Process},
		{Name: ProcessProfile, Parent: Process},
		{Name: ProcessBoundary, Parent: Occurrent},
		{
			Name:     TemporalRegion,
			Parent:   Occurrent,
			Abstract: true,
			Properties: []*entities.PropertySpec{
				{Name: "temporal_start", Type: entities.TypeDateTime},
				{Name: "temporal_end", Type: entities.TypeDateTime},
			},
			Relationships: []*entities.RelationshipSpec{
				{Name: "temporally_contains", Label: LabelTemporallyContains, Direction: entities.Outgoing, Target: TemporalRegion, Cardinality: entities.ZeroOrMore},
				{Name: "temporally_contained_in", Label: LabelTemporallyContains, Direction: entities.Incoming, Target: TemporalRegion, Cardinality: entities.ZeroOrMore},
			},
		},
		{Name: ZeroDimensionalTemporalRegion, Parent: TemporalRegion},
		{Name: OneDimensionalTemporalRegion, Parent: TemporalRegion},
		{
			Name:   SpatioTemporalRegion,
			Parent: Occurrent,
			Properties: []*entities.PropertySpec{
				{Name: "spatial_extent", Type: entities.TypeJSON},
				{Name: "temporal_extent", Type: entities.TypeString},
			},
		},
	}
}
