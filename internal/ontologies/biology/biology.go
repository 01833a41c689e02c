// Package biology extends the core taxonomy with biological types:
// organisms and their parts, physiological qualities and functions, and
// biological processes.
package biology

import (
	"github.com/ontoforge/bfograph/internal/bfo"
	"github.com/ontoforge/bfograph/internal/entities"
	"github.com/ontoforge/bfograph/internal/services/registry"
)

// Type names.
const (
	Organism             = "Organism"
	AnatomicalStructure  = "AnatomicalStructure"
	Cell                 = "Cell"
	BodyTemperature      = "BodyTemperature"
	BodyMass             = "BodyMass"
	BiologicalFunction   = "BiologicalFunction"
	HeartPumpingFunction = "HeartPumpingFunction"
	BiologicalProcess    = "BiologicalProcess"
	CellDivision         = "CellDivision"
	Growth               = "Growth"
	Predator             = "Predator"
	Prey                 = "Prey"
)

// LabelOffspringOf is the edge label shared by offspring_of and has_offspring.
const LabelOffspringOf = "OFFSPRING_OF"

// Types returns fresh declarations of the biology extension types
func Types() []*entities.EntityType {
	return []*entities.EntityType{
		{
			Name:   Organism,
			Parent: bfo.Object,
			Properties: []*entities.PropertySpec{
				{Name: "species", Type: entities.TypeString, Required: true},
				{Name: "age_years", Type: entities.TypeInt},
			},
			Relationships: []*entities.RelationshipSpec{
				{Name: "offspring_of", Label: LabelOffspringOf, Direction: entities.Outgoing, Target: Organism, Cardinality: entities.ZeroOrMore},
				{Name: "has_offspring", Label: LabelOffspringOf, Direction: entities.Incoming, Target: Organism, Cardinality: entities.ZeroOrMore},
			},
		},
		{
			Name:   AnatomicalStructure,
			Parent: bfo.FiatObjectPart,
			Properties: []*entities.PropertySpec{
				{Name: "anatomical_type", Type: entities.TypeString},
			},
		},
		{
			Name:   Cell,
			Parent: bfo.Object,
			Properties: []*entities.PropertySpec{
				{Name: "cell_type", Type: entities.TypeString},
			},
		},
		{Name: BodyTemperature, Parent: bfo.Quality},
		{Name: BodyMass, Parent: bfo.Quality},
		{
			Name:   BiologicalFunction,
			Parent: bfo.Function,
			Properties: []*entities.PropertySpec{
				{Name: "function_category", Type: entities.TypeString},
			},
		},
		{Name: HeartPumpingFunction, Parent: BiologicalFunction},
		{
			Name:   BiologicalProcess,
			Parent: bfo.Process,
			Properties: []*entities.PropertySpec{
				{Name: "process_type", Type: entities.TypeString},
			},
		},
		{
			Name:   CellDivision,
			Parent: BiologicalProcess,
			Properties: []*entities.PropertySpec{
				{Name: "division_type", Type: entities.TypeString},
			},
		},
		{
			Name:   Growth,
			Parent: BiologicalProcess,
			Properties: []*entities.PropertySpec{
				{Name: "growth_rate_mm_per_day", Type: entities.TypeFloat},
			},
		},
		{Name: Predator, Parent: bfo.Role},
		{Name: Prey, Parent: bfo.Role},
	}
}

// Register defines the biology types in the given registry. The core
// taxonomy must be registered first.
func Register(r *registry.Registry) error {
	return r.DefineAll(Types())
}
