package biology

import (
	"context"
	"errors"
	"testing"

	"github.com/ontoforge/bfograph/internal/bfo"
	"github.com/ontoforge/bfograph/internal/entities"
	"github.com/ontoforge/bfograph/internal/repositories"
	"github.com/ontoforge/bfograph/internal/repositories/memory"
	"github.com/ontoforge/bfograph/internal/services"
	"github.com/ontoforge/bfograph/internal/services/registry"
)

func newRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	r := registry.New()
	if err := bfo.Register(r); err != nil {
		t.Fatalf("bfo.Register() error = %v", err)
	}
	if err := Register(r); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Resolve(); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	return r
}

func newGraph(t *testing.T) *services.GraphService {
	t.Helper()
	store := memory.NewStore()
	return services.NewGraphService(newRegistry(t), store.Nodes(), store.Edges(), nil)
}

func TestBiology_Hierarchy(t *testing.T) {
	r := newRegistry(t)

	tests := []struct {
		typeName string
		ancestor string
	}{
		{Organism, bfo.Object},
		{Organism, bfo.MaterialEntity},
		{Organism, bfo.IndependentContinuant},
		{AnatomicalStructure, bfo.FiatObjectPart},
		{Cell, bfo.Object},
		{BodyTemperature, bfo.Quality},
		{BodyMass, bfo.SpecificallyDependentContinuant},
		{HeartPumpingFunction, BiologicalFunction},
		{HeartPumpingFunction, bfo.Function},
		{HeartPumpingFunction, bfo.Disposition},
		{HeartPumpingFunction, bfo.RealizableEntity},
		{CellDivision, BiologicalProcess},
		{Growth, bfo.Process},
		{Predator, bfo.Role},
		{Prey, bfo.RealizableEntity},
	}

	for _, tt := range tests {
		if !r.IsAssignable(tt.typeName, tt.ancestor) {
			t.Errorf("IsAssignable(%s, %s) = false, want true", tt.typeName, tt.ancestor)
		}
	}
}

func TestBiology_EffectiveSchema(t *testing.T) {
	r := newRegistry(t)

	organism := r.Type(Organism)
	if spec := organism.EffectiveProperty("species"); spec == nil || !spec.Required {
		t.Error("Organism.species should be required")
	}
	if spec := organism.EffectiveProperty("mass_kg"); spec == nil || spec.Type != entities.TypeFloat {
		t.Error("Organism should inherit mass_kg from MaterialEntity")
	}
	if organism.EffectiveRelationship("offspring_of") == nil {
		t.Error("Organism should declare offspring_of")
	}
	if organism.EffectiveRelationship("part_of") == nil {
		t.Error("Organism should inherit part_of")
	}
	if organism.EffectiveRelationship("bearer_of") == nil {
		t.Error("Organism should inherit bearer_of")
	}

	fn := r.Type(HeartPumpingFunction)
	inheres := fn.EffectiveRelationship("inheres_in")
	if inheres == nil {
		t.Fatal("HeartPumpingFunction should inherit inheres_in")
	}
	if inheres.Cardinality != entities.ExactlyOne {
		t.Errorf("inheres_in cardinality = %v, want exactly_one", inheres.Cardinality)
	}
	if fn.EffectiveRelationship("realized_by") == nil {
		t.Error("HeartPumpingFunction should inherit realized_by")
	}
	if fn.EffectiveProperty("function_category") == nil {
		t.Error("HeartPumpingFunction should inherit function_category")
	}
}

func TestBiology_AbstractParentsRejected(t *testing.T) {
	graph := newGraph(t)
	ctx := context.Background()

	if _, err := graph.CreateNode(ctx, bfo.Quality, map[string]any{"value": "37.0"}); err == nil {
		t.Error("CreateNode(Quality) should fail for abstract type")
	}

	// The concrete subclass instantiates fine.
	if _, err := graph.CreateNode(ctx, BodyTemperature, map[string]any{"value": "37.0", "unit": "celsius"}); err != nil {
		t.Errorf("CreateNode(BodyTemperature) error = %v", err)
	}
}

func TestBiology_Scenario(t *testing.T) {
	graph := newGraph(t)
	ctx := context.Background()

	mouse, err := graph.CreateNode(ctx, Organism, map[string]any{
		"name":    "Mickey",
		"species": "Mus musculus",
		"mass_kg": 0.02,
	})
	if err != nil {
		t.Fatalf("CreateNode(Organism) error = %v", err)
	}

	heart, err := graph.CreateNode(ctx, AnatomicalStructure, map[string]any{
		"name":            "heart",
		"anatomical_type": "organ",
	})
	if err != nil {
		t.Fatalf("CreateNode(AnatomicalStructure) error = %v", err)
	}

	pumping, err := graph.CreateNode(ctx, HeartPumpingFunction, map[string]any{
		"name":              "pumping blood",
		"function_category": "circulation",
	})
	if err != nil {
		t.Fatalf("CreateNode(HeartPumpingFunction) error = %v", err)
	}

	beating, err := graph.CreateNode(ctx, BiologicalProcess, map[string]any{
		"name":         "heart beating",
		"process_type": "physiological",
	})
	if err != nil {
		t.Fatalf("CreateNode(BiologicalProcess) error = %v", err)
	}

	if err := graph.Link(ctx, heart.ID, "part_of", mouse.ID); err != nil {
		t.Fatalf("Link(part_of) error = %v", err)
	}
	if err := graph.Link(ctx, pumping.ID, "inheres_in", heart.ID); err != nil {
		t.Fatalf("Link(inheres_in) error = %v", err)
	}
	if err := graph.Link(ctx, beating.ID, "realizes", pumping.ID); err != nil {
		t.Fatalf("Link(realizes) error = %v", err)
	}
	if err := graph.Link(ctx, mouse.ID, "participates_in", beating.ID); err != nil {
		t.Fatalf("Link(participates_in) error = %v", err)
	}

	// Mereology reads back through the inverse name.
	parts, err := graph.Related(ctx, mouse.ID, "has_part")
	if err != nil {
		t.Fatalf("Related(has_part) error = %v", err)
	}
	if len(parts) != 1 || parts[0].ID != heart.ID {
		t.Errorf("has_part = %v, want [heart]", parts)
	}

	// Inherence: the heart bears the function, the function inheres in the heart.
	borne, err := graph.Related(ctx, heart.ID, "bearer_of")
	if err != nil {
		t.Fatalf("Related(bearer_of) error = %v", err)
	}
	if len(borne) != 1 || borne[0].ID != pumping.ID {
		t.Errorf("bearer_of = %v, want [pumping]", borne)
	}

	// Realization in both directions.
	realized, err := graph.Related(ctx, pumping.ID, "realized_by")
	if err != nil {
		t.Fatalf("Related(realized_by) error = %v", err)
	}
	if len(realized) != 1 || realized[0].ID != beating.ID {
		t.Errorf("realized_by = %v, want [beating]", realized)
	}

	participants, err := graph.Related(ctx, beating.ID, "has_participant")
	if err != nil {
		t.Fatalf("Related(has_participant) error = %v", err)
	}
	if len(participants) != 1 || participants[0].ID != mouse.ID {
		t.Errorf("has_participant = %v, want [mouse]", participants)
	}

	// inheres_in is exactly_one: the pumping function cannot gain a second bearer.
	liver, err := graph.CreateNode(ctx, AnatomicalStructure, map[string]any{"name": "liver"})
	if err != nil {
		t.Fatalf("CreateNode(liver) error = %v", err)
	}
	if err := graph.Link(ctx, pumping.ID, "inheres_in", liver.ID); !errors.Is(err, repositories.ErrCardinalityViolated) {
		t.Errorf("second bearer error = %v, want ErrCardinalityViolated", err)
	}
}

func TestBiology_Offspring(t *testing.T) {
	graph := newGraph(t)
	ctx := context.Background()

	parent, err := graph.CreateNode(ctx, Organism, map[string]any{"species": "Mus musculus"})
	if err != nil {
		t.Fatalf("CreateNode() error = %v", err)
	}
	var children []string
	for i := 0; i < 3; i++ {
		child, err := graph.CreateNode(ctx, Organism, map[string]any{"species": "Mus musculus", "age_years": 0})
		if err != nil {
			t.Fatalf("CreateNode() error = %v", err)
		}
		if err := graph.Link(ctx, child.ID, "offspring_of", parent.ID); err != nil {
			t.Fatalf("Link(offspring_of) error = %v", err)
		}
		children = append(children, child.ID)
	}

	offspring, err := graph.Related(ctx, parent.ID, "has_offspring")
	if err != nil {
		t.Fatalf("Related(has_offspring) error = %v", err)
	}
	if len(offspring) != len(children) {
		t.Errorf("has_offspring = %d nodes, want %d", len(offspring), len(children))
	}

	// Cells are not organisms; the relationship is absent from their schema.
	neuron, err := graph.CreateNode(ctx, Cell, map[string]any{"cell_type": "neuron"})
	if err != nil {
		t.Fatalf("CreateNode(Cell) error = %v", err)
	}
	if err := graph.Link(ctx, neuron.ID, "offspring_of", parent.ID); err == nil {
		t.Error("Link(offspring_of) from a Cell should fail")
	}

	// An organism cannot be the offspring of a cell either.
	var typeErr *entities.RelationshipTypeError
	err = graph.Link(ctx, children[0], "offspring_of", neuron.ID)
	if !errors.As(err, &typeErr) {
		t.Errorf("Link(offspring_of, Cell) error = %v, want RelationshipTypeError", err)
	}
}
