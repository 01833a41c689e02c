// Package social extends the core taxonomy with social ontology types:
// persons, organizations, social roles, social processes and information
// artifacts.
package social

import (
	"github.com/ontoforge/bfograph/internal/bfo"
	"github.com/ontoforge/bfograph/internal/entities"
	"github.com/ontoforge/bfograph/internal/services/registry"
)

// Type names.
const (
	Person                   = "Person"
	Organization             = "Organization"
	SocialRole               = "SocialRole"
	EmployeeRole             = "EmployeeRole"
	StudentRole              = "StudentRole"
	ParentRole               = "ParentRole"
	TeacherRole              = "TeacherRole"
	SocialProcess            = "SocialProcess"
	Teaching                 = "Teaching"
	Employment               = "Employment"
	Meeting                  = "Meeting"
	InformationContentEntity = "InformationContentEntity"
	Document                 = "Document"
	Reputation               = "Reputation"
)

// Edge labels.
const (
	LabelEmployedBy = "EMPLOYED_BY"
	LabelMemberOf   = "MEMBER_OF"
	LabelPartOfOrg  = "PART_OF_ORG"
	LabelAuthoredBy = "AUTHORED_BY"
)

// Types returns fresh declarations of the social extension types
func Types() []*entities.EntityType {
	return []*entities.EntityType{
		{
			Name:   Person,
			Parent: bfo.Object,
			Properties: []*entities.PropertySpec{
				{Name: "date_of_birth", Type: entities.TypeDateTime},
				{Name: "nationality", Type: entities.TypeString},
			},
			Relationships: []*entities.RelationshipSpec{
				{Name: "employed_by", Label: LabelEmployedBy, Direction: entities.Outgoing, Target: Organization, Cardinality: entities.ZeroOrMore},
				{Name: "member_of", Label: LabelMemberOf, Direction: entities.Outgoing, Target: Organization, Cardinality: entities.ZeroOrMore},
			},
		},
		{
			Name:   Organization,
			Parent: bfo.Object,
			Properties: []*entities.PropertySpec{
				{Name: "founded_date", Type: entities.TypeDateTime},
				{Name: "organization_type", Type: entities.TypeString},
			},
			Relationships: []*entities.RelationshipSpec{
				{Name: "part_of_org", Label: LabelPartOfOrg, Direction: entities.Outgoing, Target: Organization, Cardinality: entities.ZeroOrMore},
				{Name: "has_member", Label: LabelMemberOf, Direction: entities.Incoming, Target: Person, Cardinality: entities.ZeroOrMore},
				{Name: "employs", Label: LabelEmployedBy, Direction: entities.Incoming, Target: Person, Cardinality: entities.ZeroOrMore},
			},
		},
		{
			Name:   SocialRole,
			Parent: bfo.Role,
			Properties: []*entities.PropertySpec{
				{Name: "role_type", Type: entities.TypeString},
				{Name: "active_since", Type: entities.TypeDateTime},
				{Name: "active_until", Type: entities.TypeDateTime},
			},
		},
		{
			Name:   EmployeeRole,
			Parent: SocialRole,
			Properties: []*entities.PropertySpec{
				{Name: "job_title", Type: entities.TypeString},
				{Name: "department", Type: entities.TypeString},
			},
		},
		{
			Name:   StudentRole,
			Parent: SocialRole,
			Properties: []*entities.PropertySpec{
				{Name: "student_id", Type: entities.TypeString},
				{Name: "program", Type: entities.TypeString},
				{Name: "enrollment_year", Type: entities.TypeInt},
			},
		},
		{Name: ParentRole, Parent: SocialRole},
		{
			Name:   TeacherRole,
			Parent: SocialRole,
			Properties: []*entities.PropertySpec{
				{Name: "subject_area", Type: entities.TypeString},
			},
		},
		{
			Name:   SocialProcess,
			Parent: bfo.Process,
			Properties: []*entities.PropertySpec{
				{Name: "process_category", Type: entities.TypeString},
			},
		},
		{
			Name:   Teaching,
			Parent: SocialProcess,
			Properties: []*entities.PropertySpec{
				{Name: "course_name", Type: entities.TypeString},
			},
		},
		{Name: Employment, Parent: SocialProcess},
		{
			Name:   Meeting,
			Parent: SocialProcess,
			Properties: []*entities.PropertySpec{
				{Name: "meeting_type", Type: entities.TypeString},
				{Name: "location", Type: entities.TypeString},
			},
		},
		{
			Name:   InformationContentEntity,
			Parent: bfo.GenericallyDependentContinuant,
			Properties: []*entities.PropertySpec{
				{Name: "content_type", Type: entities.TypeString},
			},
		},
		{
			Name:   Document,
			Parent: InformationContentEntity,
			Properties: []*entities.PropertySpec{
				{Name: "document_type", Type: entities.TypeString},
			},
			Relationships: []*entities.RelationshipSpec{
				{Name: "author", Label: LabelAuthoredBy, Direction: entities.Outgoing, Target: Person, Cardinality: entities.ZeroOrMore},
			},
		},
		{
			Name:   Reputation,
			Parent: bfo.Quality,
			Properties: []*entities.PropertySpec{
				{Name: "reputation_score", Type: entities.TypeFloat},
			},
		},
	}
}

// Register defines the social types in the given registry. The core taxonomy
// must be registered first.
func Register(r *registry.Registry) error {
	return r.DefineAll(Types())
}
