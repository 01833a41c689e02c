package entities

// Cardinality constrains how many edges of a relationship an instance may hold.
type Cardinality int

const (
	// ZeroOrMore places no bound on the number of edges.
	ZeroOrMore Cardinality = iota
	// ZeroOrOne allows at most one edge.
	ZeroOrOne
	// ExactlyOne requires exactly one edge. The bound is enforced at link
	// time (a second edge is rejected); presence of the single edge is the
	// consumer's responsibility.
	ExactlyOne
)

// String returns the schema-facing name of the cardinality
func (c Cardinality) String() string {
	switch c {
	case ZeroOrMore:
		return "zero_or_more"
	case ZeroOrOne:
		return "zero_or_one"
	case ExactlyOne:
		return "exactly_one"
	default:
		return "unknown"
	}
}

// Max returns the upper bound on edge count, 0 meaning unbounded
func (c Cardinality) Max() int {
	switch c {
	case ZeroOrOne, ExactlyOne:
		return 1
	default:
		return 0
	}
}

// Narrows reports whether c is a strictly narrower constraint than other.
// zero_or_more may narrow to zero_or_one or exactly_one, and zero_or_one
// may narrow to exactly_one. A cardinality never narrows itself.
func (c Cardinality) Narrows(other Cardinality) bool {
	switch other {
	case ZeroOrMore:
		return c == ZeroOrOne || c == ExactlyOne
	case ZeroOrOne:
		return c == ExactlyOne
	default:
		return false
	}
}
