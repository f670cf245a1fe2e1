package repository

// Option adds a filter or an ordering to a Query.
type Option func(*Query)

// Match is the comparison a Condition performs.
type Match int

// Comparisons.
const (
	MatchEqual Match = iota
	MatchIn
	MatchContains
)

// Condition filters on one column.
type Condition struct {
	field string
	value any
	match Match
}

// Field returns the column name.
func (c Condition) Field() string { return c.field }

// Value returns the operand.
func (c Condition) Value() any { return c.value }

// Match returns the comparison.
func (c Condition) Match() Match { return c.match }

// Order sorts on one column.
type Order struct {
	field     string
	ascending bool
}

// Field returns the column name.
func (o Order) Field() string { return o.field }

// Ascending reports the sort direction.
func (o Order) Ascending() bool { return o.ascending }

// Query is the storage-neutral description of a lookup.
type Query struct {
	conditions []Condition
	orders     []Order
}

// Build folds options into a Query.
func Build(options ...Option) Query {
	var q Query
	for _, opt := range options {
		opt(&q)
	}
	return q
}

// Conditions returns a copy of the filters, in the order they were added.
func (q Query) Conditions() []Condition {
	return append([]Condition(nil), q.conditions...)
}

// Orders returns a copy of the sort keys, most significant first.
func (q Query) Orders() []Order {
	return append([]Order(nil), q.orders...)
}

func where(field string, value any, match Match) Option {
	return func(q *Query) {
		q.conditions = append(q.conditions, Condition{field: field, value: value, match: match})
	}
}

// WithCondition filters on field = value. Domain packages build their
// typed options on it.
func WithCondition(field string, value any) Option {
	return where(field, value, MatchEqual)
}

// WithConditionIn filters on field IN values.
func WithConditionIn(field string, values any) Option {
	return where(field, values, MatchIn)
}

// WithContains filters rows whose text field contains text, case-sensitively.
func WithContains(field, text string) Option {
	return where(field, text, MatchContains)
}

// WithOrderAsc sorts ascending on field.
func WithOrderAsc(field string) Option {
	return func(q *Query) {
		q.orders = append(q.orders, Order{field: field, ascending: true})
	}
}

// WithOrderDesc sorts descending on field.
func WithOrderDesc(field string) Option {
	return func(q *Query) {
		q.orders = append(q.orders, Order{field: field})
	}
}
