package compound

import "github.com/helixml/periodic/domain/repository"

// WithFormula filters by the "formula" column.
func WithFormula(formula string) repository.Option {
	return repository.WithCondition("formula", formula)
}

// WithElementID filters by the "element_id" column.
func WithElementID(id int64) repository.Option {
	return repository.WithCondition("element_id", id)
}
