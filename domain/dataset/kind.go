// Package dataset ties the entity kinds together: the kinds themselves, their
// load and teardown order, the unit of work that spans their stores, and the
// lenient field parsing used when reading source records.
package dataset

import (
	"fmt"
	"strings"
)

// Kind identifies one of the five entity tables.
type Kind string

// Kind values.
const (
	KindState       Kind = "states"
	KindSeries      Kind = "series"
	KindElement     Kind = "elements"
	KindCompound    Kind = "compounds"
	KindComposition Kind = "compositions"
)

// Kinds returns every kind in creation order: parents before the tables that
// reference them.
func Kinds() []Kind {
	return []Kind{KindState, KindSeries, KindElement, KindCompound, KindComposition}
}

// TeardownOrder returns every kind in the order tables must be dropped.
func TeardownOrder() []Kind {
	kinds := Kinds()
	for i, j := 0, len(kinds)-1; i < j; i, j = i+1, j-1 {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	}
	return kinds
}

// ParseKind parses a kind name. Singular names are accepted too.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "states", "state":
		return KindState, nil
	case "series":
		return KindSeries, nil
	case "elements", "element":
		return KindElement, nil
	case "compounds", "compound":
		return KindCompound, nil
	case "compositions", "composition", "compound_elements":
		return KindComposition, nil
	}
	return "", fmt.Errorf("%w: unknown kind %q", ErrInvalidArgument, s)
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// FieldCount returns the number of positional fields a source record of
// this kind carries.
func (k Kind) FieldCount() int {
	switch k {
	case KindState, KindSeries:
		return 2
	case KindElement:
		return 20
	case KindCompound, KindComposition:
		return 5
	}
	return 0
}

// Dependents returns the kinds whose tables hold a foreign key to k.
func (k Kind) Dependents() []Kind {
	switch k {
	case KindState, KindSeries:
		return []Kind{KindElement}
	case KindElement, KindCompound:
		return []Kind{KindComposition}
	}
	return nil
}
