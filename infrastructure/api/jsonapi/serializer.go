package jsonapi

import (
	"strconv"

	"github.com/helixml/periodic/application/service"
	"github.com/helixml/periodic/domain/compound"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/element"
	"github.com/shopspring/decimal"
)

// Resource type names.
const (
	TypeState       = "state"
	TypeSeries      = "series"
	TypeElement     = "element"
	TypeCompound    = "compound"
	TypeComposition = "composition"
	TypeTable       = "table"
	TypeLoad        = "load"
	TypeYear        = "discovery_year"
	TypeFormula     = "formula"
)

// StateAttributes represents state attributes in JSON:API format.
type StateAttributes struct {
	Name string `json:"name"`
}

// SeriesAttributes represents series attributes in JSON:API format.
type SeriesAttributes struct {
	Name string `json:"name"`
}

// ElementAttributes represents element attributes in JSON:API format.
// Fixed-point values are rendered as strings with three fractional digits
// and are null when the source had no value.
type ElementAttributes struct {
	Name              string  `json:"name"`
	Symbol            string  `json:"symbol"`
	SeriesID          *int64  `json:"series_id"`
	StateID           *int64  `json:"state_id"`
	Weight            *string `json:"weight"`
	Energy            string  `json:"energy"`
	Electronegativity *string `json:"electronegativity"`
	Fusion            *string `json:"fusion"`
	Boiling           *string `json:"boiling"`
	ElectronAffinity  *string `json:"electron_affinity"`
	Ionization        *string `json:"ionization"`
	Radius            int64   `json:"radius"`
	Hardness          *string `json:"hardness"`
	Modulus           *string `json:"modulus"`
	Density           *string `json:"density"`
	Conductivity      *string `json:"conductivity"`
	Heat              *string `json:"heat"`
	Abundance         *string `json:"abundance"`
	DiscoveryYear     int64   `json:"discovery_year"`
}

// CompoundAttributes represents compound attributes in JSON:API format.
type CompoundAttributes struct {
	Name          string `json:"name"`
	Formula       string `json:"formula"`
	Mass          string `json:"mass"`
	Concentration string `json:"concentration"`
}

// CompositionAttributes represents composition attributes in JSON:API format.
type CompositionAttributes struct {
	CompoundID   int64  `json:"compound_id"`
	CompoundName string `json:"compound_name"`
	ElementID    int64  `json:"element_id"`
	Symbol       string `json:"symbol"`
	Subscript    int64  `json:"subscript"`
}

// TableAttributes represents the outcome of a schema action on one table.
type TableAttributes struct {
	Status string `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// SkipAttributes describes one skipped source record.
type SkipAttributes struct {
	Line   int      `json:"line"`
	Fields []string `json:"fields"`
	Reason string   `json:"reason"`
}

// LoadAttributes represents a load pass summary.
type LoadAttributes struct {
	Kind      string           `json:"kind"`
	Committed int              `json:"committed"`
	Skipped   int              `json:"skipped"`
	Defaulted int              `json:"defaulted"`
	Skips     []SkipAttributes `json:"skips"`
}

// YearAttributes carries one discovery year.
type YearAttributes struct {
	Year int64 `json:"year"`
}

// FormulaAttributes carries one distinct formula.
type FormulaAttributes struct {
	Formula string `json:"formula"`
}

func id(n int64) string {
	return strconv.FormatInt(n, 10)
}

func fixed(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := dataset.FormatDecimal(d, "")
	return &s
}

func optionalID(v int64, ok bool) *int64 {
	if !ok {
		return nil
	}
	return &v
}

// StateResource converts a state.
func StateResource(s element.State) *Resource {
	return NewResource(TypeState, id(s.ID()), StateAttributes{Name: s.Name()})
}

// SeriesResource converts a series.
func SeriesResource(s element.Series) *Resource {
	return NewResource(TypeSeries, id(s.ID()), SeriesAttributes{Name: s.Name()})
}

// ElementResource converts an element.
func ElementResource(e element.Element) *Resource {
	m := e.Measurements()
	attrs := ElementAttributes{
		Name:              e.Name(),
		Symbol:            e.Symbol(),
		SeriesID:          optionalID(e.SeriesID()),
		StateID:           optionalID(e.StateID()),
		Weight:            fixed(m.Weight),
		Energy:            e.Energy(),
		Electronegativity: fixed(m.Electronegativity),
		Fusion:            fixed(m.Fusion),
		Boiling:           fixed(m.Boiling),
		ElectronAffinity:  fixed(m.ElectronAffinity),
		Ionization:        fixed(m.Ionization),
		Radius:            e.Radius(),
		Hardness:          fixed(m.Hardness),
		Modulus:           fixed(m.Modulus),
		Density:           fixed(m.Density),
		Conductivity:      fixed(m.Conductivity),
		Heat:              fixed(m.Heat),
		Abundance:         fixed(m.Abundance),
		DiscoveryYear:     e.DiscoveryYear(),
	}
	r := NewResource(TypeElement, id(e.ID()), attrs)
	r.Relationships = Relationships{}
	if v, ok := e.SeriesID(); ok {
		r.Relationships["series"] = &Relationship{Data: ResourceIdentifier{Type: TypeSeries, ID: id(v)}}
	}
	if v, ok := e.StateID(); ok {
		r.Relationships["state"] = &Relationship{Data: ResourceIdentifier{Type: TypeState, ID: id(v)}}
	}
	return r
}

// CompoundResource converts a compound.
func CompoundResource(c compound.Compound) *Resource {
	return NewResource(TypeCompound, id(c.ID()), CompoundAttributes{
		Name:          c.Name(),
		Formula:       c.Formula(),
		Mass:          c.Mass(),
		Concentration: c.Concentration(),
	})
}

// CompositionResource converts a composition row.
func CompositionResource(c compound.Composition) *Resource {
	r := NewResource(TypeComposition, id(c.ID()), CompositionAttributes{
		CompoundID:   c.CompoundID(),
		CompoundName: c.CompoundName(),
		ElementID:    c.ElementID(),
		Symbol:       c.Symbol(),
		Subscript:    c.Subscript(),
	})
	r.Relationships = Relationships{
		"compound": {Data: ResourceIdentifier{Type: TypeCompound, ID: id(c.CompoundID())}},
		"element":  {Data: ResourceIdentifier{Type: TypeElement, ID: id(c.ElementID())}},
	}
	return r
}

// TableResource converts a schema outcome. The table name is the id.
func TableResource(o service.TableOutcome) *Resource {
	return NewResource(TypeTable, o.Kind.String(), TableAttributes{
		Status: string(o.Status),
		Reason: o.Reason,
	})
}

// LoadResource converts a load summary. The run id is the resource id.
func LoadResource(res service.LoadResult) *Resource {
	skips := make([]SkipAttributes, 0, len(res.Skips))
	for _, s := range res.Skips {
		skips = append(skips, SkipAttributes{Line: s.Line, Fields: s.Fields, Reason: s.Reason})
	}
	return NewResource(TypeLoad, res.RunID.String(), LoadAttributes{
		Kind:      res.Kind.String(),
		Committed: res.Committed,
		Skipped:   res.Skipped,
		Defaulted: res.Defaulted,
		Skips:     skips,
	})
}

// YearResource converts a discovery year.
func YearResource(year int64) *Resource {
	return NewResource(TypeYear, id(year), YearAttributes{Year: year})
}

// FormulaResource converts a formula. The formula text is the id.
func FormulaResource(formula string) *Resource {
	return NewResource(TypeFormula, formula, FormulaAttributes{Formula: formula})
}

// Resources converts a slice with fn.
func Resources[T any](items []T, fn func(T) *Resource) []*Resource {
	out := make([]*Resource, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
