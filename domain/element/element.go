package element

import "github.com/shopspring/decimal"

// Measurements holds the fixed-point physical properties of an element.
// A property that was absent in the source is an invalid NullDecimal.
type Measurements struct {
	Weight            decimal.NullDecimal
	Electronegativity decimal.NullDecimal
	Fusion            decimal.NullDecimal
	Boiling           decimal.NullDecimal
	ElectronAffinity  decimal.NullDecimal
	Ionization        decimal.NullDecimal
	Hardness          decimal.NullDecimal
	Modulus           decimal.NullDecimal
	Density           decimal.NullDecimal
	Conductivity      decimal.NullDecimal
	Heat              decimal.NullDecimal
	Abundance         decimal.NullDecimal
}

// Element is a chemical element row. Immutable value object.
type Element struct {
	id            int64
	name          string
	symbol        string
	seriesID      *int64
	stateID       *int64
	energy        string
	radius        int64
	discoveryYear int64
	measurements  Measurements
}

// NewElement creates an Element without classification references.
// Use WithSeriesID and WithStateID once the references are resolved.
func NewElement(id int64, name, symbol, energy string, radius, discoveryYear int64, m Measurements) Element {
	return Element{
		id:            id,
		name:          name,
		symbol:        symbol,
		energy:        energy,
		radius:        radius,
		discoveryYear: discoveryYear,
		measurements:  m,
	}
}

// ReconstructElement recreates an Element from persistence.
func ReconstructElement(
	id int64,
	name, symbol string,
	seriesID, stateID *int64,
	energy string,
	radius, discoveryYear int64,
	m Measurements,
) Element {
	e := NewElement(id, name, symbol, energy, radius, discoveryYear, m)
	e.seriesID = copyID(seriesID)
	e.stateID = copyID(stateID)
	return e
}

// ID returns the element key (atomic number).
func (e Element) ID() int64 { return e.id }

// Name returns the element name.
func (e Element) Name() string { return e.name }

// Symbol returns the chemical symbol.
func (e Element) Symbol() string { return e.symbol }

// SeriesID returns the referenced series key, or false when unset.
func (e Element) SeriesID() (int64, bool) {
	if e.seriesID == nil {
		return 0, false
	}
	return *e.seriesID, true
}

// StateID returns the referenced state key, or false when unset.
func (e Element) StateID() (int64, bool) {
	if e.stateID == nil {
		return 0, false
	}
	return *e.stateID, true
}

// Energy returns the electron configuration text.
func (e Element) Energy() string { return e.energy }

// Radius returns the atomic radius.
func (e Element) Radius() int64 { return e.radius }

// DiscoveryYear returns the year the element was discovered.
func (e Element) DiscoveryYear() int64 { return e.discoveryYear }

// Measurements returns the fixed-point properties.
func (e Element) Measurements() Measurements { return e.measurements }

// WithSeriesID returns a copy referencing the given series; nil clears it.
func (e Element) WithSeriesID(id *int64) Element {
	e.seriesID = copyID(id)
	return e
}

// WithStateID returns a copy referencing the given state; nil clears it.
func (e Element) WithStateID(id *int64) Element {
	e.stateID = copyID(id)
	return e
}

func copyID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
