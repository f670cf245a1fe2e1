package persistence

import (
	"github.com/helixml/periodic/domain/compound"
	"github.com/helixml/periodic/domain/dataset"
	"github.com/helixml/periodic/domain/element"
	"github.com/shopspring/decimal"
)

// StateMapper maps between domain State and persistence StateModel.
type StateMapper struct{}

// ToDomain converts a StateModel to a domain State.
func (StateMapper) ToDomain(e StateModel) element.State {
	return element.NewState(e.ID, e.Name)
}

// ToModel converts a domain State to a StateModel.
func (StateMapper) ToModel(s element.State) StateModel {
	return StateModel{ID: s.ID(), Name: s.Name()}
}

// SeriesMapper maps between domain Series and persistence SeriesModel.
type SeriesMapper struct{}

// ToDomain converts a SeriesModel to a domain Series.
func (SeriesMapper) ToDomain(e SeriesModel) element.Series {
	return element.NewSeries(e.ID, e.Name)
}

// ToModel converts a domain Series to a SeriesModel.
func (SeriesMapper) ToModel(s element.Series) SeriesModel {
	return SeriesModel{ID: s.ID(), Name: s.Name()}
}

// ElementMapper maps between domain Element and persistence ElementModel.
type ElementMapper struct{}

// ToDomain converts an ElementModel to a domain Element.
func (ElementMapper) ToDomain(e ElementModel) element.Element {
	return element.ReconstructElement(
		e.ID,
		e.Name,
		e.Symbol,
		e.SeriesID,
		e.StateID,
		e.Energy,
		e.Radius,
		e.DiscoveryYear,
		element.Measurements{
			Weight:            fixed(e.Weight),
			Electronegativity: fixed(e.Electronegativity),
			Fusion:            fixed(e.Fusion),
			Boiling:           fixed(e.Boiling),
			ElectronAffinity:  fixed(e.ElectronAffinity),
			Ionization:        fixed(e.Ionization),
			Hardness:          fixed(e.Hardness),
			Modulus:           fixed(e.Modulus),
			Density:           fixed(e.Density),
			Conductivity:      fixed(e.Conductivity),
			Heat:              fixed(e.Heat),
			Abundance:         fixed(e.Abundance),
		},
	)
}

// ToModel converts a domain Element to an ElementModel.
func (ElementMapper) ToModel(d element.Element) ElementModel {
	m := d.Measurements()
	model := ElementModel{
		ID:                d.ID(),
		Name:              d.Name(),
		Symbol:            d.Symbol(),
		Weight:            fixed(m.Weight),
		Energy:            d.Energy(),
		Electronegativity: fixed(m.Electronegativity),
		Fusion:            fixed(m.Fusion),
		Boiling:           fixed(m.Boiling),
		ElectronAffinity:  fixed(m.ElectronAffinity),
		Ionization:        fixed(m.Ionization),
		Radius:            d.Radius(),
		Hardness:          fixed(m.Hardness),
		Modulus:           fixed(m.Modulus),
		Density:           fixed(m.Density),
		Conductivity:      fixed(m.Conductivity),
		Heat:              fixed(m.Heat),
		Abundance:         fixed(m.Abundance),
		DiscoveryYear:     d.DiscoveryYear(),
	}
	if id, ok := d.SeriesID(); ok {
		model.SeriesID = &id
	}
	if id, ok := d.StateID(); ok {
		model.StateID = &id
	}
	return model
}

// fixed normalizes a stored value to the dataset scale. Drivers hand back
// NUMERIC columns as floats or strings depending on the engine.
func fixed(d decimal.NullDecimal) decimal.NullDecimal {
	if !d.Valid {
		return d
	}
	return decimal.NewNullDecimal(d.Decimal.Round(dataset.Scale))
}

// CompoundMapper maps between domain Compound and persistence CompoundModel.
type CompoundMapper struct{}

// ToDomain converts a CompoundModel to a domain Compound.
func (CompoundMapper) ToDomain(e CompoundModel) compound.Compound {
	return compound.NewCompound(e.ID, e.Name, e.Formula, e.Mass, e.Concentration)
}

// ToModel converts a domain Compound to a CompoundModel.
func (CompoundMapper) ToModel(c compound.Compound) CompoundModel {
	return CompoundModel{
		ID:            c.ID(),
		Name:          c.Name(),
		Formula:       c.Formula(),
		Mass:          c.Mass(),
		Concentration: c.Concentration(),
	}
}

// CompositionMapper maps between domain Composition and persistence CompositionModel.
type CompositionMapper struct{}

// ToDomain converts a CompositionModel to a domain Composition.
func (CompositionMapper) ToDomain(e CompositionModel) compound.Composition {
	return compound.ReconstructComposition(e.ID, e.CompoundID, e.CompoundName, e.ElementID, e.Symbol, e.Subscript)
}

// ToModel converts a domain Composition to a CompositionModel.
func (CompositionMapper) ToModel(c compound.Composition) CompositionModel {
	return CompositionModel{
		ID:           c.ID(),
		CompoundID:   c.CompoundID(),
		CompoundName: c.CompoundName(),
		ElementID:    c.ElementID(),
		Symbol:       c.Symbol(),
		Subscript:    c.Subscript(),
	}
}
