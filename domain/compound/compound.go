// Package compound provides chemical compounds and the composition edges
// that link a compound to the elements it is made of.
package compound

// Compound is a chemical compound row. Immutable value object.
type Compound struct {
	id            int64
	name          string
	formula       string
	mass          string
	concentration string
}

// NewCompound creates a Compound.
func NewCompound(id int64, name, formula, mass, concentration string) Compound {
	return Compound{
		id:            id,
		name:          name,
		formula:       formula,
		mass:          mass,
		concentration: concentration,
	}
}

// ID returns the compound key.
func (c Compound) ID() int64 { return c.id }

// Name returns the compound name.
func (c Compound) Name() string { return c.name }

// Formula returns the chemical formula.
func (c Compound) Formula() string { return c.formula }

// Mass returns the molar mass as written in the source.
func (c Compound) Mass() string { return c.mass }

// Concentration returns the concentration range descriptor.
func (c Compound) Concentration() string { return c.concentration }

// Composition is one edge between a compound and an element, carrying the
// subscript of that element in the compound's formula. The compound name and
// element symbol are copied at creation for display.
//
// A composition row keeps its ids after either endpoint is deleted.
type Composition struct {
	id           int64
	compoundID   int64
	compoundName string
	elementID    int64
	symbol       string
	subscript    int64
}

// NewComposition creates a Composition that has not been stored yet.
func NewComposition(compoundID int64, compoundName string, elementID int64, symbol string, subscript int64) Composition {
	return Composition{
		compoundID:   compoundID,
		compoundName: compoundName,
		elementID:    elementID,
		symbol:       symbol,
		subscript:    subscript,
	}
}

// ReconstructComposition recreates a Composition from persistence.
func ReconstructComposition(id, compoundID int64, compoundName string, elementID int64, symbol string, subscript int64) Composition {
	c := NewComposition(compoundID, compoundName, elementID, symbol, subscript)
	c.id = id
	return c
}

// ID returns the surrogate key, zero until stored.
func (c Composition) ID() int64 { return c.id }

// CompoundID returns the compound endpoint.
func (c Composition) CompoundID() int64 { return c.compoundID }

// CompoundName returns the denormalized compound name.
func (c Composition) CompoundName() string { return c.compoundName }

// ElementID returns the element endpoint.
func (c Composition) ElementID() int64 { return c.elementID }

// Symbol returns the denormalized element symbol.
func (c Composition) Symbol() string { return c.symbol }

// Subscript returns the number of atoms of the element in the compound.
func (c Composition) Subscript() int64 { return c.subscript }
