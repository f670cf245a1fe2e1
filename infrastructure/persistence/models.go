package persistence

import "github.com/shopspring/decimal"

// Table names.
const (
	tableStates       = "states"
	tableSeries       = "series"
	tableElements     = "elements"
	tableCompounds    = "compounds"
	tableCompositions = "compound_elements"
)

// StateModel represents the states table.
type StateModel struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:name;size:64;not null"`
}

// TableName returns the table name.
func (StateModel) TableName() string { return tableStates }

// SeriesModel represents the series table.
type SeriesModel struct {
	ID   int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name string `gorm:"column:name;size:64;not null"`
}

// TableName returns the table name.
func (SeriesModel) TableName() string { return tableSeries }

// ElementModel represents the elements table. The Series and State
// associations only exist so the table is created with foreign keys to its
// classification tables; they are never loaded or written through.
type ElementModel struct {
	ID                int64               `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name              string              `gorm:"column:name;size:64;not null"`
	Symbol            string              `gorm:"column:symbol;size:8;not null"`
	Weight            decimal.NullDecimal `gorm:"column:weight;type:decimal(12,3)"`
	SeriesID          *int64              `gorm:"column:series_id;index"`
	Series            *SeriesModel        `gorm:"foreignKey:SeriesID;references:ID"`
	StateID           *int64              `gorm:"column:state_id;index"`
	State             *StateModel         `gorm:"foreignKey:StateID;references:ID"`
	Energy            string              `gorm:"column:energy;size:64"`
	Electronegativity decimal.NullDecimal `gorm:"column:electronegativity;type:decimal(12,3)"`
	Fusion            decimal.NullDecimal `gorm:"column:fusion;type:decimal(12,3)"`
	Boiling           decimal.NullDecimal `gorm:"column:boiling;type:decimal(12,3)"`
	ElectronAffinity  decimal.NullDecimal `gorm:"column:electron_affinity;type:decimal(12,3)"`
	Ionization        decimal.NullDecimal `gorm:"column:ionization;type:decimal(12,3)"`
	Radius            int64               `gorm:"column:radius"`
	Hardness          decimal.NullDecimal `gorm:"column:hardness;type:decimal(12,3)"`
	Modulus           decimal.NullDecimal `gorm:"column:modulus;type:decimal(12,3)"`
	Density           decimal.NullDecimal `gorm:"column:density;type:decimal(12,3)"`
	Conductivity      decimal.NullDecimal `gorm:"column:conductivity;type:decimal(12,3)"`
	Heat              decimal.NullDecimal `gorm:"column:heat;type:decimal(12,3)"`
	Abundance         decimal.NullDecimal `gorm:"column:abundance;type:decimal(12,3)"`
	DiscoveryYear     int64               `gorm:"column:discovery_year;index"`
}

// TableName returns the table name.
func (ElementModel) TableName() string { return tableElements }

// CompoundModel represents the compounds table.
type CompoundModel struct {
	ID            int64  `gorm:"column:id;primaryKey;autoIncrement:false"`
	Name          string `gorm:"column:name;size:128;not null"`
	Formula       string `gorm:"column:formula;size:64;index"`
	Mass          string `gorm:"column:mass;size:32"`
	Concentration string `gorm:"column:concentration;size:64"`
}

// TableName returns the table name.
func (CompoundModel) TableName() string { return tableCompounds }

// CompositionModel represents the compound_elements junction table. It has
// no foreign keys: deleting a compound or an element leaves its rows in place.
type CompositionModel struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	CompoundID   int64  `gorm:"column:compound_id;not null;index"`
	CompoundName string `gorm:"column:compound_name;size:128"`
	ElementID    int64  `gorm:"column:element_id;not null;index"`
	Symbol       string `gorm:"column:symbol;size:8"`
	Subscript    int64  `gorm:"column:subscript;not null;default:0"`
}

// TableName returns the table name.
func (CompositionModel) TableName() string { return tableCompositions }
